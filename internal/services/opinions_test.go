package services

import (
	"soapbox/internal/db"
	"soapbox/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOpinionDefaultsToDraft(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)

	opinion, err := CreateOpinion(author, OpinionInput{
		Title:   "A modest proposal",
		Content: "We should consider it.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, opinion.Status.Name)
	assert.Nil(t, opinion.Published)
	assert.Equal(t, "a-modest-proposal", opinion.Slug)
	assert.NotEmpty(t, opinion.Excerpt)
}

func TestCreateOpinionValidation(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)

	_, err := CreateOpinion(author, OpinionInput{Title: "  ", Content: "text"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CreateOpinion(author, OpinionInput{Title: "ok", Content: "  "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CreateOpinion(author, OpinionInput{Title: "ok", Content: "text", Status: "Approved"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CreateOpinion(nil, OpinionInput{Title: "ok", Content: "text"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateOpinionSlugClashGetsSuffix(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	other := createUser(t, models.RoleUser)

	first, err := CreateOpinion(author, OpinionInput{Title: "Hot Take", Content: "one"})
	require.NoError(t, err)

	second, err := CreateOpinion(other, OpinionInput{Title: "Hot  Take!", Content: "two"})
	require.NoError(t, err)

	assert.Equal(t, "hot-take", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "hot-take")
}

func TestUpdateOpinionKeepsSlug(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)

	opinion, err := CreateOpinion(author, OpinionInput{Title: "Original title", Content: "v1"})
	require.NoError(t, err)
	slug := opinion.Slug

	updated, err := UpdateOpinion(author, slug, OpinionInput{
		Title:   "A completely different title",
		Content: "v2",
	})
	require.NoError(t, err)
	assert.Equal(t, "A completely different title", updated.Title)
	assert.Equal(t, "v2", updated.Content)

	var reloaded models.Opinion
	require.NoError(t, db.DB.Where("slug = ?", slug).First(&reloaded).Error)
	assert.Equal(t, opinion.ID, reloaded.ID)
	assert.Equal(t, slug, reloaded.Slug)
}

func TestUpdateOpinionAuthorOnly(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	other := createUser(t, models.RoleUser)
	opinion := createOpinion(t, author, models.StatusPublished)

	_, err := UpdateOpinion(other, opinion.Slug, OpinionInput{
		Title:   "Hijacked",
		Content: "nope",
		Status:  models.StatusPublished,
	})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = UpdateOpinion(author, "no-such-slug", OpinionInput{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublishedTimestampSetOnce(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)

	opinion, err := CreateOpinion(author, OpinionInput{Title: "Slow burn", Content: "v1"})
	require.NoError(t, err)
	require.Nil(t, opinion.Published)

	published, err := UpdateOpinion(author, opinion.Slug, OpinionInput{
		Title:   "Slow burn",
		Content: "v2",
		Status:  models.StatusPublished,
	})
	require.NoError(t, err)
	require.NotNil(t, published.Published)
	firstPublished := *published.Published

	// Unpublish and republish, the original date sticks.
	_, err = UpdateOpinion(author, opinion.Slug, OpinionInput{
		Title:   "Slow burn",
		Content: "v3",
		Status:  models.StatusDraft,
	})
	require.NoError(t, err)

	again, err := UpdateOpinion(author, opinion.Slug, OpinionInput{
		Title:   "Slow burn",
		Content: "v4",
		Status:  models.StatusPublished,
	})
	require.NoError(t, err)
	require.NotNil(t, again.Published)
	assert.Equal(t, firstPublished.Unix(), again.Published.Unix())
}

func TestSetContentStatusOwnerSaveStates(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	opinion := createOpinion(t, author, models.StatusDraft)

	item, err := SetContentStatus(author, models.ItemTypeOpinion, opinion.ID, models.StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, item.StatusName())

	published := item.(*models.Opinion)
	require.NotNil(t, published.Published)
}

func TestSetContentStatusReviewMarkersNeedModerator(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	moderator := createUser(t, models.RoleModerator)
	opinion := createOpinion(t, author, models.StatusPublished)

	// Authors cannot flag their own content into the review states.
	_, err := SetContentStatus(author, models.ItemTypeOpinion, opinion.ID, models.StatusUnderReview)
	assert.ErrorIs(t, err, ErrForbidden)

	item, err := SetContentStatus(moderator, models.ItemTypeOpinion, opinion.ID, models.StatusUnderReview)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, item.StatusName())
}

func TestSetContentStatusRejectsReviewDecisions(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	opinion := createOpinion(t, author, models.StatusDraft)

	_, err := SetContentStatus(author, models.ItemTypeOpinion, opinion.ID, models.StatusResolved)
	assert.ErrorIs(t, err, ErrValidation)
}
