package services

import (
	"soapbox/internal/db"
	"soapbox/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetReactionIdempotent(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	reader := createUser(t, models.RoleUser)
	opinion := createOpinion(t, author, models.StatusPublished)
	comment := createComment(t, author, opinion)

	first, err := SetReaction(reader, models.ItemTypeComment, comment.ID, models.ReactionLike, true)
	require.NoError(t, err)
	assert.True(t, first.Active)
	assert.Equal(t, int64(1), first.ActiveCount)

	// Same desired state again: no-op, same row.
	second, err := SetReaction(reader, models.ItemTypeComment, comment.ID, models.ReactionLike, true)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Active)
	assert.Equal(t, int64(1), second.ActiveCount)

	// Toggle off reuses the row instead of inserting.
	third, err := SetReaction(reader, models.ItemTypeComment, comment.ID, models.ReactionLike, false)
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)
	assert.False(t, third.Active)
	assert.Equal(t, int64(0), third.ActiveCount)

	var rows int64
	db.DB.Model(&models.Reaction{}).
		Where("user_id = ? AND item_type = ? AND item_id = ?", reader.ID, models.ItemTypeComment, comment.ID).
		Count(&rows)
	assert.Equal(t, int64(1), rows)
}

func TestSetReactionAgreementExclusive(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	reader := createUser(t, models.RoleUser)
	opinion := createOpinion(t, author, models.StatusPublished)

	_, err := SetReaction(reader, models.ItemTypeOpinion, opinion.ID, models.ReactionLike, true)
	require.NoError(t, err)

	state, err := SetReaction(reader, models.ItemTypeOpinion, opinion.ID, models.ReactionDisagree, true)
	require.NoError(t, err)
	assert.True(t, state.Active)

	status, err := GetReactionStatus(reader, models.ItemTypeOpinion, opinion.ID)
	require.NoError(t, err)
	assert.True(t, status.Disagree)
	assert.False(t, status.Like)
}

func TestSetReactionSelfLikeForbidden(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	opinion := createOpinion(t, author, models.StatusPublished)

	_, err := SetReaction(author, models.ItemTypeOpinion, opinion.ID, models.ReactionLike, true)
	assert.ErrorIs(t, err, ErrForbidden)

	// Hiding and pinning one's own content is allowed.
	_, err = SetReaction(author, models.ItemTypeOpinion, opinion.ID, models.ReactionPin, true)
	assert.NoError(t, err)
}

func TestSetReactionDraftForbidden(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	reader := createUser(t, models.RoleUser)
	opinion := createOpinion(t, author, models.StatusDraft)

	_, err := SetReaction(reader, models.ItemTypeOpinion, opinion.ID, models.ReactionLike, true)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSetReactionMissingTarget(t *testing.T) {
	setupTestDB(t)
	reader := createUser(t, models.RoleUser)

	_, err := SetReaction(reader, models.ItemTypeOpinion, 9999, models.ReactionLike, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetReactionUnknownKind(t *testing.T) {
	setupTestDB(t)
	reader := createUser(t, models.RoleUser)

	_, err := SetReaction(reader, models.ItemTypeOpinion, 1, models.ReactionKind("applaud"), true)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestHideCollapsesRenderDepth(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	reader := createUser(t, models.RoleUser)
	opinion := createOpinion(t, author, models.StatusPublished)
	comment := createComment(t, author, opinion)

	state, err := SetReaction(reader, models.ItemTypeComment, comment.ID, models.ReactionHide, true)
	require.NoError(t, err)
	assert.Equal(t, 0, state.RenderDepth)
	assert.Equal(t, 0, RenderDepth(reader, models.ItemTypeComment, comment.ID))

	// Other viewers still see the full depth.
	assert.Equal(t, DefaultCommentDepth, RenderDepth(author, models.ItemTypeComment, comment.ID))

	state, err = SetReaction(reader, models.ItemTypeComment, comment.ID, models.ReactionHide, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultCommentDepth, state.RenderDepth)
	assert.Equal(t, DefaultCommentDepth, RenderDepth(reader, models.ItemTypeComment, comment.ID))
}
