package services

import (
	"soapbox/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermRoleInheritance(t *testing.T) {
	user := &models.User{Role: models.RoleUser}
	moderator := &models.User{Role: models.RoleModerator}
	admin := &models.User{Role: models.RoleAdmin}

	assert.True(t, HasPerm(user, CrudPerm(models.ItemTypeOpinion, CrudCreate)))
	assert.True(t, HasPerm(user, CrudPerm("review", CrudCreate)))
	assert.False(t, HasPerm(user, CrudPerm("review", CrudUpdate)))
	assert.False(t, HasPerm(user, PermCloseReview))
	assert.False(t, HasPerm(user, PermWithdrawReview))

	// Moderators inherit the base user grants.
	assert.True(t, HasPerm(moderator, CrudPerm(models.ItemTypeComment, CrudCreate)))
	assert.True(t, HasPerm(moderator, PermCloseReview))
	assert.False(t, HasPerm(moderator, PermWithdrawReview))
	assert.False(t, HasPerm(moderator, CrudPerm("review", CrudDelete)))

	assert.True(t, HasPerm(admin, CrudPerm(models.ItemTypeOpinion, CrudUpdate)))
	assert.True(t, HasPerm(admin, PermWithdrawReview))
	assert.True(t, HasPerm(admin, CrudPerm("review", CrudDelete)))

	assert.False(t, HasPerm(nil, CrudPerm(models.ItemTypeOpinion, CrudRead)))
}

func TestCheckDecisionBranches(t *testing.T) {
	requester := &models.User{Role: models.RoleUser}
	requester.ID = 1
	bystander := &models.User{Role: models.RoleUser}
	bystander.ID = 2
	assignee := &models.User{Role: models.RoleUser}
	assignee.ID = 3
	moderator := &models.User{Role: models.RoleModerator}
	moderator.ID = 4
	admin := &models.User{Role: models.RoleAdmin}
	admin.ID = 5

	review := &models.Review{RequestedID: requester.ID, ReviewerID: &assignee.ID}

	// Withdrawal: admins and the requester only.
	assert.NoError(t, CheckDecision(admin, review, models.StatusWithdrawn))
	assert.NoError(t, CheckDecision(requester, review, models.StatusWithdrawn))
	assert.ErrorIs(t, CheckDecision(moderator, review, models.StatusWithdrawn), ErrForbidden)
	assert.ErrorIs(t, CheckDecision(bystander, review, models.StatusWithdrawn), ErrForbidden)

	// Resolution: close-review holders and the assigned reviewer.
	assert.NoError(t, CheckDecision(moderator, review, models.StatusResolved))
	assert.NoError(t, CheckDecision(assignee, review, models.StatusApproved))
	assert.ErrorIs(t, CheckDecision(requester, review, models.StatusRejected), ErrForbidden)

	assert.ErrorIs(t, CheckDecision(moderator, review, models.StatusPublished), ErrValidation)
	assert.ErrorIs(t, CheckDecision(nil, review, models.StatusResolved), ErrForbidden)
}
