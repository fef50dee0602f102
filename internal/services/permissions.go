package services

import (
	"soapbox/internal/models"
)

// Crud is a generic capability on a content type.
type Crud string

const (
	CrudCreate Crud = "create"
	CrudRead   Crud = "read"
	CrudUpdate Crud = "update"
	CrudDelete Crud = "delete"
)

// Named moderation permissions.
const (
	PermCloseReview    = "close-review"    // close a review by resolving it
	PermWithdrawReview = "withdraw-review" // close a review by withdrawing it
)

// CrudPerm builds the permission name for a capability on an item type,
// e.g. "opinion.update".
func CrudPerm(itemType string, op Crud) string {
	return itemType + "." + string(op)
}

// rolePerms is the grant table. Authorization decisions are made from this
// table plus ownership and target status, nothing else.
var rolePerms = map[string]map[string]bool{
	models.RoleUser: {
		CrudPerm(models.ItemTypeOpinion, CrudCreate): true,
		CrudPerm(models.ItemTypeOpinion, CrudRead):   true,
		CrudPerm(models.ItemTypeOpinion, CrudUpdate): true,
		CrudPerm(models.ItemTypeOpinion, CrudDelete): true,
		CrudPerm(models.ItemTypeComment, CrudCreate): true,
		CrudPerm(models.ItemTypeComment, CrudRead):   true,
		CrudPerm(models.ItemTypeComment, CrudUpdate): true,
		CrudPerm(models.ItemTypeComment, CrudDelete): true,
		CrudPerm("review", CrudCreate):               true,
		CrudPerm("review", CrudRead):                 true,
	},
	models.RoleModerator: {
		CrudPerm("review", CrudUpdate): true,
		PermCloseReview:                true,
	},
	models.RoleAdmin: {
		CrudPerm("review", CrudUpdate): true,
		CrudPerm("review", CrudDelete): true,
		PermCloseReview:                true,
		PermWithdrawReview:             true,
	},
}

// Self-reaction policy. The product never settled whether users may react to
// their own content beyond blocking self-likes, so the knobs live here.
var (
	// AllowSelfReport permits users to report their own content.
	AllowSelfReport = true
	// AllowSelfAgreement permits like/disagree on one's own content.
	AllowSelfAgreement = false
)

// HasPerm reports whether the user holds the named permission. Moderators
// and admins inherit the base user grants.
func HasPerm(actor *models.User, perm string) bool {
	if actor == nil {
		return false
	}
	if rolePerms[actor.Role][perm] {
		return true
	}
	switch actor.Role {
	case models.RoleModerator:
		return rolePerms[models.RoleUser][perm]
	case models.RoleAdmin:
		return rolePerms[models.RoleUser][perm] || rolePerms[models.RoleModerator][perm]
	}
	return false
}

// CheckContent authorizes a CRUD action against a content item. Pure
// function of (actor, action, target state); callers must not mutate
// anything when it returns an error.
func CheckContent(actor *models.User, op Crud, target models.Content) error {
	if actor == nil {
		return forbiddenf("authentication required")
	}
	if !HasPerm(actor, CrudPerm(target.ItemType(), op)) {
		return forbiddenf("insufficient permissions")
	}

	owner := actor.ID == target.OwnerID()
	switch op {
	case CrudRead:
		// Other users don't have access to unpublished content.
		if !owner && target.StatusName() != models.StatusPublished {
			return forbiddenf("%s unavailable", target.ItemType())
		}
	case CrudUpdate, CrudDelete:
		if !owner {
			return forbiddenf("%ss may only be updated by their authors", target.ItemType())
		}
	}
	return nil
}

// CheckReaction authorizes a reaction against a content item.
func CheckReaction(actor *models.User, kind models.ReactionKind, target models.Content) error {
	if actor == nil {
		return forbiddenf("authentication required")
	}
	owner := actor.ID == target.OwnerID()
	if !owner && target.StatusName() != models.StatusPublished {
		// Reacting to someone else's draft/preview content is not allowed.
		return forbiddenf("%s unavailable", target.ItemType())
	}
	if owner && !AllowSelfAgreement &&
		(kind == models.ReactionLike || kind == models.ReactionDisagree) {
		return forbiddenf("cannot %s own content", kind)
	}
	return nil
}

// CheckReport authorizes filing a review request against a content item.
func CheckReport(actor *models.User, target models.Content) error {
	if actor == nil {
		return forbiddenf("authentication required")
	}
	if !HasPerm(actor, CrudPerm("review", CrudCreate)) {
		return forbiddenf("insufficient permissions")
	}
	if !AllowSelfReport && actor.ID == target.OwnerID() {
		return forbiddenf("cannot report own content")
	}
	return nil
}

// CheckReviewStatus authorizes a non-terminal status patch on a review.
func CheckReviewStatus(actor *models.User, review *models.Review) error {
	if actor == nil {
		return forbiddenf("authentication required")
	}
	if !HasPerm(actor, PermCloseReview) {
		return forbiddenf("insufficient permissions")
	}
	return nil
}

// CheckDecision authorizes recording a decision with the given terminal
// status. Resolution needs the close-review permission or the assigned
// reviewer; withdrawal needs the withdraw-review permission or the
// requesting user taking back their own report.
func CheckDecision(actor *models.User, review *models.Review, statusName string) error {
	if actor == nil {
		return forbiddenf("authentication required")
	}
	assigned := review.ReviewerID != nil && *review.ReviewerID == actor.ID

	switch statusName {
	case models.StatusWithdrawn:
		if HasPerm(actor, PermWithdrawReview) || actor.ID == review.RequestedID {
			return nil
		}
	case models.StatusResolved, models.StatusApproved, models.StatusRejected:
		if HasPerm(actor, PermCloseReview) || assigned {
			return nil
		}
	default:
		return validationf("%q is not a terminal review status", statusName)
	}
	return forbiddenf("insufficient permissions")
}
