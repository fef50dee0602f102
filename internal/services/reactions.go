package services

import (
	"errors"
	"soapbox/internal/db"
	"soapbox/internal/models"

	"gorm.io/gorm"
)

// DefaultCommentDepth is the reply depth rendered for visible comments.
// Hidden comments render collapsed at depth zero.
const DefaultCommentDepth = 2

// ReactionState is the state of one (actor, item, kind) reaction after a
// SetReaction call.
type ReactionState struct {
	ID          uint                `json:"id"`
	Kind        models.ReactionKind `json:"kind"`
	Active      bool                `json:"active"`
	ActiveCount int64               `json:"active_count"` // active reactions of this kind on the item
	RenderDepth int                 `json:"render_depth"` // derived, only meaningful for hide
}

// SetReaction sets the actor's reaction of the given kind on a content item
// to the desired state. Idempotent: repeating a call with the same desired
// state changes nothing and returns the same row. Like and disagree are
// mutually exclusive; activating one deactivates the other.
func SetReaction(actor *models.User, itemType string, itemID uint,
	kind models.ReactionKind, desired bool) (*ReactionState, error) {

	if !models.ValidReactionKind(kind) {
		return nil, validationf("unknown reaction kind %q", kind)
	}

	var state *ReactionState
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		target, err := LoadContent(tx, itemType, itemID)
		if err != nil {
			return err
		}
		if err := CheckReaction(actor, kind, target); err != nil {
			return err
		}

		reaction, err := upsertReaction(tx, actor.ID, itemType, itemID, kind, desired)
		if err != nil {
			return err
		}

		// Agreement exclusivity: turning one side on turns the other off.
		if desired && (kind == models.ReactionLike || kind == models.ReactionDisagree) {
			other := models.ReactionLike
			if kind == models.ReactionLike {
				other = models.ReactionDisagree
			}
			if err := tx.Model(&models.Reaction{}).
				Where("user_id = ? AND item_type = ? AND item_id = ? AND kind = ?",
					actor.ID, itemType, itemID, other).
				Update("active", false).Error; err != nil {
				return err
			}
		}

		var count int64
		if err := tx.Model(&models.Reaction{}).
			Where("item_type = ? AND item_id = ? AND kind = ? AND active = ?",
				itemType, itemID, kind, true).
			Count(&count).Error; err != nil {
			return err
		}

		state = &ReactionState{
			ID:          reaction.ID,
			Kind:        kind,
			Active:      reaction.Active,
			ActiveCount: count,
			RenderDepth: DefaultCommentDepth,
		}
		if kind == models.ReactionHide && reaction.Active {
			state.RenderDepth = 0
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// upsertReaction toggles the existing row or creates the single row for
// (user, item, kind). Never inserts a duplicate.
func upsertReaction(tx *gorm.DB, userID uint, itemType string, itemID uint,
	kind models.ReactionKind, desired bool) (*models.Reaction, error) {

	var reaction models.Reaction
	err := tx.Where("user_id = ? AND item_type = ? AND item_id = ? AND kind = ?",
		userID, itemType, itemID, kind).First(&reaction).Error
	if err == nil {
		if reaction.Active == desired {
			// Already in the desired state, nothing to do.
			return &reaction, nil
		}
		if err := tx.Model(&reaction).Update("active", desired).Error; err != nil {
			return nil, err
		}
		reaction.Active = desired
		return &reaction, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	reaction = models.Reaction{
		UserID:   userID,
		ItemType: itemType,
		ItemID:   itemID,
		Kind:     kind,
		Active:   desired,
	}
	if err := tx.Create(&reaction).Error; err != nil {
		return nil, err
	}
	return &reaction, nil
}

// RenderDepth returns the depth dependent UI should render a content item
// at for the given viewer: zero when the viewer has hidden it, the default
// depth otherwise.
func RenderDepth(viewer *models.User, itemType string, itemID uint) int {
	if viewer == nil {
		return DefaultCommentDepth
	}
	var count int64
	db.DB.Model(&models.Reaction{}).
		Where("user_id = ? AND item_type = ? AND item_id = ? AND kind = ? AND active = ?",
			viewer.ID, itemType, itemID, models.ReactionHide, true).
		Count(&count)
	if count > 0 {
		return 0
	}
	return DefaultCommentDepth
}

// ReactionStatus is a viewer's active reactions on one content item.
type ReactionStatus struct {
	Like      bool `json:"like"`
	Disagree  bool `json:"disagree"`
	Hidden    bool `json:"hidden"`
	Pinned    bool `json:"pinned"`
	Following bool `json:"following"`
	Reported  bool `json:"reported"`
}

// GetReactionStatus collects the viewer's reaction state for a content item,
// including whether they have an open report against it.
func GetReactionStatus(viewer *models.User, itemType string, itemID uint) (*ReactionStatus, error) {
	status := &ReactionStatus{}
	if viewer == nil {
		return status, nil
	}

	var reactions []models.Reaction
	if err := db.DB.
		Where("user_id = ? AND item_type = ? AND item_id = ? AND active = ?",
			viewer.ID, itemType, itemID, true).
		Find(&reactions).Error; err != nil {
		return nil, err
	}
	for _, reaction := range reactions {
		switch reaction.Kind {
		case models.ReactionLike:
			status.Like = true
		case models.ReactionDisagree:
			status.Disagree = true
		case models.ReactionHide:
			status.Hidden = true
		case models.ReactionPin:
			status.Pinned = true
		case models.ReactionFollow:
			status.Following = true
		}
	}

	var reported int64
	if err := db.DB.Model(&models.Review{}).
		Where("requested_id = ? AND item_type = ? AND item_id = ?",
			viewer.ID, itemType, itemID).
		Count(&reported).Error; err != nil {
		return nil, err
	}
	status.Reported = reported > 0

	return status, nil
}
