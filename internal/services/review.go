package services

import (
	"errors"
	"soapbox/internal/db"
	"soapbox/internal/models"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Review workflow: Report opens a case at Pending Review; SetReviewStatus
// moves it between non-terminal states and assigns a reviewer; Decide closes
// it with a terminal status and stamps the resolved time. Terminal cases are
// immutable and every item has at most one open case.

// Report files a moderation review against a content item. Returns Conflict
// when the item already has an open case.
func Report(actor *models.User, itemType string, itemID uint, reason string) (*models.Review, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, validationf("reason is required")
	}

	var review *models.Review
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		target, err := LoadContent(tx, itemType, itemID)
		if err != nil {
			return err
		}
		if err := CheckReport(actor, target); err != nil {
			return err
		}

		var open int64
		if err := tx.Model(&models.Review{}).
			Where("item_type = ? AND item_id = ? AND is_current = ?", itemType, itemID, true).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return conflictf("%s %d already has an open review", itemType, itemID)
		}

		pending, err := StatusByName(tx, models.StatusPendingReview)
		if err != nil {
			return err
		}

		review = &models.Review{
			ItemType:    itemType,
			ItemID:      itemID,
			Reason:      reason,
			RequestedID: actor.ID,
			StatusID:    pending.ID,
			IsCurrent:   true,
		}
		if err := tx.Create(review).Error; err != nil {
			// The partial unique index catches a concurrent report that
			// slipped past the count above.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflictf("%s %d already has an open review", itemType, itemID)
			}
			return err
		}
		review.Status = *pending
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reports are surfaced to the moderation team out of band.
	go NotifyReport(db.DB, actor, review)

	return review, nil
}

// SetReviewStatus patches an open review to another non-terminal status and,
// when claim is set, assigns the acting moderator as reviewer.
func SetReviewStatus(actor *models.User, reviewID uint, statusName string, claim bool) (*models.Review, error) {
	if models.TerminalStatus(statusName) {
		return nil, validationf("use a decision to close a review")
	}
	if statusName != models.StatusPendingReview && statusName != models.StatusUnderReview {
		return nil, validationf("%q is not a review status", statusName)
	}

	var review models.Review
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := loadReview(tx, reviewID, &review); err != nil {
			return err
		}
		if err := CheckReviewStatus(actor, &review); err != nil {
			return err
		}
		if review.Terminal() {
			return conflictf("review %d is closed", review.ID)
		}

		status, err := StatusByName(tx, statusName)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{"status_id": status.ID}
		if claim {
			updates["reviewer_id"] = actor.ID
		}
		res := tx.Model(&models.Review{}).
			Where("id = ? AND is_current = ?", review.ID, true).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		// A concurrent decision that committed first cleared is_current.
		if res.RowsAffected == 0 {
			return conflictf("review %d is closed", review.ID)
		}
		review.Status = *status
		if claim {
			review.ReviewerID = &actor.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Decide records the reviewer's decision: a terminal status plus an optional
// note. Sets the resolved timestamp and retires the case from the open set.
func Decide(actor *models.User, reviewID uint, statusName, comment string) (*models.Review, error) {
	if !models.TerminalStatus(statusName) {
		return nil, validationf("%q is not a terminal review status", statusName)
	}

	var review models.Review
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := loadReview(tx, reviewID, &review); err != nil {
			return err
		}
		if err := CheckDecision(actor, &review, statusName); err != nil {
			return err
		}
		if review.Terminal() {
			return conflictf("review %d is closed", review.ID)
		}

		status, err := StatusByName(tx, statusName)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		updates := map[string]interface{}{
			"status_id":  status.ID,
			"comment":    comment,
			"resolved":   &now,
			"is_current": false,
		}
		if review.ReviewerID == nil {
			updates["reviewer_id"] = actor.ID
		}
		// Conditional on is_current so only one of two concurrent
		// decisions takes effect; the loser sees zero rows.
		res := tx.Model(&models.Review{}).
			Where("id = ? AND is_current = ?", review.ID, true).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return conflictf("review %d is closed", review.ID)
		}
		review.Status = *status
		review.Comment = comment
		review.Resolved = &now
		review.IsCurrent = false
		if review.ReviewerID == nil {
			review.ReviewerID = &actor.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go NotifyDecision(db.DB, actor, &review)

	return &review, nil
}

// GetReview loads a review with its associations.
func GetReview(reviewID uint) (*models.Review, error) {
	var review models.Review
	err := db.DB.Preload("Status").Preload("Requested").Preload("Reviewer").
		First(&review, reviewID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("review %d", reviewID)
		}
		return nil, err
	}
	return &review, nil
}

// ListOpenReviews returns the open moderation queue, oldest first.
func ListOpenReviews(actor *models.User) ([]models.Review, error) {
	if !HasPerm(actor, CrudPerm("review", CrudUpdate)) {
		return nil, forbiddenf("insufficient permissions")
	}
	var reviews []models.Review
	err := db.DB.Preload("Status").Preload("Requested").Preload("Reviewer").
		Where("is_current = ?", true).
		Order("created_at ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// ReviewState summarises an item's moderation state for display filtering.
type ReviewState struct {
	Reported  bool `json:"reported"`   // a review exists, open or closed
	ReviewWip bool `json:"review_wip"` // an open review exists
	ViewOk    bool `json:"view_ok"`    // never reported, or every case withdrawn/rejected
}

// ReviewStatusCheck computes the moderation display state of a content item.
func ReviewStatusCheck(itemType string, itemID uint) (*ReviewState, error) {
	var reviews []models.Review
	err := db.DB.Preload("Status").
		Where("item_type = ? AND item_id = ?", itemType, itemID).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	state := &ReviewState{ViewOk: len(reviews) == 0}
	for _, review := range reviews {
		state.Reported = true
		switch review.Status.Name {
		case models.StatusPendingReview, models.StatusUnderReview:
			state.ReviewWip = true
		case models.StatusWithdrawn, models.StatusRejected:
			// Withdrawn or rejected cases leave the content viewable.
			state.ViewOk = true
		}
	}
	if state.ReviewWip {
		state.ViewOk = false
	}
	return state, nil
}

// loadReview loads a review row with its status within tx.
func loadReview(tx *gorm.DB, reviewID uint, review *models.Review) error {
	err := tx.Preload("Status").First(review, reviewID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("review %d", reviewID)
		}
		return err
	}
	return nil
}
