package services

import (
	"errors"
	"soapbox/internal/db"
	"soapbox/internal/models"
	"soapbox/internal/utils"
	"strings"
	"time"

	"gorm.io/gorm"
)

const excerptMaxLen = 150

// OpinionInput carries the author-editable fields of an opinion.
type OpinionInput struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	CategoryIDs []uint `json:"category_ids"`
	// Status is the requested save state: Draft, Preview or Published.
	Status string `json:"status"`
}

func saveStatus(name string) (string, error) {
	switch name {
	case "", models.StatusDraft:
		return models.StatusDraft, nil
	case models.StatusPreview, models.StatusPublished:
		return name, nil
	}
	return "", validationf("%q is not a save status", name)
}

// CreateOpinion creates an opinion for the actor. The slug is generated from
// the title at creation and never changes afterwards.
func CreateOpinion(actor *models.User, input OpinionInput) (*models.Opinion, error) {
	if actor == nil {
		return nil, forbiddenf("authentication required")
	}
	if !HasPerm(actor, CrudPerm(models.ItemTypeOpinion, CrudCreate)) {
		return nil, forbiddenf("insufficient permissions")
	}

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" {
		return nil, validationf("title is required")
	}
	if content == "" {
		return nil, validationf("content is required")
	}
	statusName, err := saveStatus(input.Status)
	if err != nil {
		return nil, err
	}

	var opinion *models.Opinion
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		status, err := StatusByName(tx, statusName)
		if err != nil {
			return err
		}

		slug := utils.Slugify(title)
		var clash int64
		if err := tx.Model(&models.Opinion{}).Where("slug = ?", slug).Count(&clash).Error; err != nil {
			return err
		}
		if slug == "" || clash > 0 {
			slug = utils.UniqueSlug(title)
		}

		opinion = &models.Opinion{
			Slug:     slug,
			UserID:   actor.ID,
			Title:    title,
			Content:  content,
			Excerpt:  utils.Excerpt(content, excerptMaxLen),
			StatusID: status.ID,
		}
		if statusName == models.StatusPublished {
			now := time.Now().UTC()
			opinion.Published = &now
		}
		if err := tx.Create(opinion).Error; err != nil {
			return err
		}
		if len(input.CategoryIDs) > 0 {
			var categories []models.Category
			if err := tx.Find(&categories, input.CategoryIDs).Error; err != nil {
				return err
			}
			if err := tx.Model(opinion).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}
		opinion.Status = *status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return opinion, nil
}

// UpdateOpinion updates an opinion's editable fields. Only the author may
// update, and the slug stays as created.
func UpdateOpinion(actor *models.User, slug string, input OpinionInput) (*models.Opinion, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" {
		return nil, validationf("title is required")
	}
	if content == "" {
		return nil, validationf("content is required")
	}
	statusName, err := saveStatus(input.Status)
	if err != nil {
		return nil, err
	}

	var opinion models.Opinion
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Status").Where("slug = ?", slug).First(&opinion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("opinion %q", slug)
			}
			return err
		}
		if err := CheckContent(actor, CrudUpdate, &opinion); err != nil {
			return err
		}

		status, err := StatusByName(tx, statusName)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"title":     title,
			"content":   content,
			"excerpt":   utils.Excerpt(content, excerptMaxLen),
			"status_id": status.ID,
		}
		// First time published gets the timestamp, later republishing
		// keeps the original date.
		if statusName == models.StatusPublished && opinion.Published == nil {
			now := time.Now().UTC()
			updates["published"] = &now
			opinion.Published = &now
		}
		if err := tx.Model(&opinion).Updates(updates).Error; err != nil {
			return err
		}
		if input.CategoryIDs != nil {
			var categories []models.Category
			if err := tx.Find(&categories, input.CategoryIDs).Error; err != nil {
				return err
			}
			if err := tx.Model(&opinion).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}
		opinion.Title = title
		opinion.Content = content
		opinion.Status = *status
		opinion.StatusID = status.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &opinion, nil
}

// SetContentStatus patches just the lifecycle status of a content item.
// Authors move their own content between save states; the moderation
// subsystem (close-review holders) may apply the review markers.
func SetContentStatus(actor *models.User, itemType string, itemID uint, statusName string) (models.Content, error) {
	var target models.Content
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		target, err = LoadContent(tx, itemType, itemID)
		if err != nil {
			return err
		}

		reviewMarker := statusName == models.StatusPendingReview ||
			statusName == models.StatusUnderReview
		if reviewMarker {
			if !HasPerm(actor, PermCloseReview) {
				return forbiddenf("insufficient permissions")
			}
		} else {
			if _, err := saveStatus(statusName); err != nil {
				return err
			}
			if err := CheckContent(actor, CrudUpdate, target); err != nil {
				return err
			}
		}

		status, err := StatusByName(tx, statusName)
		if err != nil {
			return err
		}

		switch item := target.(type) {
		case *models.Opinion:
			updates := map[string]interface{}{"status_id": status.ID}
			if statusName == models.StatusPublished && item.Published == nil {
				now := time.Now().UTC()
				updates["published"] = &now
				item.Published = &now
			}
			if err := tx.Model(item).Updates(updates).Error; err != nil {
				return err
			}
			item.Status = *status
			item.StatusID = status.ID
		case *models.Comment:
			if err := tx.Model(item).Update("status_id", status.ID).Error; err != nil {
				return err
			}
			item.Status = *status
			item.StatusID = status.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}
