package services

import (
	"errors"
	"soapbox/internal/models"

	"gorm.io/gorm"
)

// LoadContent fetches an opinion or comment by polymorphic reference with
// its status preloaded, returning it behind the shared Content interface.
func LoadContent(tx *gorm.DB, itemType string, itemID uint) (models.Content, error) {
	switch itemType {
	case models.ItemTypeOpinion:
		var opinion models.Opinion
		if err := tx.Preload("Status").First(&opinion, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundf("opinion %d", itemID)
			}
			return nil, err
		}
		return &opinion, nil
	case models.ItemTypeComment:
		var comment models.Comment
		if err := tx.Preload("Status").First(&comment, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundf("comment %d", itemID)
			}
			return nil, err
		}
		return &comment, nil
	}
	return nil, validationf("unknown item type %q", itemType)
}

// StatusByName resolves a status registry entry.
func StatusByName(tx *gorm.DB, name string) (*models.Status, error) {
	var status models.Status
	if err := tx.Where("name = ?", name).First(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("status %q", name)
		}
		return nil, err
	}
	return &status, nil
}
