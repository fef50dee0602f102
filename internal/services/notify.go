package services

import (
	"fmt"
	"log"
	"soapbox/internal/models"

	"gorm.io/gorm"
)

// NotifyReport notifies the moderation team that a report was filed.
// Called in a goroutine after the report transaction commits.
func NotifyReport(g *gorm.DB, reporter *models.User, review *models.Review) {
	var moderators []models.User
	if err := g.Where("role IN ?",
		[]string{models.RoleModerator, models.RoleAdmin}).
		Find(&moderators).Error; err != nil {
		log.Printf("Failed to load moderators for report notification: %v", err)
		return
	}

	reason := fmt.Sprintf("reported %s %d: %s",
		review.ItemType, review.ItemID, review.Reason)
	for _, moderator := range moderators {
		notification := models.Notification{
			UserID:  moderator.ID,
			ActorID: &reporter.ID,
			Type:    models.NotificationTypeReport,
			Reason:  reason,
		}
		if err := g.Create(&notification).Error; err != nil {
			log.Printf("Failed to create report notification: %v", err)
		}
	}
}

// NotifyDecision tells the requesting user their report has been closed.
func NotifyDecision(g *gorm.DB, reviewer *models.User, review *models.Review) {
	if review.RequestedID == reviewer.ID {
		return
	}
	notification := models.Notification{
		UserID:  review.RequestedID,
		ActorID: &reviewer.ID,
		Type:    models.NotificationTypeDecision,
		Reason: fmt.Sprintf("your report on %s %d was closed as %s",
			review.ItemType, review.ItemID, review.Status.Name),
	}
	if err := g.Create(&notification).Error; err != nil {
		log.Printf("Failed to create decision notification: %v", err)
	}
}
