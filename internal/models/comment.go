package models

import (
	"time"
)

type Comment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Slug          string    `gorm:"uniqueIndex;size:64;not null" json:"slug"`
	OpinionID     uint      `gorm:"not null;index" json:"opinion_id"`
	Opinion       Opinion   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"opinion"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	User          User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ParentID      *uint     `gorm:"index" json:"parent_id"` // Nullable for top-level comments
	ParentComment *Comment  `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"parent"`
	Level         int       `gorm:"default:0" json:"level"` // depth in the reply tree
	Content       string    `gorm:"size:700;not null" json:"content"`
	StatusID      uint      `gorm:"not null;index" json:"status_id"`
	Status        Status    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (cm *Comment) ItemType() string { return ItemTypeComment }

func (cm *Comment) ItemID() uint { return cm.ID }

func (cm *Comment) OwnerID() uint { return cm.UserID }

func (cm *Comment) ContentSlug() string { return cm.Slug }

// StatusName requires the Status association to be preloaded.
func (cm *Comment) StatusName() string { return cm.Status.Name }

// Parent returns the parent comment when replying to a comment,
// otherwise the owning opinion.
func (cm *Comment) Parent() (ParentRef, bool) {
	if cm.ParentID != nil {
		return ParentRef{ItemType: ItemTypeComment, ItemID: *cm.ParentID}, true
	}
	return ParentRef{ItemType: ItemTypeOpinion, ItemID: cm.OpinionID}, true
}
