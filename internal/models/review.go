package models

import (
	"time"
)

// Review is a moderation case opened against a content item. Rows are never
// deleted; history is retained. IsCurrent marks the single open case for an
// item and is cleared when the case reaches a terminal status; the partial
// unique index enforces the one-open-case rule at the database level.
type Review struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ItemType    string     `gorm:"size:20;not null;index:idx_review_item;uniqueIndex:udx_review_open,where:is_current" json:"item_type"` // "opinion", "comment"
	ItemID      uint       `gorm:"not null;index:idx_review_item;uniqueIndex:udx_review_open" json:"item_id"`
	Reason      string     `gorm:"size:500;not null" json:"reason"`
	Comment     string     `gorm:"size:500" json:"comment"` // reviewer note, set on decision
	RequestedID uint       `gorm:"not null;index" json:"requested_id"`
	Requested   User       `gorm:"foreignKey:RequestedID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"requested"`
	ReviewerID  *uint      `gorm:"index" json:"reviewer_id"` // Nullable until a reviewer claims the case
	Reviewer    *User      `gorm:"foreignKey:ReviewerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reviewer"`
	StatusID    uint       `gorm:"not null;index" json:"status_id"`
	Status      Status     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"status"`
	IsCurrent   bool       `gorm:"default:true;index" json:"is_current"`
	Resolved    *time.Time `json:"resolved"` // nil until a decision closes the case
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Terminal requires the Status association to be preloaded.
func (r *Review) Terminal() bool {
	return TerminalStatus(r.Status.Name)
}
