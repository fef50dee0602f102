package models

import (
	"time"
)

type ReactionKind string

const (
	ReactionLike     ReactionKind = "like"
	ReactionDisagree ReactionKind = "disagree"
	ReactionHide     ReactionKind = "hide"
	ReactionPin      ReactionKind = "pin"
	ReactionFollow   ReactionKind = "follow"
)

// ValidReactionKind reports whether kind is one of the fixed enumeration.
func ValidReactionKind(kind ReactionKind) bool {
	switch kind {
	case ReactionLike, ReactionDisagree, ReactionHide, ReactionPin, ReactionFollow:
		return true
	}
	return false
}

// Reaction records one user's reaction of one kind against one content item.
// At most one row exists per (user, item, kind); toggling flips Active
// instead of inserting a new row.
type Reaction struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_user_item_kind" json:"user_id"`
	User      User         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ItemType  string       `gorm:"size:20;not null;uniqueIndex:idx_user_item_kind" json:"item_type"` // "opinion", "comment"
	ItemID    uint         `gorm:"not null;uniqueIndex:idx_user_item_kind;index" json:"item_id"`
	Kind      ReactionKind `gorm:"size:20;not null;uniqueIndex:idx_user_item_kind" json:"kind"`
	Active    bool         `gorm:"default:true" json:"active"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
