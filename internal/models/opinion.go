package models

import (
	"time"
)

type Opinion struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Slug       string     `gorm:"uniqueIndex;size:64;not null" json:"slug"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	User       User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title      string     `gorm:"size:100;uniqueIndex;not null" json:"title"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Excerpt    string     `gorm:"size:150" json:"excerpt"`
	StatusID   uint       `gorm:"not null;index" json:"status_id"`
	Status     Status     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"status"`
	Categories []Category `gorm:"many2many:opinion_categories;" json:"categories"`
	Published  *time.Time `json:"published"` // set once, first transition to Published
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Not a database column, filled in by queries
	CommentCount int `gorm:"-" json:"comment_count"`
}

func (o *Opinion) ItemType() string { return ItemTypeOpinion }

func (o *Opinion) ItemID() uint { return o.ID }

func (o *Opinion) OwnerID() uint { return o.UserID }

func (o *Opinion) ContentSlug() string { return o.Slug }

// StatusName requires the Status association to be preloaded.
func (o *Opinion) StatusName() string { return o.Status.Name }

func (o *Opinion) Parent() (ParentRef, bool) { return ParentRef{}, false }
