package models

// Item type discriminators for polymorphic references (reactions, reviews).
const (
	ItemTypeOpinion = "opinion"
	ItemTypeComment = "comment"
)

// ParentRef identifies the parent of a content item in the comment tree.
type ParentRef struct {
	ItemType string
	ItemID   uint
}

// Content is the uniform surface over Opinion and Comment. The reaction
// engine, review workflow and permission gate operate on it without
// branching on the concrete type.
type Content interface {
	ItemType() string
	ItemID() uint
	OwnerID() uint
	ContentSlug() string
	StatusName() string
	// Parent returns the parent reference and false for top-level items.
	Parent() (ParentRef, bool)
}
