package models

// Lifecycle status names. Content items use the draft/preview/published set,
// reviews use the pending/under-review/terminal set.
const (
	StatusDraft         = "Draft"
	StatusPreview       = "Preview"
	StatusPublished     = "Published"
	StatusPendingReview = "Pending Review"
	StatusUnderReview   = "Under Review"
	StatusApproved      = "Approved" // review closed, content needs work
	StatusRejected      = "Rejected" // review closed, content ok
	StatusResolved      = "Resolved"
	StatusWithdrawn     = "Withdrawn"
)

type Status struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:40;uniqueIndex;not null" json:"name"`
}

// TerminalStatus reports whether a review status name is terminal.
// Terminal reviews are immutable.
func TerminalStatus(name string) bool {
	switch name {
	case StatusResolved, StatusWithdrawn, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ReviewStatuses lists the status names a review may hold.
func ReviewStatuses() []string {
	return []string{
		StatusPendingReview, StatusUnderReview,
		StatusResolved, StatusWithdrawn, StatusApproved, StatusRejected,
	}
}
