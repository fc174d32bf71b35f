package domain

import "strings"

// Category is the semantic class assigned to an email by classification.
// The zero value means the email has not been categorized yet.
type Category string

const (
	CategoryWork          Category = "work"
	CategoryPersonal      Category = "personal"
	CategorySpam          Category = "spam"
	CategoryPromotional   Category = "promotional"
	CategoryUncategorized Category = ""
)

// Folder is the storage bucket an email is routed to, derived
// one-to-one from its category.
type Folder string

const (
	FolderInbox      Folder = "inbox"
	FolderWork       Folder = "work"
	FolderPersonal   Folder = "personal"
	FolderSpam       Folder = "spam"
	FolderPromotions Folder = "promotions"
)

// FolderOrder is the stable display order for folders in summaries
// and the sidebar.
var FolderOrder = []Folder{
	FolderInbox,
	FolderWork,
	FolderPersonal,
	FolderSpam,
	FolderPromotions,
}

// Priority is the urgency level of an email, independent of its
// category except that spam is never high.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// FolderFor maps a category to its folder. Total: unknown or empty
// categories route to the inbox.
func FolderFor(c Category) Folder {
	switch c {
	case CategoryWork:
		return FolderWork
	case CategoryPersonal:
		return FolderPersonal
	case CategorySpam:
		return FolderSpam
	case CategoryPromotional:
		return FolderPromotions
	default:
		return FolderInbox
	}
}

type Email struct {
	ID        int
	Sender    string
	Subject   string
	Body      string
	Timestamp string // opaque to the core, round-tripped unchanged
	Folder    Folder
	Read      bool
	Priority  Priority
	Category  Category
}

// SenderDomain returns the lowercased domain part of the sender
// address, or "" when the sender has no @.
func (e *Email) SenderDomain() string {
	i := strings.LastIndexByte(e.Sender, '@')
	if i < 0 || i == len(e.Sender)-1 {
		return ""
	}
	return strings.ToLower(e.Sender[i+1:])
}
