// Package agent orchestrates classification over the email
// collection and answers aggregate queries on it.
package agent

import (
	"errors"

	"github.com/nholden/mailsort/internal/classify"
	"github.com/nholden/mailsort/internal/domain"
)

// ErrNotFound is returned when an operation references an email id
// the collection does not contain.
var ErrNotFound = errors.New("email not found")

// ProcessResult reports what one process pass changed.
type ProcessResult struct {
	Classified int // emails whose category changed or was newly assigned
	Sorted     int // emails whose folder changed
}

// Process runs one classify-and-sort pass over every email in place:
// rule evaluation, priority assessment, then folder routing. The pass
// is idempotent; running it again over unchanged content reports 0/0.
func Process(emails []domain.Email, c classify.Classifier) ProcessResult {
	var res ProcessResult
	for i := range emails {
		e := &emails[i]

		cat := c.Classify(e)
		if e.Category != cat {
			res.Classified++
		}
		e.Priority = c.AssessPriority(e, cat)
		e.Category = cat

		folder := domain.FolderFor(cat)
		if e.Folder != folder {
			res.Sorted++
		}
		e.Folder = folder
	}
	return res
}

// MarkRead flips the email with the given id to read. The collection
// is untouched when the id is unknown.
func MarkRead(emails []domain.Email, id int) error {
	for i := range emails {
		if emails[i].ID == id {
			emails[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

// FilterByFolder returns the emails in folder, preserving order.
func FilterByFolder(emails []domain.Email, folder domain.Folder) []domain.Email {
	var out []domain.Email
	for i := range emails {
		if emails[i].Folder == folder {
			out = append(out, emails[i])
		}
	}
	return out
}

// FilterUnread returns the unread emails, preserving order.
func FilterUnread(emails []domain.Email) []domain.Email {
	var out []domain.Email
	for i := range emails {
		if !emails[i].Read {
			out = append(out, emails[i])
		}
	}
	return out
}
