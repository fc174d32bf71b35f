// Package jsonfile persists the email collection as a flat JSON array,
// the format the sorter's data files use on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nholden/mailsort/internal/domain"
	"github.com/nholden/mailsort/internal/store"
)

// record is the persisted shape of one email. Pointer fields
// distinguish absent from empty: id, sender, subject, and body are
// required, the rest default.
type record struct {
	ID        *int    `json:"id"`
	Sender    *string `json:"sender"`
	Subject   *string `json:"subject"`
	Body      *string `json:"body"`
	Timestamp string  `json:"timestamp"`
	Folder    string  `json:"folder"`
	Read      bool    `json:"read"`
	Priority  string  `json:"priority"`
	Category  string  `json:"category,omitempty"`
}

// Store reads and writes the collection at a single file path.
type Store struct {
	path string
}

// New creates a JSON file store at path. The file is created on the
// first Save; a missing file loads as an empty collection.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the collection. Records missing a required field are
// rejected individually; the rest of the collection stays available.
func (s *Store) Load(ctx context.Context) ([]domain.Email, []store.RecordError, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	var emails []domain.Email
	var rejected []store.RecordError
	seen := make(map[int]bool, len(records))

	for i, r := range records {
		if reason := validate(r); reason != "" {
			rejected = append(rejected, store.RecordError{Index: i, Reason: reason})
			continue
		}
		if seen[*r.ID] {
			rejected = append(rejected, store.RecordError{Index: i, Reason: fmt.Sprintf("duplicate id %d", *r.ID)})
			continue
		}
		seen[*r.ID] = true
		emails = append(emails, toEmail(r))
	}

	return emails, rejected, nil
}

// Save writes the collection as indented JSON. The write is atomic:
// a temp file in the same directory is renamed over the target.
func (s *Store) Save(ctx context.Context, emails []domain.Email) error {
	records := make([]record, 0, len(emails))
	for i := range emails {
		records = append(records, toRecord(&emails[i]))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode emails: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".emails-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write emails: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) Close() error { return nil }

func validate(r record) string {
	switch {
	case r.ID == nil:
		return "missing id"
	case r.Sender == nil:
		return "missing sender"
	case r.Subject == nil:
		return "missing subject"
	case r.Body == nil:
		return "missing body"
	}
	return ""
}

func toEmail(r record) domain.Email {
	e := domain.Email{
		ID:        *r.ID,
		Sender:    *r.Sender,
		Subject:   *r.Subject,
		Body:      *r.Body,
		Timestamp: r.Timestamp,
		Read:      r.Read,
		Folder:    domain.Folder(r.Folder),
		Priority:  domain.Priority(r.Priority),
		Category:  domain.Category(r.Category),
	}
	switch e.Folder {
	case "":
		e.Folder = domain.FolderInbox
	case "promotional": // legacy folder name from older data files
		e.Folder = domain.FolderPromotions
	}
	switch e.Priority {
	case domain.PriorityHigh, domain.PriorityNormal, domain.PriorityLow:
	default:
		e.Priority = domain.PriorityNormal
	}
	return e
}

func toRecord(e *domain.Email) record {
	return record{
		ID:        &e.ID,
		Sender:    &e.Sender,
		Subject:   &e.Subject,
		Body:      &e.Body,
		Timestamp: e.Timestamp,
		Folder:    string(e.Folder),
		Read:      e.Read,
		Priority:  string(e.Priority),
		Category:  string(e.Category),
	}
}
