package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nholden/mailsort/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "emails.json"))
}

func TestLoad_MissingFile(t *testing.T) {
	s := newTestStore(t)
	emails, rejected, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(emails) != 0 || len(rejected) != 0 {
		t.Errorf("Load() = %d emails, %d rejected; want empty collection", len(emails), len(rejected))
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emails.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	_, _, err := New(path).Load(context.Background())
	if err == nil {
		t.Fatal("Load() should return error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("error = %q, want it to contain %q", err.Error(), "failed to parse")
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := []domain.Email{
		{
			ID:        1,
			Sender:    "boss@company.com",
			Subject:   "Q4 Project Deadline - Important",
			Body:      "the deadline is Friday",
			Timestamp: "2024-01-15T09:30:00Z",
			Folder:    domain.FolderWork,
			Read:      false,
			Priority:  domain.PriorityHigh,
			Category:  domain.CategoryWork,
		},
		{
			ID:        2,
			Sender:    "news@shop.example",
			Subject:   "Sale",
			Body:      "20% off",
			Timestamp: "not-a-standard-timestamp", // opaque, must survive unchanged
			Folder:    domain.FolderPromotions,
			Read:      true,
			Priority:  domain.PriorityLow,
			Category:  domain.CategoryPromotional,
		},
	}

	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	out, rejected, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(rejected) != 0 {
		t.Fatalf("Load() rejected %d records: %v", len(rejected), rejected)
	}
	if len(out) != len(in) {
		t.Fatalf("Load() returned %d emails, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("email %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestLoad_DefaultsForAbsentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emails.json")
	raw := `[{"id": 7, "sender": "a@b.example", "subject": "hi", "body": "hello"}]`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	emails, rejected, err := New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(rejected) != 0 {
		t.Fatalf("rejected = %v, want none", rejected)
	}
	if len(emails) != 1 {
		t.Fatalf("got %d emails, want 1", len(emails))
	}
	e := emails[0]
	if e.Folder != domain.FolderInbox {
		t.Errorf("Folder = %q, want %q", e.Folder, domain.FolderInbox)
	}
	if e.Read {
		t.Error("Read = true, want false")
	}
	if e.Priority != domain.PriorityNormal {
		t.Errorf("Priority = %q, want %q", e.Priority, domain.PriorityNormal)
	}
	if e.Category != domain.CategoryUncategorized {
		t.Errorf("Category = %q, want uncategorized", e.Category)
	}
}

func TestLoad_RejectsMalformedRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emails.json")
	raw := `[
		{"id": 1, "sender": "a@b.example", "subject": "ok", "body": "fine"},
		{"sender": "x@y.example", "subject": "no id", "body": "rejected"},
		{"id": 3, "subject": "no sender", "body": "rejected"},
		{"id": 1, "sender": "dup@b.example", "subject": "dup id", "body": "rejected"},
		{"id": 4, "sender": "c@d.example", "subject": "also ok", "body": "fine"}
	]`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	emails, rejected, err := New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(emails) != 2 {
		t.Errorf("got %d emails, want 2 (malformed records skipped, rest kept)", len(emails))
	}
	if len(rejected) != 3 {
		t.Fatalf("rejected %d records, want 3: %v", len(rejected), rejected)
	}
	wantReasons := []string{"missing id", "missing sender", "duplicate id 1"}
	for i, want := range wantReasons {
		if rejected[i].Reason != want {
			t.Errorf("rejected[%d].Reason = %q, want %q", i, rejected[i].Reason, want)
		}
	}
	if emails[0].ID != 1 || emails[1].ID != 4 {
		t.Errorf("kept ids = %d, %d; want 1, 4", emails[0].ID, emails[1].ID)
	}
}

func TestLoad_NormalizesLegacyFolder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emails.json")
	raw := `[{"id": 1, "sender": "a@b.example", "subject": "s", "body": "b", "folder": "promotional"}]`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	emails, _, err := New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if emails[0].Folder != domain.FolderPromotions {
		t.Errorf("Folder = %q, want %q", emails[0].Folder, domain.FolderPromotions)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "data", "emails.json")
	s := New(path)
	if err := s.Save(context.Background(), nil); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file at %s: %v", path, err)
	}
}
