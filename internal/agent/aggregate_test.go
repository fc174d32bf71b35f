package agent

import (
	"testing"

	"github.com/nholden/mailsort/internal/domain"
)

func TestSummarizeUnread(t *testing.T) {
	emails := testEmails()
	Process(emails, testClassifier())

	s := SummarizeUnread(emails)
	if s.Total != 4 {
		t.Errorf("Total = %d, want 4", s.Total)
	}

	// Stable folder order, folders without unread mail omitted
	// (email 3 in personal is read).
	wantFolders := []domain.Folder{
		domain.FolderInbox,
		domain.FolderWork,
		domain.FolderSpam,
		domain.FolderPromotions,
	}
	if len(s.Groups) != len(wantFolders) {
		t.Fatalf("got %d groups, want %d: %+v", len(s.Groups), len(wantFolders), s.Groups)
	}
	for i, want := range wantFolders {
		if s.Groups[i].Folder != want {
			t.Errorf("group %d folder = %q, want %q", i, s.Groups[i].Folder, want)
		}
	}
}

func TestSummarizeUnread_InsertionOrderWithinGroup(t *testing.T) {
	emails := []domain.Email{
		{ID: 9, Folder: domain.FolderWork, Category: domain.CategoryWork},
		{ID: 2, Folder: domain.FolderWork, Category: domain.CategoryWork},
		{ID: 5, Folder: domain.FolderWork, Category: domain.CategoryWork, Read: true},
		{ID: 7, Folder: domain.FolderWork, Category: domain.CategoryWork},
	}
	s := SummarizeUnread(emails)
	if len(s.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(s.Groups))
	}
	wantIDs := []int{9, 2, 7}
	got := s.Groups[0].Emails
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d emails, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("group[0].Emails[%d].ID = %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestStatistics(t *testing.T) {
	emails := testEmails()
	Process(emails, testClassifier())

	st := Statistics(emails)
	if st.Total != 5 {
		t.Errorf("Total = %d, want 5", st.Total)
	}
	if st.Unread != 4 {
		t.Errorf("Unread = %d, want 4", st.Unread)
	}
	if st.HighPriorityUnread != 1 {
		t.Errorf("HighPriorityUnread = %d, want 1", st.HighPriorityUnread)
	}
	if st.ByFolder[domain.FolderWork] != 1 {
		t.Errorf("ByFolder[work] = %d, want 1", st.ByFolder[domain.FolderWork])
	}
	if st.ByFolder[domain.FolderInbox] != 1 {
		t.Errorf("ByFolder[inbox] = %d, want 1", st.ByFolder[domain.FolderInbox])
	}
	if st.ByCategory[domain.CategorySpam] != 1 {
		t.Errorf("ByCategory[spam] = %d, want 1", st.ByCategory[domain.CategorySpam])
	}
	if _, ok := st.ByCategory[domain.CategoryUncategorized]; ok {
		t.Error("ByCategory should not count uncategorized emails")
	}
}

func TestHighPriorityAlerts(t *testing.T) {
	emails := testEmails()
	Process(emails, testClassifier())

	alerts := HighPriorityAlerts(emails)
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1: %+v", len(alerts), alerts)
	}
	if alerts[0].ID != 1 {
		t.Errorf("alert ID = %d, want 1", alerts[0].ID)
	}
}

func TestHighPriorityAlerts_SpamSuppressed(t *testing.T) {
	// Even a record that somehow carries priority=high while
	// categorized spam never surfaces as an alert.
	emails := []domain.Email{
		{ID: 1, Priority: domain.PriorityHigh, Category: domain.CategorySpam, Folder: domain.FolderSpam},
		{ID: 2, Priority: domain.PriorityHigh, Category: domain.CategoryWork, Folder: domain.FolderWork},
	}
	alerts := HighPriorityAlerts(emails)
	if len(alerts) != 1 || alerts[0].ID != 2 {
		t.Errorf("alerts = %+v, want only email 2", alerts)
	}
}

func TestHighPriorityAlerts_InsertionOrder(t *testing.T) {
	emails := []domain.Email{
		{ID: 30, Priority: domain.PriorityHigh, Category: domain.CategoryWork},
		{ID: 10, Priority: domain.PriorityHigh, Category: domain.CategoryWork, Read: true},
		{ID: 20, Priority: domain.PriorityHigh, Category: domain.CategoryPersonal},
	}
	alerts := HighPriorityAlerts(emails)
	if len(alerts) != 2 || alerts[0].ID != 30 || alerts[1].ID != 20 {
		t.Errorf("alerts = %+v, want ids 30, 20 in order", alerts)
	}
}
