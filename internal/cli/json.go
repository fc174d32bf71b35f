package cli

import (
	"github.com/nholden/mailsort/internal/agent"
	"github.com/nholden/mailsort/internal/domain"
)

// ---------------------------------------------------------------------------
// Email JSON type (list, summary entries, alerts)
// ---------------------------------------------------------------------------

type jsonEmail struct {
	ID        int    `json:"id"`
	Sender    string `json:"sender"`
	Subject   string `json:"subject"`
	Timestamp string `json:"timestamp,omitempty"`
	Folder    string `json:"folder"`
	Read      bool   `json:"read"`
	Priority  string `json:"priority"`
	Category  string `json:"category,omitempty"`
}

func toJSONEmail(e *domain.Email) jsonEmail {
	return jsonEmail{
		ID:        e.ID,
		Sender:    e.Sender,
		Subject:   e.Subject,
		Timestamp: e.Timestamp,
		Folder:    string(e.Folder),
		Read:      e.Read,
		Priority:  string(e.Priority),
		Category:  string(e.Category),
	}
}

func toJSONEmails(emails []domain.Email) []jsonEmail {
	out := make([]jsonEmail, 0, len(emails))
	for i := range emails {
		out = append(out, toJSONEmail(&emails[i]))
	}
	return out
}

// ---------------------------------------------------------------------------
// Summary JSON type (summary)
// ---------------------------------------------------------------------------

type jsonSummary struct {
	Total  int               `json:"total"`
	Groups []jsonFolderGroup `json:"groups"`
}

type jsonFolderGroup struct {
	Folder string      `json:"folder"`
	Emails []jsonEmail `json:"emails"`
}

func toJSONSummary(s *agent.Summary) jsonSummary {
	groups := make([]jsonFolderGroup, 0, len(s.Groups))
	for _, g := range s.Groups {
		groups = append(groups, jsonFolderGroup{
			Folder: string(g.Folder),
			Emails: toJSONEmails(g.Emails),
		})
	}
	return jsonSummary{Total: s.Total, Groups: groups}
}

// ---------------------------------------------------------------------------
// Stats JSON type (stats)
// ---------------------------------------------------------------------------

type jsonStats struct {
	Total              int            `json:"total"`
	Unread             int            `json:"unread"`
	HighPriorityUnread int            `json:"high_priority_unread"`
	Folders            map[string]int `json:"folders"`
	Categories         map[string]int `json:"categories"`
}

func toJSONStats(st *agent.Stats) jsonStats {
	folders := make(map[string]int, len(st.ByFolder))
	for f, n := range st.ByFolder {
		folders[string(f)] = n
	}
	categories := make(map[string]int, len(st.ByCategory))
	for c, n := range st.ByCategory {
		categories[string(c)] = n
	}
	return jsonStats{
		Total:              st.Total,
		Unread:             st.Unread,
		HighPriorityUnread: st.HighPriorityUnread,
		Folders:            folders,
		Categories:         categories,
	}
}

// ---------------------------------------------------------------------------
// Process JSON type (process)
// ---------------------------------------------------------------------------

type jsonProcess struct {
	Classified int         `json:"classified"`
	Sorted     int         `json:"sorted"`
	Skipped    int         `json:"skipped_records,omitempty"`
	Alerts     []jsonEmail `json:"alerts,omitempty"`
}

func toJSONProcess(r *agent.ProcessReport) jsonProcess {
	return jsonProcess{
		Classified: r.Result.Classified,
		Sorted:     r.Result.Sorted,
		Skipped:    len(r.Rejected),
		Alerts:     toJSONEmails(r.Alerts),
	}
}

// ---------------------------------------------------------------------------
// Action JSON type (read)
// ---------------------------------------------------------------------------

type jsonAction struct {
	OK     bool   `json:"ok"`
	Action string `json:"action"`
	ID     int    `json:"id,omitempty"`
}
