package agent

import "github.com/nholden/mailsort/internal/domain"

// FolderGroup is one folder's slice of an unread summary.
type FolderGroup struct {
	Folder domain.Folder
	Emails []domain.Email
}

// Summary groups unread emails by folder in stable folder order.
type Summary struct {
	Total  int
	Groups []FolderGroup
}

// Stats holds collection-wide counts.
type Stats struct {
	Total              int
	Unread             int
	HighPriorityUnread int
	ByFolder           map[domain.Folder]int
	ByCategory         map[domain.Category]int
}

// SummarizeUnread groups all unread emails by folder. Folders appear
// in the order of domain.FolderOrder; within a folder, emails keep
// the collection's insertion order. Folders with no unread email are
// omitted.
func SummarizeUnread(emails []domain.Email) Summary {
	byFolder := make(map[domain.Folder][]domain.Email)
	total := 0
	for i := range emails {
		if emails[i].Read {
			continue
		}
		byFolder[emails[i].Folder] = append(byFolder[emails[i].Folder], emails[i])
		total++
	}

	s := Summary{Total: total}
	for _, f := range domain.FolderOrder {
		if group := byFolder[f]; len(group) > 0 {
			s.Groups = append(s.Groups, FolderGroup{Folder: f, Emails: group})
		}
	}
	return s
}

// Statistics counts the collection by folder and category.
func Statistics(emails []domain.Email) Stats {
	st := Stats{
		Total:      len(emails),
		ByFolder:   make(map[domain.Folder]int),
		ByCategory: make(map[domain.Category]int),
	}
	for i := range emails {
		e := &emails[i]
		st.ByFolder[e.Folder]++
		if e.Category != domain.CategoryUncategorized {
			st.ByCategory[e.Category]++
		}
		if !e.Read {
			st.Unread++
			if e.Priority == domain.PriorityHigh {
				st.HighPriorityUnread++
			}
		}
	}
	return st
}

// HighPriorityAlerts returns unread high-priority emails in insertion
// order. Spam is excluded outright: the priority heuristic never
// leaves spam high, and an unprocessed record cannot sneak in either.
func HighPriorityAlerts(emails []domain.Email) []domain.Email {
	var out []domain.Email
	for i := range emails {
		e := &emails[i]
		if e.Read || e.Priority != domain.PriorityHigh {
			continue
		}
		if e.Category == domain.CategorySpam {
			continue
		}
		out = append(out, *e)
	}
	return out
}
