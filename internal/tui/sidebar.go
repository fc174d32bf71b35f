package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nholden/mailsort/internal/domain"
)

// folderSelectedMsg is sent when the user selects a folder via Enter.
type folderSelectedMsg struct {
	folder domain.Folder
}

// folderNames maps folders to human-friendly display names.
var folderNames = map[domain.Folder]string{
	domain.FolderInbox:      "Inbox",
	domain.FolderWork:       "Work",
	domain.FolderPersonal:   "Personal",
	domain.FolderSpam:       "Spam",
	domain.FolderPromotions: "Promotions",
}

// sidebarModel displays a navigable list of folders with unread counts.
type sidebarModel struct {
	activeFolder domain.Folder
	cursor       int
	total        map[domain.Folder]int
	unread       map[domain.Folder]int
	width        int
	height       int
	focused      bool
}

func newSidebar() sidebarModel {
	return sidebarModel{
		activeFolder: domain.FolderInbox,
	}
}

// SetCounts updates the per-folder totals shown next to each name.
func (s *sidebarModel) SetCounts(emails []domain.Email) {
	s.total = make(map[domain.Folder]int)
	s.unread = make(map[domain.Folder]int)
	for i := range emails {
		s.total[emails[i].Folder]++
		if !emails[i].Read {
			s.unread[emails[i].Folder]++
		}
	}
}

// SetSize updates the sidebar dimensions.
func (s *sidebarModel) SetSize(w, h int) {
	s.width = w
	s.height = h
}

// Update handles key events for sidebar navigation.
func (s sidebarModel) Update(msg tea.Msg) (sidebarModel, tea.Cmd) {
	if !s.focused {
		return s, nil
	}

	total := len(domain.FolderOrder)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			s.cursor--
			if s.cursor < 0 {
				s.cursor = total - 1
			}
		case key.Matches(msg, keys.Down):
			s.cursor++
			if s.cursor >= total {
				s.cursor = 0
			}
		case key.Matches(msg, keys.Enter):
			folder := domain.FolderOrder[s.cursor]
			s.activeFolder = folder
			return s, func() tea.Msg {
				return folderSelectedMsg{folder: folder}
			}
		}
	}

	return s, nil
}

// View renders the sidebar.
func (s sidebarModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mailsort"))
	b.WriteString("\n\n")

	for i, f := range domain.FolderOrder {
		name := folderNames[f]
		line := fmt.Sprintf("%-11s %d", name, s.total[f])
		if n := s.unread[f]; n > 0 {
			line = fmt.Sprintf("%-11s %d (%d)", name, s.total[f], n)
		}

		switch {
		case i == s.cursor && s.focused:
			line = selectedStyle.Render(line)
		case f == s.activeFolder:
			line = titleStyle.Render(line)
		case s.unread[f] > 0:
			line = unreadStyle.Render(line)
		default:
			line = mutedTextStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
