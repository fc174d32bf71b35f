package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nholden/mailsort/internal/domain"
)

// emailSelectedMsg is sent when the user opens an email.
type emailSelectedMsg struct {
	emailID int
}

// inboxModel is a Bubble Tea sub-model that displays the email list
// for the active folder.
type inboxModel struct {
	emails  []domain.Email
	cursor  int
	offset  int
	width   int
	height  int
	focused bool
}

func newInbox() inboxModel {
	return inboxModel{}
}

func (m inboxModel) Update(msg tea.Msg) (inboxModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustScroll()
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.emails)-1 {
				m.cursor++
				m.adjustScroll()
			}

		case key.Matches(msg, keys.Enter):
			return m, m.selectItem()
		}
	}

	return m, nil
}

func (m inboxModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if len(m.emails) == 0 {
		return mutedTextStyle.Render("No messages")
	}

	var b strings.Builder
	end := m.offset + m.visibleRows()
	if end > len(m.emails) {
		end = len(m.emails)
	}

	for i := m.offset; i < end; i++ {
		if i > m.offset {
			b.WriteByte('\n')
		}
		line := m.renderRow(i)
		if i == m.cursor && m.focused {
			line = selectedStyle.Width(m.width).Render(line)
		}
		b.WriteString(line)
	}

	return b.String()
}

// SetEmails replaces the visible email list.
func (m *inboxModel) SetEmails(emails []domain.Email) {
	m.emails = emails
	m.clampCursor()
}

// SetSize updates the dimensions available for rendering.
func (m *inboxModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.adjustScroll()
}

// SelectedEmail returns the currently highlighted email, or nil.
func (m inboxModel) SelectedEmail() *domain.Email {
	if len(m.emails) == 0 || m.cursor >= len(m.emails) {
		return nil
	}
	return &m.emails[m.cursor]
}

// --- internal helpers ---

func (m inboxModel) visibleRows() int {
	if m.height < 1 {
		return 1
	}
	return m.height
}

func (m *inboxModel) adjustScroll() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m *inboxModel) clampCursor() {
	if len(m.emails) == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	if m.cursor >= len(m.emails) {
		m.cursor = len(m.emails) - 1
	}
	m.adjustScroll()
}

func (m inboxModel) selectItem() tea.Cmd {
	e := m.SelectedEmail()
	if e == nil {
		return nil
	}
	id := e.ID
	return func() tea.Msg {
		return emailSelectedMsg{emailID: id}
	}
}

func (m inboxModel) renderRow(idx int) string {
	e := m.emails[idx]

	pri := "  "
	if e.Priority == domain.PriorityHigh {
		pri = priorityStyle.Render("! ")
	}

	id := fmt.Sprintf("#%d", e.ID)
	from := truncate(e.Sender, 22)
	ts := truncate(e.Timestamp, 16)

	idWidth := 6
	fromWidth := 22
	tsWidth := len(ts)
	subjectWidth := m.width - idWidth - fromWidth - tsWidth - 8 // pri(2) + three "  " gaps(6)
	if subjectWidth < 10 {
		subjectWidth = 10
	}
	subject := truncate(e.Subject, subjectWidth)

	idCol := mutedTextStyle.Width(idWidth).Render(id)
	fromCol := lipgloss.NewStyle().Width(fromWidth).Render(from)
	subjectCol := lipgloss.NewStyle().Width(subjectWidth).Render(subject)
	tsCol := mutedTextStyle.Width(tsWidth).Render(ts)

	line := pri + idCol + "  " + fromCol + "  " + subjectCol + "  " + tsCol

	if !e.Read {
		line = unreadStyle.Render(line)
	}

	return line
}

// --- utility functions ---

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}
