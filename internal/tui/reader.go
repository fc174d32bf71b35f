package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nholden/mailsort/internal/domain"
)

type closeReaderMsg struct{}

// readerModel is a Bubble Tea sub-model for displaying one email in a
// scrollable pane.
type readerModel struct {
	email        *domain.Email
	content      string
	scrollOffset int
	maxScroll    int
	width        int
	height       int
	focused      bool
	visible      bool
}

func newReader() readerModel {
	return readerModel{}
}

func (r readerModel) Update(msg tea.Msg) (readerModel, tea.Cmd) {
	if !r.focused || !r.visible {
		return r, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if r.scrollOffset > 0 {
				r.scrollOffset--
			}

		case key.Matches(msg, keys.Down):
			if r.scrollOffset < r.maxScroll {
				r.scrollOffset++
			}

		case key.Matches(msg, keys.Back):
			return r, func() tea.Msg {
				return closeReaderMsg{}
			}
		}
	}

	return r, nil
}

func (r readerModel) View() string {
	if !r.visible || r.width == 0 || r.height == 0 {
		return ""
	}
	if r.content == "" {
		return mutedTextStyle.Render("No email selected")
	}

	lines := strings.Split(r.content, "\n")

	visibleHeight := r.height
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	start := r.scrollOffset
	if start > len(lines) {
		start = len(lines)
	}
	end := start + visibleHeight
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[start:end], "\n")
}

// ShowEmail displays an email in the reader pane.
func (r *readerModel) ShowEmail(email *domain.Email) {
	r.email = email
	r.visible = true
	r.scrollOffset = 0
	r.content = renderEmail(email)
	r.recalcMaxScroll()
}

// Close hides the reader and clears its content.
func (r *readerModel) Close() {
	r.visible = false
	r.email = nil
	r.content = ""
	r.scrollOffset = 0
	r.maxScroll = 0
}

// SetSize updates the reader dimensions and recalculates scroll bounds.
func (r *readerModel) SetSize(w, h int) {
	r.width = w
	r.height = h
	r.recalcMaxScroll()
}

// IsVisible returns whether the reader pane is currently shown.
func (r readerModel) IsVisible() bool {
	return r.visible
}

func (r *readerModel) recalcMaxScroll() {
	lines := strings.Count(r.content, "\n") + 1
	r.maxScroll = lines - r.height
	if r.maxScroll < 0 {
		r.maxScroll = 0
	}
}

func renderEmail(e *domain.Email) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(e.Subject))
	fmt.Fprintf(&b, "From: %s\n", e.Sender)
	if e.Timestamp != "" {
		fmt.Fprintf(&b, "Date: %s\n", e.Timestamp)
	}
	category := string(e.Category)
	if category == "" {
		category = "uncategorized"
	}
	fmt.Fprintf(&b, "Folder: %s  Category: %s  Priority: %s\n", e.Folder, category, e.Priority)
	b.WriteString("\n")
	b.WriteString(e.Body)
	return b.String()
}
