package tui

import "github.com/charmbracelet/lipgloss"

type statusBar struct {
	message       string
	width         int
	isError       bool
	readerVisible bool
	unreadOnly    bool
}

func newStatusBar() statusBar {
	return statusBar{message: "Ready"}
}

func (s *statusBar) setMessage(msg string) {
	s.message = msg
	s.isError = false
}

func (s *statusBar) setError(msg string) {
	s.message = msg
	s.isError = true
}

func (s statusBar) View() string {
	msgStyle := statusBarStyle
	if s.isError {
		msgStyle = msgStyle.Foreground(errorColor)
	}

	left := s.message
	if s.unreadOnly {
		left += "  [unread only]"
	}
	shortcuts := s.shortcuts()

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(shortcuts) - 2
	if gap < 0 {
		gap = 0
	}

	content := left + lipgloss.NewStyle().Width(gap).Render("") + mutedTextStyle.Render(shortcuts)
	return msgStyle.Width(s.width).Render(content)
}

func (s statusBar) shortcuts() string {
	if s.readerVisible {
		return "j/k:scroll  esc:back  q:quit"
	}
	return "j/k:nav  enter:open  tab:pane  p:process  u:unread  q:quit"
}
