package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nholden/mailsort/internal/agent"
	"github.com/nholden/mailsort/internal/domain"
)

type pane int

const (
	paneSidebar pane = iota
	paneList
	paneReader
)

// --- async result messages ---

type emailsLoadedMsg struct {
	emails []domain.Email
}

type processedMsg struct {
	report *agent.ProcessReport
}

type markedReadMsg struct {
	id int
}

type errMsg struct {
	err error
}

// --- root model ---

type model struct {
	agent *agent.Agent

	emails []domain.Email // full collection, insertion order

	sidebar sidebarModel
	inbox   inboxModel
	reader  readerModel

	activePane pane
	unreadOnly bool
	statusBar  statusBar

	width  int
	height int
}

// NewModel creates a new root TUI model.
func NewModel(a *agent.Agent) model {
	inbox := newInbox()
	inbox.focused = true

	return model{
		agent:      a,
		activePane: paneList,
		sidebar:    newSidebar(),
		inbox:      inbox,
		reader:     newReader(),
		statusBar:  newStatusBar(),
	}
}

func (m model) Init() tea.Cmd {
	return m.loadEmailsCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	// --- window resize ---
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.statusBar.width = msg.Width
		m.resizeSubModels()
		return m, nil

	// --- async result messages ---
	case emailsLoadedMsg:
		m.emails = msg.emails
		m.sidebar.SetCounts(m.emails)
		m.refreshInbox()
		m.statusBar.setMessage(fmt.Sprintf("Loaded %d emails", len(m.emails)))
		return m, nil

	case processedMsg:
		r := msg.report
		status := fmt.Sprintf("Classified %d, sorted %d", r.Result.Classified, r.Result.Sorted)
		if n := len(r.Alerts); n > 0 {
			status += fmt.Sprintf(" · %d high priority unread", n)
		}
		m.statusBar.setMessage(status)
		return m, m.loadEmailsCmd()

	case markedReadMsg:
		return m, m.loadEmailsCmd()

	case errMsg:
		m.statusBar.setError(fmt.Sprintf("Error: %v", msg.err))
		return m, nil

	// --- sub-model emitted messages ---
	case folderSelectedMsg:
		m.reader.Close()
		m.statusBar.readerVisible = false
		m.inbox.cursor = 0
		m.inbox.offset = 0
		m.setFocus(paneList)
		m.refreshInbox()
		m.statusBar.setMessage(fmt.Sprintf("Folder: %s", folderNames[msg.folder]))
		return m, nil

	case emailSelectedMsg:
		for i := range m.emails {
			if m.emails[i].ID == msg.emailID {
				e := m.emails[i]
				m.reader.ShowEmail(&e)
				m.setFocus(paneReader)
				m.statusBar.readerVisible = true
				m.resizeSubModels()
				break
			}
		}
		// Opening an email marks it read.
		return m, m.markReadCmd(msg.emailID)

	case closeReaderMsg:
		m.reader.Close()
		m.statusBar.readerVisible = false
		m.setFocus(paneList)
		return m, nil

	// --- key events ---
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Process):
			m.statusBar.setMessage("Processing...")
			return m, m.processCmd()

		case key.Matches(msg, keys.Unread):
			m.unreadOnly = !m.unreadOnly
			m.statusBar.unreadOnly = m.unreadOnly
			m.refreshInbox()
			return m, nil

		case key.Matches(msg, keys.Tab):
			if m.reader.IsVisible() {
				if m.activePane == paneList {
					m.setFocus(paneReader)
				} else {
					m.setFocus(paneList)
				}
			} else {
				if m.activePane == paneSidebar {
					m.setFocus(paneList)
				} else {
					m.setFocus(paneSidebar)
				}
			}
			return m, nil
		}

		// Delegate to focused sub-model.
		switch m.activePane {
		case paneSidebar:
			var cmd tea.Cmd
			m.sidebar, cmd = m.sidebar.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}

		case paneList:
			var cmd tea.Cmd
			m.inbox, cmd = m.inbox.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}

		case paneReader:
			var cmd tea.Cmd
			m.reader, cmd = m.reader.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sidebarWidth, contentWidth := m.layoutWidths()
	contentHeight := m.height - 3 // reserve space for status bar

	sidebarView := sidebarStyle.
		Width(sidebarWidth).
		Height(contentHeight).
		Render(m.sidebar.View())

	var contentView string
	if m.reader.IsVisible() {
		// Split view: list (top half) + reader (bottom half).
		listHeight := contentHeight / 2
		readerHeight := contentHeight - listHeight

		listView := listStyle.
			Width(contentWidth).
			Height(listHeight).
			Render(m.inbox.View())

		readerView := readerStyle.
			Width(contentWidth).
			Height(readerHeight).
			Render(m.reader.View())

		contentView = lipgloss.JoinVertical(lipgloss.Left, listView, readerView)
	} else {
		contentView = listStyle.
			Width(contentWidth).
			Height(contentHeight).
			Render(m.inbox.View())
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebarView, contentView)
	sb := m.statusBar.View()

	return lipgloss.JoinVertical(lipgloss.Left, main, sb)
}

// --- focus management ---

func (m *model) setFocus(p pane) {
	m.activePane = p
	m.sidebar.focused = (p == paneSidebar)
	m.inbox.focused = (p == paneList)
	m.reader.focused = (p == paneReader)
}

// --- layout helpers ---

func (m model) layoutWidths() (sidebarWidth, contentWidth int) {
	sidebarWidth = m.width / 5
	if sidebarWidth < 20 {
		sidebarWidth = 20
	}
	contentWidth = m.width - sidebarWidth - 2
	return
}

func (m *model) resizeSubModels() {
	sidebarWidth, contentWidth := m.layoutWidths()
	contentHeight := m.height - 3

	// Pass content area dimensions (subtract border + padding from each style).
	// sidebarStyle: Border(2h + 2v) + Padding(2h + 2v) = 4h, 4v
	m.sidebar.SetSize(sidebarWidth-4, contentHeight-4)

	// listStyle: Border(2h + 2v) + Padding(2h + 0v) = 4h, 2v
	if m.reader.IsVisible() {
		listHeight := contentHeight / 2
		readerHeight := contentHeight - listHeight
		m.inbox.SetSize(contentWidth-4, listHeight-2)
		// readerStyle: Border(2h + 2v) + Padding(4h + 2v) = 6h, 4v
		m.reader.SetSize(contentWidth-6, readerHeight-4)
	} else {
		m.inbox.SetSize(contentWidth-4, contentHeight-2)
	}
}

// refreshInbox filters the collection down to the active folder and
// unread setting.
func (m *model) refreshInbox() {
	emails := agent.FilterByFolder(m.emails, m.sidebar.activeFolder)
	if m.unreadOnly {
		emails = agent.FilterUnread(emails)
	}
	m.inbox.SetEmails(emails)
}

// --- async commands ---

func (m model) loadEmailsCmd() tea.Cmd {
	return func() tea.Msg {
		emails, err := m.agent.List(context.Background(), agent.ListOptions{})
		if err != nil {
			return errMsg{err: fmt.Errorf("failed to load emails: %w", err)}
		}
		return emailsLoadedMsg{emails: emails}
	}
}

func (m model) processCmd() tea.Cmd {
	return func() tea.Msg {
		report, err := m.agent.ProcessAll(context.Background())
		if err != nil {
			return errMsg{err: fmt.Errorf("failed to process: %w", err)}
		}
		return processedMsg{report: report}
	}
}

func (m model) markReadCmd(id int) tea.Cmd {
	return func() tea.Msg {
		if err := m.agent.MarkRead(context.Background(), id); err != nil {
			return errMsg{err: fmt.Errorf("failed to mark read: %w", err)}
		}
		return markedReadMsg{id: id}
	}
}

// Run starts the Bubble Tea TUI application.
func Run(a *agent.Agent) error {
	prog := tea.NewProgram(
		NewModel(a),
		tea.WithAltScreen(),
	)
	_, err := prog.Run()
	return err
}
