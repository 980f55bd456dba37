package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openmix/oscwire/internal/stats"
)

// Colors
var (
	cyanColor  = lipgloss.Color("#00FFFF")
	grayColor  = lipgloss.Color("#666666")
	whiteColor = lipgloss.Color("#FFFFFF")
	redColor   = lipgloss.Color("#FF6666")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(whiteColor).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cyanColor)

	rowStyle = lipgloss.NewStyle().
			Foreground(whiteColor)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(cyanColor)

	droppedStyle = lipgloss.NewStyle().
			Foreground(redColor)

	recentStyle = lipgloss.NewStyle().
			Foreground(grayColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(grayColor)
)

// KeyMap defines keybindings
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

var keys = KeyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k")),
	Down:  key.NewBinding(key.WithKeys("down", "j")),
	Reset: key.NewBinding(key.WithKeys("r")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

// Model is the main TUI model.
type Model struct {
	tracker   *stats.Tracker
	listen    string
	addresses []stats.AddressStats
	selected  int
	width     int
	height    int
}

// NewModel creates a TUI model reading from st. listen is shown in the
// title so the operator can tell which socket is being watched.
func NewModel(st *stats.Tracker, listen string) Model {
	return Model{tracker: st, listen: listen}
}

// TickMsg is a message for periodic updates
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Reset):
			m.tracker.Reset()
			m.addresses = nil
			m.selected = 0
		case key.Matches(msg, keys.Down):
			if m.selected < len(m.addresses)-1 {
				m.selected++
			}
		case key.Matches(msg, keys.Up):
			if m.selected > 0 {
				m.selected--
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TickMsg:
		m.addresses = m.tracker.Snapshot()
		if m.selected >= len(m.addresses) {
			m.selected = max(0, len(m.addresses)-1)
		}
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var s string

	s += titleStyle.Render("OSC Monitor "+m.listen) + "\n\n"

	if len(m.addresses) == 0 {
		s += helpStyle.Render("Waiting for OSC traffic...") + "\n"
	} else {
		s += m.renderAddressTable() + "\n"
		s += m.renderRecent() + "\n"
	}

	s += m.renderTotals() + "\n"
	s += helpStyle.Render("↑↓: select | r: reset | q: quit")

	return s
}

func (m Model) renderAddressTable() string {
	addrWidth := 16
	for _, a := range m.addresses {
		if len(a.Address) > addrWidth {
			addrWidth = len(a.Address)
		}
	}

	header := fmt.Sprintf("%-*s %8s %8s  %s", addrWidth, "ADDRESS", "COUNT", "RATE", "LAST ARGS")
	rows := []string{headerStyle.Render(header)}

	// Reserve space for: title(2) + recent panel + totals(2) + help(1).
	visible := max(3, m.height-9-recentLines)
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}

	for i := start; i < len(m.addresses) && i < start+visible; i++ {
		a := m.addresses[i]
		line := fmt.Sprintf("%-*s %8d %7.1f/s  %s",
			addrWidth, a.Address, a.MessageCount, m.tracker.Rate(a.Address), a.LastArgs)
		if len(line) > m.width {
			line = line[:m.width]
		}
		style := rowStyle
		if i == m.selected {
			style = selectedRowStyle
		}
		rows = append(rows, style.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

const recentLines = 5

func (m Model) renderRecent() string {
	entries := m.tracker.Recent(recentLines)
	rows := []string{headerStyle.Render("RECENT")}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %s %s", e.Time.Format("15:04:05.000"), e.Address, e.Args)
		if len(line) > m.width {
			line = line[:m.width]
		}
		rows = append(rows, recentStyle.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (m Model) renderTotals() string {
	messages, dropped := m.tracker.Totals()
	s := fmt.Sprintf("%d messages", messages)
	if dropped > 0 {
		s += " | " + droppedStyle.Render(fmt.Sprintf("%d dropped", dropped))
	}
	return rowStyle.Render(s)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
