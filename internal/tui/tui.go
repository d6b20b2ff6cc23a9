// Package tui renders the live monitor as a terminal dashboard: a
// header with the table identity, one row per watched offset, and a
// footer with key help.
package tui

import (
	"fmt"
	"strings"
	"time"

	"codeberg.org/mutker/smuscan/internal/pmtable"
	"codeberg.org/mutker/smuscan/internal/smu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// minInterval is the floor for the poll interval; the SMU transfer
// command behind the sysfs read is not free.
const minInterval = 100 * time.Millisecond

const intervalStep = 100 * time.Millisecond

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")).
			Border(lipgloss.NormalBorder(), false, false, true, false)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	absentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// tickMsg drives the poll loop through the bubbletea message queue.
type tickMsg time.Time

// Model is the bubbletea model for the monitor dashboard.
type Model struct {
	reader   smu.Reader
	offsets  []int
	interval time.Duration
	keys     KeyMap

	codename  smu.Codename
	version   uint32
	tableSize int

	values  map[int]float32
	present map[int]bool
	readErr error
}

// NewModel builds the dashboard model. Header metadata is read once;
// only the table itself is re-read per tick.
func NewModel(reader smu.Reader, offsets []int, interval time.Duration) Model {
	if interval < minInterval {
		interval = minInterval
	}

	size, err := reader.TableSize()
	if err != nil {
		size = 0
	}

	return Model{
		reader:    reader,
		offsets:   offsets,
		interval:  interval,
		keys:      DefaultKeyMap,
		codename:  reader.Codename(),
		version:   reader.TableVersion(),
		tableSize: size,
		values:    make(map[int]float32),
		present:   make(map[int]bool),
	}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg(time.Now()) }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Slower):
			m.interval += intervalStep
		case key.Matches(msg, m.keys.Faster):
			if m.interval-intervalStep >= minInterval {
				m.interval -= intervalStep
			}
		}
		return m, nil

	case tickMsg:
		m.poll()
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})
	}

	return m, nil
}

// poll re-reads the snapshot and decodes every watched offset. A read
// error is displayed on the next View, not fatal.
func (m *Model) poll() {
	table, err := m.reader.Table()
	if err != nil {
		m.readErr = err
		return
	}
	m.readErr = nil

	for _, offset := range m.offsets {
		v, ok := pmtable.ReadFloat32(table, offset)
		m.values[offset] = v
		m.present[offset] = ok
	}
}

func (m Model) View() string {
	var b strings.Builder

	header := fmt.Sprintf(" %s | PM Table v0x%08X | %d bytes | refresh %s ",
		m.codename, m.version, m.tableSize, m.interval)
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")

	if m.readErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("  read error: %v", m.readErr)))
		b.WriteString("\n\n")
	}

	for _, offset := range m.offsets {
		label := offsetStyle.Render(fmt.Sprintf("  0x%04X", offset))
		if m.present[offset] {
			b.WriteString(label + valueStyle.Render(fmt.Sprintf("%12.4f", m.values[offset])))
		} else {
			b.WriteString(label + absentStyle.Render("           —"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("  q quit · + slower · - faster"))
	b.WriteString("\n")

	return b.String()
}

// Run starts the dashboard and blocks until the user quits.
func Run(reader smu.Reader, offsets []int, interval time.Duration) error {
	program := tea.NewProgram(NewModel(reader, offsets, interval), tea.WithAltScreen())
	_, err := program.Run()

	return err
}
