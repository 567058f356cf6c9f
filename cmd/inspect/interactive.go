package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/nativekit"
	"github.com/wippyai/nativekit/gio"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	deviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type mountRow struct {
	mountPath  string
	devicePath string
	fsType     string
}

type interactiveModel struct {
	err      error
	cfg      nativekit.Config
	mounts   []mountRow
	handles  map[string]int
	filter   textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateMounts modelState = iota
	stateFilter
	stateHandles
)

func newInteractiveModel(cfg nativekit.Config) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "filesystem type"
	ti.Prompt = "filter: "
	ti.Width = 24
	return &interactiveModel{cfg: cfg, filter: ti}
}

type loadedMsg struct {
	err    error
	mounts []mountRow
}

type handlesMsg struct {
	handles map[string]int
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.readMounts
}

func (m *interactiveModel) readMounts() tea.Msg {
	cfg := m.cfg
	cfg.SkipCairo = true
	cfg.SkipPango = true
	if err := nativekit.Load(cfg); err != nil {
		return loadedMsg{err: err}
	}

	entries, err := gio.UnixMounts()
	if err != nil {
		return loadedMsg{err: err}
	}
	rows := make([]mountRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, mountRow{
			mountPath:  e.MountPath(),
			devicePath: e.DevicePath(),
			fsType:     e.FSType(),
		})
		e.Close()
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].mountPath < rows[j].mountPath })
	return loadedMsg{mounts: rows}
}

func (m *interactiveModel) readHandles() tea.Msg {
	return handlesMsg{handles: nativekit.LiveHandlesByKind()}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "enter", "esc":
				m.state = stateMounts
				m.filter.Blur()
				m.selected = 0
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateMounts && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateMounts && m.selected < len(m.visibleMounts())-1 {
				m.selected++
			}

		case "/":
			if m.state == stateMounts {
				m.state = stateFilter
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "r":
			if m.state == stateMounts {
				return m, m.readMounts
			}

		case "h":
			m.state = stateHandles
			return m, m.readHandles

		case "esc":
			m.state = stateMounts
		}

	case loadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.mounts = msg.mounts
			if m.selected >= len(m.mounts) {
				m.selected = 0
			}
		}

	case handlesMsg:
		m.handles = msg.handles
	}

	return m, nil
}

func (m *interactiveModel) visibleMounts() []mountRow {
	f := strings.TrimSpace(m.filter.Value())
	if f == "" {
		return m.mounts
	}
	var rows []mountRow
	for _, r := range m.mounts {
		if strings.Contains(r.fsType, f) {
			rows = append(rows, r)
		}
	}
	return rows
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("nativekit inspect"))
	b.WriteString("\n\n")

	switch m.state {
	case stateMounts, stateFilter:
		rows := m.visibleMounts()
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		if len(rows) == 0 {
			b.WriteString("No mount entries.\n")
		}
		for i, r := range rows {
			line := fmt.Sprintf("%-24s %-24s %s",
				pathStyle.Render(r.mountPath), deviceStyle.Render(r.devicePath), r.fsType)
			if i == m.selected && m.state == stateMounts {
				b.WriteString(selectedStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(helpStyle.Render("enter apply • esc cancel"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • / filter • r refresh • h handles • q quit"))
		}

	case stateHandles:
		b.WriteString("Open handles by kind:\n\n")
		if len(m.handles) == 0 {
			b.WriteString("  none\n")
		} else {
			kinds := make([]string, 0, len(m.handles))
			for k := range m.handles {
				kinds = append(kinds, k)
			}
			sort.Strings(kinds)
			for _, k := range kinds {
				b.WriteString(fmt.Sprintf("  %-28s %s\n", k, countStyle.Render(fmt.Sprintf("%d", m.handles[k]))))
			}
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
	}

	return b.String()
}

func runInteractive(cfg nativekit.Config) error {
	p := tea.NewProgram(newInteractiveModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
