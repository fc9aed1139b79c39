package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maxxl28/modeling-soccer-transfers/internal/config"
	"github.com/maxxl28/modeling-soccer-transfers/internal/dynamics"
	"github.com/maxxl28/modeling-soccer-transfers/internal/games"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type screen int

const (
	screenMenu screen = iota
	screenParams
	screenPlot
)

type model struct {
	screen screen
	cursor int
	games  []string

	cfg         *config.Config
	paramNames  []string
	bounds      map[string]config.Bound
	paramCursor int
	editing     bool
	editBuf     string

	labels []string
	traj   *dynamics.Trajectory
	runErr error

	width  int
	height int
}

func NewApp() *model {
	return &model{
		screen: screenMenu,
		games:  games.List(),
		cfg:    config.DefaultConfig(),
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMenu:
		return m.menuKey(msg)
	case screenParams:
		return m.paramsKey(msg)
	case screenPlot:
		return m.plotKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.games)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selectGame(m.games[m.cursor])
		m.screen = screenParams
	}
	return m, nil
}

func (m *model) selectGame(name string) {
	m.cfg.Game = name
	m.paramNames, m.bounds = config.Bounds(name)
	m.paramCursor = 0
	m.traj = nil
	m.runErr = nil
}

func (m model) paramsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg), nil
	}

	switch msg.String() {
	case "q", "escape":
		m.screen = screenMenu
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.2f", m.cfg.GetParam(m.paramNames[m.paramCursor]))
	case "s", " ":
		m.simulate()
		m.screen = screenPlot
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) tea.Model {
	switch msg.String() {
	case "enter":
		var val float64
		if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
			name := m.paramNames[m.paramCursor]
			m.cfg.SetParam(name, m.bounds[name].Clamp(val))
		}
		m.editing = false
		m.editBuf = ""
	case "escape":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.editBuf += string(c)
			}
		}
	}
	return m
}

func (m model) plotKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "escape":
		m.screen = screenParams
		return m, tea.ClearScreen
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "left", "h":
		m.adjust(-1)
		m.simulate()
	case "right", "l":
		m.adjust(1)
		m.simulate()
	case "r":
		m.simulate()
	}
	return m, nil
}

// adjust nudges the selected parameter by its documented slider step,
// clamped to its range.
func (m *model) adjust(dir float64) {
	name := m.paramNames[m.paramCursor]
	b := m.bounds[name]
	m.cfg.SetParam(name, b.Clamp(m.cfg.GetParam(name)+dir*b.Step))
}

// simulate recomputes the whole trajectory from a snapshot of the current
// parameters. Every change recomputes from t=0; there is no incremental
// update.
func (m *model) simulate() {
	game, err := m.cfg.NewGame()
	if err != nil {
		m.runErr = err
		return
	}
	stepper := &dynamics.Stepper{Samples: m.cfg.Samples}
	traj, err := stepper.Run(context.Background(), game, m.cfg.GetInitState(), m.cfg.Horizon)
	if err != nil {
		m.traj = nil
		m.runErr = err
		return
	}
	m.labels = game.StateLabels()
	m.traj = traj
	m.runErr = nil
}

func (m model) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenParams:
		return m.viewParams()
	case screenPlot:
		return m.viewPlot()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + cyan.Render("t r a n s f e r s i m") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.games {
		desc := games.Describe(name)
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter start   q quit") + "\n")

	return b.String()
}

func (m model) paramPanel() string {
	var b strings.Builder
	for i, name := range m.paramNames {
		val := fmt.Sprintf("%8.2f", m.cfg.GetParam(name))
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dim.Render(val) + "\n")
		}
	}
	return b.String()
}

func (m model) viewParams() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.cfg.Game) + "  " + dim.Render(games.Describe(m.cfg.Game)) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")
	b.WriteString(m.paramPanel())
	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s simulate  esc back") + "\n")

	return b.String()
}

func (m model) viewPlot() string {
	var b strings.Builder

	b.WriteString("\n   " + cyan.Render(m.cfg.Game) + "  " +
		dim.Render(fmt.Sprintf("horizon %.0f  samples %d", m.cfg.Horizon, m.cfg.Samples)) + "\n\n")

	if m.runErr != nil {
		b.WriteString("   " + red.Render("error: "+m.runErr.Error()) + "\n")
		b.WriteString("\n" + dim.Render("   ↑↓ param  ←→ adjust  esc back") + "\n")
		return b.String()
	}
	if m.traj == nil {
		return b.String() + "   " + dim.Render("no trajectory") + "\n"
	}

	b.WriteString(m.renderPlots())
	b.WriteString("\n" + m.paramPanel())

	final := m.traj.Final()
	var finals strings.Builder
	finals.WriteString("      ")
	for i, label := range m.labels {
		finals.WriteString(dim.Render(label+"="))
		finals.WriteString(green.Render(fmt.Sprintf("%.3f", final[i])))
		finals.WriteString("  ")
	}
	b.WriteString("\n" + finals.String() + "\n")
	b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render(m.labels[0]), cyan.Render(sparkline(m.traj.Column(0), 32))))

	b.WriteString("\n" + dim.Render("   ↑↓ param  ←→ adjust (re-runs)  r re-run  esc back  ctrl+c quit") + "\n")

	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		idx := int((data[i*step] - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

func Run() error {
	p := tea.NewProgram(NewApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
