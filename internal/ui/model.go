// Package ui is the interactive terminal screen: a vertical brightness bar
// with increase and decrease controls.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hoppxi/brightbar/internal/brightness"
	"go.uber.org/zap"
)

const (
	barRows  = brightness.MaxLevel / 2
	barWidth = 6
)

// widget receives the progress level and label. The model keeps a pointer
// to it so pushes made during Update survive the value copy.
type widget struct {
	level int
	label string
}

func (w *widget) SetProgress(level int) error {
	w.level = level
	return nil
}

func (w *widget) SetText(label string) error {
	w.label = label
	return nil
}

type Model struct {
	screen *brightness.Screen
	widget *widget
	keys   keyMap
	help   help.Model
	err    error
}

// NewModel starts a screen writing to display and the terminal widget.
// Sink errors from the first projection are shown, not returned.
func NewModel(display brightness.DisplaySetter, cfg brightness.ScreenConfig, logger *zap.Logger) (Model, error) {
	w := &widget{}
	screen := brightness.NewScreen(display, w, w, logger)

	_, err := screen.OnStart(cfg)
	if err != nil && w.label == "" {
		return Model{}, err
	}

	return Model{
		screen: screen,
		widget: w,
		keys:   defaultKeys(),
		help:   help.New(),
		err:    err,
	}, nil
}

func (m Model) Level() int    { return m.widget.level }
func (m Model) Label() string { return m.widget.label }
func (m Model) Err() error    { return m.err }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.screen.Stop()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Increase):
			_, m.err = m.screen.Increase()
		case key.Matches(msg, m.keys.Decrease):
			_, m.err = m.screen.Decrease()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Brightness"))
	b.WriteString("\n")

	bar := BarStyle.Render(RenderBar(m.widget.level))
	label := LabelStyle.Render(m.widget.label)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, bar, label))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render("! " + strings.ReplaceAll(m.err.Error(), "\n", "; ")))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RenderBar draws level as a column of barRows cells, bottom up. Each cell
// holds two levels: a full block for both, a lower half block for one.
func RenderBar(level int) string {
	if level < 0 {
		level = 0
	} else if level > brightness.MaxLevel {
		level = brightness.MaxLevel
	}

	full := FillStyle.Render(strings.Repeat("█", barWidth))
	half := FillStyle.Render(strings.Repeat("▄", barWidth))
	empty := strings.Repeat(" ", barWidth)

	rows := make([]string, barRows)
	for i := 0; i < barRows; i++ {
		fromBottom := barRows - 1 - i
		switch filled := level - fromBottom*2; {
		case filled >= 2:
			rows[i] = full
		case filled == 1:
			rows[i] = half
		default:
			rows[i] = empty
		}
	}
	return strings.Join(rows, "\n")
}

// Run starts the interactive screen on the terminal.
func Run(display brightness.DisplaySetter, cfg brightness.ScreenConfig, logger *zap.Logger) error {
	m, err := NewModel(display, cfg, logger)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
