package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/stepscale/scale"
)

const trackWidth = 50

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	trackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))

	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type sliderModel struct {
	calc     *scale.Calculator
	step     float64
	input    textinput.Model
	editing  bool
	inputErr string
}

func newSliderModel(calc *scale.Calculator) *sliderModel {
	ti := textinput.New()
	ti.Placeholder = "model value"
	ti.CharLimit = 24
	ti.Width = 24

	return &sliderModel{calc: calc, input: ti}
}

func (m *sliderModel) Init() tea.Cmd {
	return nil
}

func (m *sliderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}

	steps := float64(m.calc.Config.Steps)
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left":
		m.step = clampStep(m.step-1, steps)
	case "right":
		m.step = clampStep(m.step+1, steps)
	case "pgdown":
		m.step = clampStep(m.step-10, steps)
	case "pgup":
		m.step = clampStep(m.step+10, steps)
	case "home":
		m.step = 0
	case "end":
		m.step = steps
	case "i", "enter":
		m.editing = true
		m.inputErr = ""
		m.input.SetValue("")
		return m, m.input.Focus()
	}

	return m, nil
}

// updateEditing handles keys while the model-value input is focused:
// enter applies ModelToStep, esc cancels.
func (m *sliderModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	case "enter":
		value, err := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64)
		if err != nil {
			m.inputErr = "not a number"
			return m, nil
		}
		m.step = m.calc.ModelToStep(value)
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *sliderModel) View() string {
	cfg := m.calc.Config
	model := m.calc.StepToModel(m.step)

	var b strings.Builder
	b.WriteString(titleStyle.Render("stepscale slider"))
	b.WriteString("\n\n")
	b.WriteString(renderTrack(m.step, float64(cfg.Steps)))
	b.WriteString("\n")
	b.WriteString(valueStyle.Render(fmt.Sprintf("step %.0f / %d  →  %.2f", m.step, cfg.Steps, model)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("range [%.0f, %.0f], linear up to %.0f over %.0f%% of steps",
		cfg.Min, cfg.Max, cfg.LinearAbsolute, cfg.Percent*100)))
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.inputErr != "" {
			b.WriteString(errorStyle.Render(m.inputErr))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter: jump to value · esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("←/→: ±1 · pgup/pgdn: ±10 · home/end: jump · i: type a value · q: quit"))
	}
	b.WriteString("\n")

	return b.String()
}

// renderTrack draws the slider as a fixed-width track with the handle
// at the step's proportional position.
func renderTrack(step, steps float64) string {
	pos := 0
	if steps > 0 {
		pos = int(step / steps * float64(trackWidth-1))
	}

	var b strings.Builder
	for i := 0; i < trackWidth; i++ {
		if i == pos {
			b.WriteString(handleStyle.Render("●"))
			continue
		}
		b.WriteString(trackStyle.Render("─"))
	}

	return b.String()
}

func clampStep(step, steps float64) float64 {
	return scale.LimitBounds(step, scale.Bounds{Min: 0, Max: steps})
}
