package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/contsim/internal/engine"
)

const (
	graphWidth      = 70
	graphHeight     = 12
	historyCapacity = 600
	stepsPerFrame   = 10
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model runs a context live and plots its potential energy trace.
type Model struct {
	ctx           *engine.Context
	scenario      string
	dt            float64
	duration      float64
	energyHistory []float64
	running       bool
	err           error
}

func NewModel(ctx *engine.Context, scenario string, dt, duration float64) Model {
	return Model{
		ctx:           ctx,
		scenario:      scenario,
		dt:            dt,
		duration:      duration,
		energyHistory: make([]float64, 0, historyCapacity),
		running:       true,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.err == nil && m.ctx.Time() < m.duration {
				m.running = !m.running
			}
		}

	case TickMsg:
		if m.running && m.err == nil {
			if err := m.ctx.Step(stepsPerFrame, m.dt); err != nil {
				m.err = err
				m.running = false
			} else if st, err := m.ctx.State(engine.WantEnergy); err != nil {
				m.err = err
				m.running = false
			} else {
				m.energyHistory = append(m.energyHistory, st.PotentialEnergy)
				if len(m.energyHistory) > historyCapacity {
					m.energyHistory = m.energyHistory[1:]
				}
			}
			if m.ctx.Time() >= m.duration {
				m.running = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("contsim live — %s", m.scenario)))
	b.WriteString("\n")

	if len(m.energyHistory) > 1 {
		graph := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("potential energy (kJ/mol)"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("time"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f / %.4f", m.ctx.Time(), m.duration)))
	b.WriteString("\n")
	if n := len(m.energyHistory); n > 0 {
		b.WriteString(labelStyle.Render("energy"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.6f kJ/mol", m.energyHistory[n-1])))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	} else if !m.running && m.ctx.Time() >= m.duration {
		b.WriteString(valueStyle.Render("done"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause/resume · q quit"))
	b.WriteString("\n")
	return b.String()
}
