package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/kmorven/deborbit/internal/fit"
	"github.com/kmorven/deborbit/internal/lightcurve"
	"github.com/kmorven/deborbit/internal/viz"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type progressMsg struct {
	iteration int
	chiSq     float64
	params    fit.Params
}

type doneMsg struct {
	result *fit.Result
	err    error
}

// Model drives a live view of one estimation run: the fit executes on
// its own goroutine and streams per-iteration progress into the UI.
type Model struct {
	guess fit.Params
	curve lightcurve.Curve
	opts  fit.Options

	ctx      context.Context
	cancel   context.CancelFunc
	progress chan progressMsg
	done     chan doneMsg

	iteration int
	chiSq     float64
	history   []float64
	result    *fit.Result
	err       error
	finished  bool
}

func NewModel(guess fit.Params, curve lightcurve.Curve, opts fit.Options) Model {
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		guess:    guess,
		curve:    curve,
		opts:     opts,
		ctx:      ctx,
		cancel:   cancel,
		progress: make(chan progressMsg, 64),
		done:     make(chan doneMsg, 1),
		history:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	opts := m.opts
	opts.OnIteration = func(iteration int, chiSq float64, current fit.Params) {
		select {
		case m.progress <- progressMsg{iteration: iteration, chiSq: chiSq, params: current}:
		default:
		}
	}

	go func() {
		result, err := fit.Fit(m.ctx, m.guess, m.curve, opts)
		m.done <- doneMsg{result: result, err: err}
	}()

	return tea.Batch(m.waitProgress(), m.waitDone())
}

func (m Model) waitProgress() tea.Cmd {
	return func() tea.Msg {
		return <-m.progress
	}
}

func (m Model) waitDone() tea.Cmd {
	return func() tea.Msg {
		return <-m.done
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case progressMsg:
		m.iteration = msg.iteration
		m.chiSq = msg.chiSq
		if len(m.history) < historyCapacity {
			m.history = append(m.history, msg.chiSq)
		}
		return m, m.waitProgress()
	case doneMsg:
		m.result = msg.result
		m.err = msg.err
		m.finished = true
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Light-Curve Fit") + "\n")

	if m.finished {
		if m.err != nil {
			s.WriteString(labelStyle.Render("Error") + valueStyle.Render(m.err.Error()) + "\n")
		} else {
			s.WriteString(viz.FitReport(m.result))
		}
		s.WriteString(helpStyle.Render("q: quit") + "\n")
		return s.String()
	}

	s.WriteString(labelStyle.Render("Samples") + valueStyle.Render(fmt.Sprintf("%d", len(m.curve))) + "\n")
	s.WriteString(labelStyle.Render("Iteration") + valueStyle.Render(fmt.Sprintf("%d", m.iteration)) + "\n")
	s.WriteString(labelStyle.Render("Chi²") + valueStyle.Render(fmt.Sprintf("%.6g", m.chiSq)) + "\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(6), asciigraph.Width(50), asciigraph.Caption("chi-square"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("q: cancel") + "\n")
	return s.String()
}
