// Package viz is the interactive viewer: a bubbletea program that steps
// the wandering parameter on a frame tick and draws the fractal inline.
package viz

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/juliadrift/internal/anim"
	"github.com/san-kum/juliadrift/internal/config"
	"github.com/san-kum/juliadrift/internal/julia"
	"github.com/san-kum/juliadrift/internal/pace"
	"github.com/san-kum/juliadrift/internal/render"
)

// hudLines is the vertical space reserved under the fractal grid.
const hudLines = 2

type TickMsg time.Time

// Model carries the animation state and the rendered frame between
// updates.
type Model struct {
	cfg      *config.Config
	walk     anim.Config
	state    anim.State
	renderer *render.Renderer
	pacer    *pace.Pacer
	maxIters int

	width, height int
	lastTick      time.Time
	frame         string
	param         complex128
	paused        bool
	err           error
}

func NewModel(cfg *config.Config) Model {
	return Model{
		cfg: cfg,
		walk: anim.Config{
			Base:    complex(cfg.Walk.BaseRe, cfg.Walk.BaseIm),
			Radius:  cfg.Walk.Radius,
			Accel:   cfg.Walk.Accel,
			Damping: cfg.Walk.Damping,
		},
		maxIters: cfg.MaxIters,
		state:    anim.NewState(cfg.Seed),
		renderer: &render.Renderer{Workers: cfg.Workers},
		pacer:    pace.New(cfg.FPS),
		width:    cfg.Width,
		height:   cfg.Height,
		param:    complex(cfg.Walk.BaseRe, cfg.Walk.BaseIm),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.pacer.Interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and advances one animation step per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.state = anim.NewState(m.cfg.Seed)
		case "+", "=":
			m.maxIters += 20
		case "-", "_":
			if m.maxIters > 20 {
				m.maxIters -= 20
			}
		}
	case tea.WindowSizeMsg:
		if m.cfg.Width == 0 {
			m.width = msg.Width
		}
		if m.cfg.Height == 0 {
			m.height = msg.Height - hudLines
		}
	case TickMsg:
		now := time.Time(msg)
		dt := 0.0
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick).Seconds()
		}
		m.lastTick = now

		if !m.paused {
			m.state, m.param = anim.Advance(m.walk, m.state, dt)
		}
		m.draw()
		m.pacer.Observe(time.Since(now))
		return m, m.tick()
	}
	return m, nil
}

// draw renders the current parameter into the frame buffer.
func (m *Model) draw() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	var buf bytes.Buffer
	field := julia.Field{C: m.param, MaxIters: m.maxIters}
	if _, err := m.renderer.Frame(field, m.width, m.height, m.maxIters, &buf); err != nil {
		m.err = err
		return
	}
	m.frame = buf.String()
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("render error: %v\n", m.err)
	}
	if m.frame == "" {
		return "measuring terminal...\n"
	}

	var b strings.Builder
	b.WriteString(m.frame)

	b.WriteString(headerStyle.Render("julia drift"))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("c="))
	b.WriteString(valueStyle.Render(fmt.Sprintf("(%+.3f,%+.3f)", real(m.param), imag(m.param))))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("iters="))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d", m.maxIters)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("fps="))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f", m.pacer.Rate())))
	if m.paused {
		b.WriteString("  ")
		b.WriteString(pausedStyle.Render("paused"))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q quit · space pause · r reset · +/- iterations"))
	return b.String()
}

// Run starts the viewer and blocks until it quits.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
