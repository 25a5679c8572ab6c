package app

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vajra.klederson.com/internal/config"
	"vajra.klederson.com/internal/radar"
	"vajra.klederson.com/internal/tactical"
	"vajra.klederson.com/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	engine *tactical.Engine
	driver *Driver
	sweep  *radar.Sweep
}

// AppModel is the root Bubble Tea model for the tactical dashboard.
type AppModel struct {
	width  int
	height int

	confirmArm bool
	wiped      bool

	shared *shared

	// Cached snapshot
	state tactical.State
}

// New creates a model over an engine whose logical clock starts at start.
func New(engine *tactical.Engine, start time.Time) AppModel {
	return AppModel{
		shared: &shared{
			engine: engine,
			driver: NewDriver(engine, start),
			sweep:  radar.NewSweep(start),
		},
		state: engine.Snapshot(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		now := time.Time(msg)
		m.shared.driver.Step(now)
		m.shared.sweep.Update(now)
		m.state = m.shared.engine.Snapshot()
		return m, tickCmd()

	case WipeMsg:
		m.wiped = true
		m.state = m.shared.engine.Snapshot()
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	eng := m.shared.engine

	if m.confirmArm {
		switch msg.String() {
		case "y", "Y":
			if eng.StartDeadManSwitch() {
				m.wiped = false
			}
			m.confirmArm = false
		case "n", "N", "esc":
			m.confirmArm = false
		case "ctrl+c":
			eng.Stop()
			return m, tea.Quit
		}
		m.state = eng.Snapshot()
		return m, nil
	}

	switch msg.String() {
	case "q", "Q", "ctrl+c":
		eng.Stop()
		return m, tea.Quit

	case "v", "V":
		if m.state.ViewMode == tactical.ViewCommander {
			eng.SetViewMode(tactical.ViewOperator)
		} else {
			eng.SetViewMode(tactical.ViewCommander)
		}

	case "g", "G":
		eng.ToggleSignalStatus()

	case "s", "S":
		if m.state.SystemMode == tactical.ModeStealth {
			eng.SetSystemMode(tactical.ModeNormal)
		} else {
			eng.SetSystemMode(tactical.ModeStealth)
		}

	case "j", "J":
		eng.SimulateJamming()

	case "d", "D":
		if !m.state.DeadMan.Armed {
			m.confirmArm = true
		}

	case "c", "C":
		eng.CancelDeadManSwitch()

	case "k", "K":
		eng.SetCameraActive(!m.state.CameraActive)
	}

	m.state = eng.Snapshot()
	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing " + config.AppName + "..."
	}
	s := m.state

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 12 {
		bodyH = 12
	}

	radarW := m.width * 3 / 5
	if radarW < 30 {
		radarW = 30
	}
	sideW := m.width - radarW
	if sideW < 30 {
		sideW = 30
		radarW = m.width - sideW
	}

	menuBar := ui.RenderMenuBar(m.width, s.ViewMode, s.SystemMode)

	innerW := radarW - 4
	innerH := bodyH - 5
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 5 {
		innerH = 5
	}
	commander := s.ViewMode == tactical.ViewCommander
	radarContent := radar.Render(innerW, innerH, Blips(s), m.shared.sweep, s.Now)
	legend := radar.RenderLegend(innerW, commander)
	radarPanel := ui.RenderRadarPanel(radarW, bodyH, "ACOUSTIC RADAR 1km", radarContent, legend, len(s.CriticalAlerts()) > 0)

	var side string
	if commander {
		squadH := bodyH / 2
		side = ui.Stack(
			ui.RenderSquadPanel(s, sideW, squadH),
			ui.RenderLogPanel(s.AILog, sideW, bodyH-squadH),
		)
	} else {
		vitalsH := bodyH * 2 / 5
		dialH := bodyH * 3 / 10
		side = ui.Stack(
			ui.RenderVitalsPanel(s, sideW, vitalsH),
			ui.RenderDialPanel(s.GunfireEvents, s.Now, sideW, dialH),
			ui.RenderLogPanel(s.AILog, sideW, bodyH-vitalsH-dialH),
		)
	}

	statusBar := ui.RenderStatusBar(m.width, s, ui.StatusLine{
		ConfirmArm: m.confirmArm,
		Wiped:      m.wiped,
		SweepDeg:   m.shared.sweep.Degrees(),
	})

	return ui.ComposeLayout(menuBar, radarPanel, side, statusBar)
}

// Notifier forwards engine wipe events to a running program.
type Notifier struct {
	mu      sync.Mutex
	program *tea.Program
}

// Bind attaches the program once it exists.
func (n *Notifier) Bind(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = p
}

// Wipe is the engine's OnWipe hook. The engine advances inside Update, so
// the send happens on its own goroutine to keep the event loop free.
func (n *Notifier) Wipe(at time.Time) {
	n.mu.Lock()
	p := n.program
	n.mu.Unlock()
	if p != nil {
		go p.Send(WipeMsg(at))
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
