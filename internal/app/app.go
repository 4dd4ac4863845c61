package app

import (
	"fmt"
	"math/rand/v2"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avyukth/medsim/internal/evaluate"
	"github.com/avyukth/medsim/internal/interview"
	"github.com/avyukth/medsim/internal/llm"
	"github.com/avyukth/medsim/internal/patient"
	"github.com/avyukth/medsim/internal/router"
	"github.com/avyukth/medsim/internal/screen"
	"github.com/avyukth/medsim/internal/screens/home"
	"github.com/avyukth/medsim/internal/session"
	"github.com/avyukth/medsim/internal/store"
	"github.com/avyukth/medsim/internal/ui/layout"
)

// Options wires the TUI to its backing services.
type Options struct {
	// Provider is nil when no LLM credential was found.
	Provider llm.Provider

	// EventRepo is nil when the event store failed to open.
	EventRepo store.EventRepo

	// ProviderWarning is shown on the home screen when Provider is nil.
	ProviderWarning string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	homeOpts := home.Options{
		EventRepo:       opts.EventRepo,
		ProviderWarning: opts.ProviderWarning,
	}
	if opts.Provider != nil {
		provider := opts.Provider
		eventRepo := opts.EventRepo
		homeOpts.NewManager = func() *session.Manager {
			return session.NewManager(session.Options{
				Provider:        provider,
				EventRepo:       eventRepo,
				Rand:            rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
				PatientConfig:   patient.DefaultConfig(),
				InterviewConfig: interview.DefaultConfig(),
				EvaluateConfig:  evaluate.DefaultConfig(),
			})
		}
	}
	return AppModel{
		router: router.New(home.New(homeOpts)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	patientName := ""
	if active != nil {
		title = active.Title()
		if pp, ok := active.(screen.PatientProvider); ok {
			patientName = pp.PatientName()
		}
	}

	header := layout.RenderHeader(title, patientName, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
