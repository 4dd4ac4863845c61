package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avyukth/medsim/internal/router"
	"github.com/avyukth/medsim/internal/screen"
	"github.com/avyukth/medsim/internal/screens/history"
	"github.com/avyukth/medsim/internal/screens/intake"
	"github.com/avyukth/medsim/internal/session"
	"github.com/avyukth/medsim/internal/store"
	"github.com/avyukth/medsim/internal/ui/components"
	"github.com/avyukth/medsim/internal/ui/theme"
)

// Options carries the home screen dependencies.
type Options struct {
	// NewManager builds a fresh session per encounter. Nil means no LLM
	// credential was found; the encounter entry is disabled.
	NewManager func() *session.Manager

	// EventRepo backs the history screen. Nil disables history.
	EventRepo store.EventRepo

	// ProviderWarning explains a missing credential to the user.
	ProviderWarning string
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu    components.Menu
	warning string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:    "NEW ENCOUNTER",
			Disabled: opts.NewManager == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: intake.New(opts.NewManager)}
				}
			},
		},
		{
			Label:    "HISTORY",
			Disabled: opts.EventRepo == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(opts.EventRepo)}
				}
			},
		},
		{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		warning: opts.ProviderWarning,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("MedSim"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Virtual patients for clinical reasoning practice"))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if h.warning != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(h.warning))
	}

	return b.String()
}
