package intake

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avyukth/medsim/internal/router"
	"github.com/avyukth/medsim/internal/screen"
	"github.com/avyukth/medsim/internal/screens/encounter"
	"github.com/avyukth/medsim/internal/session"
	"github.com/avyukth/medsim/internal/ui/components"
	"github.com/avyukth/medsim/internal/ui/layout"
	"github.com/avyukth/medsim/internal/ui/theme"
)

// IntakeScreen asks for a presenting complaint before the encounter
// starts. Leaving the field empty draws a random one.
type IntakeScreen struct {
	newManager func() *session.Manager
	input      components.TextInput
}

var _ screen.Screen = (*IntakeScreen)(nil)
var _ screen.KeyHintProvider = (*IntakeScreen)(nil)

// New creates an intake screen. newManager builds a fresh session for
// each encounter.
func New(newManager func() *session.Manager) *IntakeScreen {
	return &IntakeScreen{
		newManager: newManager,
		input:      components.NewTextInput("e.g. chest pain (blank for random)", 80),
	}
}

func (s *IntakeScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *IntakeScreen) Title() string {
	return "New Encounter"
}

func (s *IntakeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "See patient"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *IntakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			topic := strings.TrimSpace(s.input.Value())
			mgr := s.newManager()
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: encounter.New(mgr, topic)}
			}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *IntakeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("What brings the patient in?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Name a complaint or leave blank for a surprise."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	return b.String()
}
