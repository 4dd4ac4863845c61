package summary

import (
	"fmt"
	imgcolor "image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avyukth/medsim/internal/router"
	"github.com/avyukth/medsim/internal/screen"
	"github.com/avyukth/medsim/internal/session"
	"github.com/avyukth/medsim/internal/ui/layout"
	"github.com/avyukth/medsim/internal/ui/theme"
)

// SummaryScreen displays the graded encounter report.
type SummaryScreen struct {
	report *session.Report
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(report *session.Report) *SummaryScreen {
	return &SummaryScreen{report: report}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Encounter Report"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.report
	if r == nil {
		return ""
	}
	ev := r.Evaluation

	var b strings.Builder

	// Verdict.
	if ev.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct diagnosis!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not the diagnosis"))
	}
	b.WriteString("\n\n")

	// Submitted vs actual.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("You said: %s", r.SubmittedDiagnosis)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Actual: %s", r.CorrectDiagnosis)))
	b.WriteString("\n\n")

	// Score and encounter stats.
	mins := int(r.Stats.DurationMinutes)
	secs := int(r.Stats.DurationMinutes*60) % 60
	statsLine := fmt.Sprintf("Score: %d/100        Questions: %d        Time: %d:%02d",
		ev.Score, r.Stats.QuestionsAsked, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(statsLine))
	b.WriteString("\n\n")

	// Feedback paragraph.
	fbStyle := lipgloss.NewStyle().
		Width(minInt(width-8, 70)).
		Foreground(theme.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fbStyle.Render(ev.Feedback)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", minInt(width-8, 60)))

	writeSection := func(label string, items []string, color imgcolor.Color) {
		if len(items) == 0 {
			return
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, item := range items {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(color).Render("  - "+item)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	writeSection("Strengths", ev.Strengths, theme.Success)
	writeSection("Improvements", ev.Improvements, theme.Accent)
	writeSection("Missed findings", ev.MissedFindings, theme.Error)

	if len(r.Differentials) > 0 {
		writeSection("Differentials to consider", r.Differentials, theme.Secondary)
	}

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
