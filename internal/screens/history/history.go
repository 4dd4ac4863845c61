package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/avyukth/medsim/internal/router"
	"github.com/avyukth/medsim/internal/screen"
	"github.com/avyukth/medsim/internal/store"
	"github.com/avyukth/medsim/internal/ui/layout"
	"github.com/avyukth/medsim/internal/ui/theme"
)

type historyLoadedMsg struct {
	Encounters []store.EncounterSummary
	Err        error
}

// HistoryScreen displays past encounters from the event log.
type HistoryScreen struct {
	eventRepo  store.EventRepo
	encounters []store.EncounterSummary
	selected   int
	expanded   map[int]bool
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		encounters, err := s.eventRepo.EncounterSummaries(context.Background(), 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Encounters: encounters}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.encounters = msg.Encounters
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.encounters)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.encounters) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No encounters yet. See your first patient!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, enc := range s.encounters {
		dateStr := enc.StartedAt.Format("Jan 02, 2006")

		outcome := lipgloss.NewStyle().Foreground(theme.TextDim).Render("abandoned")
		if enc.Completed {
			if enc.Correct {
				outcome = lipgloss.NewStyle().Foreground(theme.Success).Render(
					fmt.Sprintf("correct  %d/100", enc.Score))
			} else {
				outcome = lipgloss.NewStyle().Foreground(theme.Error).Render(
					fmt.Sprintf("missed   %d/100", enc.Score))
			}
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s, %d  %s  %s",
			prefix, dateStr, enc.PatientName, enc.PatientAge, enc.ChiefComplaint, outcome)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			details := []string{
				fmt.Sprintf("    Diagnosis: %s", enc.Diagnosis),
			}
			if enc.Completed {
				details = append(details,
					fmt.Sprintf("    Submitted: %s", enc.SubmittedDiagnosis),
					fmt.Sprintf("    Questions: %d   Exams: %d   Time: %.1f min",
						enc.QuestionsAsked, enc.ExamsPerformed, enc.DurationMins),
				)
			}
			for _, d := range details {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(d)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
