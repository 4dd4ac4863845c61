package encounter

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avyukth/medsim/internal/ui/theme"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

func (s *EncounterScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	}
	if s.showingQuit {
		return renderQuitConfirm(width)
	}
	c := s.mgr.Case()
	if c == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  " + s.pendingLabel + " " + s.spinner())
	}

	var b strings.Builder

	// Patient banner.
	banner := fmt.Sprintf("  %s, %d, %s", c.Name, c.Age, c.Gender)
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(banner))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	// Transcript, tail-trimmed to the space above the input area.
	inputArea := s.renderInputArea(width)
	transcriptHeight := height - lipgloss.Height(b.String()) - lipgloss.Height(inputArea) - 1
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}
	b.WriteString(s.renderTranscript(width, transcriptHeight))
	b.WriteString("\n")
	b.WriteString(inputArea)

	return b.String()
}

func (s *EncounterScreen) spinner() string {
	return spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
}

func (s *EncounterScreen) renderTranscript(width, height int) string {
	wrap := lipgloss.NewStyle().Width(max(width-6, 20))

	var lines []string
	for _, e := range s.log {
		var styled string
		switch e.kind {
		case entryQuestion:
			styled = wrap.Foreground(theme.Primary).Render("You: " + e.text)
		case entryAnswer:
			label := "Patient"
			if e.tone != "" && e.tone != "calm" {
				label = fmt.Sprintf("Patient (%s)", e.tone)
			}
			styled = wrap.Foreground(theme.ToneColor(e.tone)).Render(label + ": " + e.text)
		case entryVitals:
			styled = wrap.Foreground(theme.Secondary).Render(e.text)
		case entryExam:
			styled = wrap.Foreground(theme.Secondary).Render(e.text)
		case entryHint:
			styled = wrap.Foreground(theme.Accent).Italic(true).Render(e.text)
		default:
			styled = wrap.Foreground(theme.TextDim).Render(e.text)
		}
		lines = append(lines, strings.Split(styled, "\n")...)
	}

	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	pad := "  "
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (s *EncounterScreen) renderInputArea(width int) string {
	if s.pending {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + s.pendingLabel + " " + s.spinner())
	}

	switch s.mode {
	case modeExamPicker:
		return s.renderExamPicker()
	case modeDiagnosis:
		return s.renderDiagnosisForm(width)
	}

	return "  " + s.input.View()
}

func (s *EncounterScreen) renderExamPicker() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Examine which area?"))
	b.WriteString("\n")
	for i, area := range examAreas {
		if i == s.examSelected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  > " + area))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + area))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *EncounterScreen) renderDiagnosisForm(width int) string {
	label := func(text string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		return style.Render(text)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  Submit your diagnosis"))
	b.WriteString("\n")
	b.WriteString("  " + label("Diagnosis:", s.dxFocus == 0) + " " + s.dxInput.View())
	b.WriteString("\n")
	b.WriteString("  " + label("Reasoning:", s.dxFocus == 1) + " " + s.reasonInput.View())
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this patient?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("The encounter will not be graded."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, walk away"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
