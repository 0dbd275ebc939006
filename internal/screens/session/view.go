package session

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/docent/internal/tutor"
	"github.com/abhisek/docent/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render("Something went wrong:\n\n" + s.errMsg + "\n\nPress Esc to go back.")
	}

	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	footer := s.renderInput(inner)
	footerHeight := lipgloss.Height(footer)

	transcriptHeight := height - footerHeight - 1
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}
	transcript := s.renderTranscript(inner, transcriptHeight)

	return lipgloss.NewStyle().Padding(0, 2).Render(
		transcript + "\n" + footer)
}

// renderTranscript renders the conversation tail that fits in the
// available height, newest at the bottom.
func (s *SessionScreen) renderTranscript(width, height int) string {
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	youStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width)

	var blocks []string
	for _, e := range s.transcript {
		label := youStyle.Render("You")
		if e.fromTutor {
			label = tutorStyle.Render("Docent")
		}
		blocks = append(blocks, label+"\n"+body.Render(e.text))
	}
	if s.busy {
		blocks = append(blocks, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Docent is thinking..."))
	}

	all := strings.Split(strings.Join(blocks, "\n\n"), "\n")
	if len(all) > height {
		all = all[len(all)-height:]
	}
	text := strings.Join(all, "\n")

	// Pin the transcript to the bottom of its area.
	if pad := height - len(all); pad > 0 {
		text = strings.Repeat("\n", pad) + text
	}
	return text
}

// renderInput renders the footer control: the quiz letter selector while
// a quiz is open, otherwise the free-text input.
func (s *SessionScreen) renderInput(width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width))

	if s.state == tutor.StateDocumentComplete {
		return divider + "\n" + lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("Document complete! Press Enter for your summary.")
	}
	if s.choosing {
		return divider + "\n" + s.choice.View()
	}
	return divider + "\n" + s.input.View()
}
