// Package summary shows the outcome of a finished tutoring session.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/docent/internal/router"
	"github.com/abhisek/docent/internal/screen"
	"github.com/abhisek/docent/internal/ui/components"
	"github.com/abhisek/docent/internal/ui/layout"
	"github.com/abhisek/docent/internal/ui/theme"
)

// Summary is the session outcome the tutoring screen hands over.
type Summary struct {
	DocumentTitle   string
	Sections        int
	SectionsDone    int
	QuizzesAnswered int
	QuizzesCorrect  int
	Understanding   float64 // average recorded understanding, 0..1
	Duration        time.Duration
}

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
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
	cw := components.ContentWidth(width)
	sum := s.summary

	title := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).
		Render("★ SESSION COMPLETE ★")

	doc := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(sum.DocumentTitle)

	num := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	lbl := lipgloss.NewStyle().Foreground(theme.TextDim)

	lines := []string{
		num.Render(fmt.Sprintf("%d/%d", sum.SectionsDone, sum.Sections)) + lbl.Render(" sections completed"),
	}
	if sum.QuizzesAnswered > 0 {
		lines = append(lines,
			num.Render(fmt.Sprintf("%d/%d", sum.QuizzesCorrect, sum.QuizzesAnswered))+lbl.Render(" quiz answers correct"))
	}
	lines = append(lines, lbl.Render("time: ")+num.Render(formatDuration(sum.Duration)))

	stats := strings.Join(lines, "\n")

	bar := components.NewProgressBar("Understanding", sum.Understanding, true, cw-8).View()

	content := strings.Join([]string{
		title,
		components.Card(doc+"\n\n"+stats, cw),
		bar,
		components.NewButton("RETURN HOME", true, nil).View(),
	}, "\n\n")

	return components.Frame(content, width, height)
}

// formatDuration renders a session length as "7m32s" style text.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	if m == 0 {
		return fmt.Sprintf("%ds", s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
