// Package history shows lifetime tutoring activity and recent library
// changes from the event store.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/docent/internal/screen"
	"github.com/abhisek/docent/internal/store"
	"github.com/abhisek/docent/internal/ui/components"
	"github.com/abhisek/docent/internal/ui/layout"
	"github.com/abhisek/docent/internal/ui/theme"
)

type historyLoadedMsg struct {
	Tutoring  *store.TutoringStats
	Quiz      *store.QuizStats
	Documents []store.DocumentEvent
	Err       error
}

// HistoryScreen displays aggregate stats and recent document events.
type HistoryScreen struct {
	eventRepo store.EventRepo
	tutoring  *store.TutoringStats
	quiz      *store.QuizStats
	documents []store.DocumentEvent
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		tut, err := s.eventRepo.TutoringStats(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		quiz, err := s.eventRepo.QuizStats(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		docs, err := s.eventRepo.QueryDocumentEvents(ctx, store.QueryOpts{Limit: 15})
		if err != nil {
			return historyLoadedMsg{Tutoring: tut, Quiz: quiz}
		}
		return historyLoadedMsg{Tutoring: tut, Quiz: quiz, Documents: docs}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(historyLoadedMsg); ok {
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		}
		s.tutoring = m.Tutoring
		s.quiz = m.Quiz
		s.documents = m.Documents
		s.loaded = true
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render("Could not load history:\n" + s.errMsg)
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("Loading...")
	}

	cw := components.ContentWidth(width)
	var sections []string
	sections = append(sections, s.renderStats(cw))
	if len(s.documents) > 0 {
		sections = append(sections, s.renderDocuments(cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (s *HistoryScreen) renderStats(cw int) string {
	num := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	lbl := lipgloss.NewStyle().Foreground(theme.TextDim)

	var lines []string
	if s.tutoring != nil {
		lines = append(lines,
			num.Render(fmt.Sprintf("%d", s.tutoring.Sessions))+lbl.Render(" sessions"),
			num.Render(fmt.Sprintf("%d", s.tutoring.SectionsCompleted))+lbl.Render(" sections completed"),
			num.Render(fmt.Sprintf("%d", s.tutoring.DocumentsComplete))+lbl.Render(" documents finished"),
		)
	}
	if s.quiz != nil && s.quiz.Answers > 0 {
		lines = append(lines,
			num.Render(fmt.Sprintf("%d", s.quiz.Answers))+lbl.Render(" quiz answers, ")+
				num.Render(fmt.Sprintf("%.0f%%", s.quiz.Accuracy*100))+lbl.Render(" correct"))
	}
	if len(lines) == 0 {
		lines = append(lines, lbl.Render("No tutoring activity yet."))
	}

	return components.Card(strings.Join(lines, "\n"), cw)
}

func (s *HistoryScreen) renderDocuments(cw int) string {
	header := lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true).Render("Recent library changes")

	lbl := lipgloss.NewStyle().Foreground(theme.TextDim)
	var lines []string
	for _, e := range s.documents {
		verb := "added"
		if e.Action == store.DocumentActionDeleted {
			verb = "removed"
		}
		title := e.Title
		if len(title) > 34 {
			title = title[:31] + "..."
		}
		lines = append(lines, fmt.Sprintf("%s  %s %s",
			lbl.Render(e.Timestamp.Local().Format("Jan 02 15:04")), verb, title))
	}

	return components.Card(header+"\n\n"+strings.Join(lines, "\n"), cw)
}
