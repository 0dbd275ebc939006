package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/docent/internal/library"
	"github.com/abhisek/docent/internal/router"
	"github.com/abhisek/docent/internal/screen"
	"github.com/abhisek/docent/internal/screens/history"
	"github.com/abhisek/docent/internal/screens/picker"
	"github.com/abhisek/docent/internal/screens/placeholder"
	"github.com/abhisek/docent/internal/screens/welcome"
	"github.com/abhisek/docent/internal/store"
	"github.com/abhisek/docent/internal/tutor"
	"github.com/abhisek/docent/internal/ui/components"
	"github.com/abhisek/docent/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu              components.Menu
	documents         int
	sectionsCompleted int
	quizAccuracy      float64
	quizAnswers       int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. Stats are read once at construction;
// returning to the home screen rebuilds it, which refreshes them.
func New(engine *tutor.Engine, lib *library.Library, eventRepo store.EventRepo) *HomeScreen {
	h := &HomeScreen{}

	if lib != nil {
		h.documents = lib.Len()
	}
	if eventRepo != nil {
		ctx := context.Background()
		if ts, err := eventRepo.TutoringStats(ctx); err == nil && ts != nil {
			h.sectionsCompleted = ts.SectionsCompleted
		}
		if qs, err := eventRepo.QuizStats(ctx); err == nil && qs != nil {
			h.quizAccuracy = qs.Accuracy
			h.quizAnswers = qs.Answers
		}
	}

	items := []components.MenuItem{
		{Label: "START TUTORING", Action: func() tea.Cmd {
			if engine == nil || lib == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Start Tutoring")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(engine, lib)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, welcome.RenderBanner(cw))
	sections = append(sections, h.renderStats(cw))
	sections = append(sections, components.Card(h.menu.View(), cw))

	content := strings.Join(sections, "\n\n")
	return components.Frame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStats shows the library size and lifetime learning numbers.
func (h *HomeScreen) renderStats(cw int) string {
	num := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	lbl := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := []string{
		num.Render(fmt.Sprintf("%d", h.documents)) + lbl.Render(" documents"),
		num.Render(fmt.Sprintf("%d", h.sectionsCompleted)) + lbl.Render(" sections done"),
	}
	if h.quizAnswers > 0 {
		parts = append(parts,
			num.Render(fmt.Sprintf("%.0f%%", h.quizAccuracy*100))+lbl.Render(" quiz accuracy"))
	}

	return components.Card(strings.Join(parts, lbl.Render("   │   ")), cw)
}
