// Package picker lets the student choose which library document to study.
package picker

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/abhisek/docent/internal/library"
	"github.com/abhisek/docent/internal/router"
	"github.com/abhisek/docent/internal/screen"
	sessionscreen "github.com/abhisek/docent/internal/screens/session"
	"github.com/abhisek/docent/internal/tutor"
	"github.com/abhisek/docent/internal/ui/components"
	"github.com/abhisek/docent/internal/ui/layout"
	"github.com/abhisek/docent/internal/ui/theme"
)

// PickerScreen shows the document library with a fuzzy filter.
type PickerScreen struct {
	engine *tutor.Engine
	lib    *library.Library

	all      []library.Document
	filtered []library.Document
	selected int
	input    components.TextInput
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a PickerScreen over the current library contents.
func New(engine *tutor.Engine, lib *library.Library) *PickerScreen {
	docs := lib.List()
	return &PickerScreen{
		engine:   engine,
		lib:      lib,
		all:      docs,
		filtered: docs,
		input:    components.NewTextInput("Filter documents...", false, 40),
	}
}

func (p *PickerScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *PickerScreen) Title() string {
	return "Choose a Document"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start tutoring"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up":
			if p.selected > 0 {
				p.selected--
			}
			return p, nil
		case "down":
			if p.selected < len(p.filtered)-1 {
				p.selected++
			}
			return p, nil
		case "enter":
			if p.selected >= 0 && p.selected < len(p.filtered) {
				doc := p.filtered[p.selected]
				return p, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: sessionscreen.New(p.engine, doc)}
				}
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.applyFilter()
	return p, cmd
}

// applyFilter narrows the document list with a fuzzy title match.
func (p *PickerScreen) applyFilter() {
	term := strings.TrimSpace(p.input.Value())
	if term == "" {
		p.filtered = p.all
	} else {
		titles := make([]string, len(p.all))
		for i, d := range p.all {
			titles[i] = d.Title
		}
		ranks := fuzzy.RankFindNormalizedFold(term, titles)
		sort.Sort(ranks)
		filtered := make([]library.Document, 0, len(ranks))
		for _, r := range ranks {
			filtered = append(filtered, p.all[r.OriginalIndex])
		}
		p.filtered = filtered
	}
	if p.selected >= len(p.filtered) {
		p.selected = len(p.filtered) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

func (p *PickerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if len(p.all) == 0 {
		empty := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			"The library is empty.\n\nAdd a document with:  docent ingest <file>")
		return components.Frame(components.Card(empty, cw), width, height)
	}

	// Left-aligned box; components.Card centers content, which reads
	// poorly for a list.
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2)

	var b strings.Builder
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if len(p.filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("No matches."))
	}

	for i, d := range p.filtered {
		line := fmt.Sprintf("%s  %s", d.Title,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("(%d sections, %d chars)", len(d.Sections), d.CharCount)))
		if i == p.selected {
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return components.Frame(box.Render(strings.TrimRight(b.String(), "\n")), width, height)
}
