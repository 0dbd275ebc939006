package picker

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/docent/internal/library"
	"github.com/abhisek/docent/internal/router"
	"github.com/abhisek/docent/internal/tutor"
)

func testLibrary(t *testing.T, titles ...string) *library.Library {
	t.Helper()
	lib := library.New(nil, nil)
	for i, title := range titles {
		err := lib.Add(t.Context(), library.Document{
			ID:    string(rune('a' + i)),
			Title: title,
			Sections: []tutor.Section{
				{Title: "Only Section", Text: strings.Repeat(title+" ", 30)},
			},
		})
		if err != nil {
			t.Fatalf("add %q: %v", title, err)
		}
	}
	return lib
}

func testEngine(t *testing.T) *tutor.Engine {
	t.Helper()
	st, err := tutor.NewStore(tutor.StoreTypeMemory)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return tutor.NewEngine(st, nil, nil)
}

func typeText(p *PickerScreen, text string) {
	for _, r := range text {
		p.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestFilterNarrowsByTitle(t *testing.T) {
	lib := testLibrary(t, "Plant Biology", "Roman History", "Plate Tectonics")
	p := New(testEngine(t), lib)

	if len(p.filtered) != 3 {
		t.Fatalf("unfiltered list has %d documents, want 3", len(p.filtered))
	}

	typeText(p, "plat")
	for _, d := range p.filtered {
		if d.Title == "Roman History" {
			t.Error("filter kept a non-matching document")
		}
	}
	if len(p.filtered) == 0 {
		t.Error("filter dropped every document")
	}
}

func TestEnterStartsSession(t *testing.T) {
	lib := testLibrary(t, "Plant Biology")
	p := New(testEngine(t), lib)

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("enter produced %T, want ReplaceScreenMsg", msg)
	}
	if rep.Screen.Title() != "Tutoring" {
		t.Errorf("replacement screen = %q, want the tutoring session", rep.Screen.Title())
	}
}

func TestEmptyLibraryExplainsIngest(t *testing.T) {
	p := New(testEngine(t), library.New(nil, nil))
	view := p.View(100, 40)
	if !strings.Contains(view, "docent ingest") {
		t.Error("empty library view should point at the ingest command")
	}
}
