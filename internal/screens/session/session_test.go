package session

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/docent/internal/library"
	"github.com/abhisek/docent/internal/router"
	"github.com/abhisek/docent/internal/tutor"
)

const sectionText = "Photosynthesis is the process by which green plants convert light energy " +
	"into chemical energy. Chlorophyll in the leaves absorbs sunlight, and the plant uses that " +
	"energy to turn carbon dioxide and water into glucose and oxygen."

func testDocument() library.Document {
	sections := []tutor.Section{
		{Title: "Photosynthesis", Text: sectionText},
		{Title: "Respiration", Text: strings.Replace(sectionText, "Photosynthesis", "Respiration", 1)},
	}
	return library.Document{
		ID:       "doc-1",
		Title:    "Plant Biology",
		Text:     sections[0].Title + "\n" + sections[0].Text + "\n\n" + sections[1].Title + "\n" + sections[1].Text,
		Sections: sections,
	}
}

// testScreen builds a session screen over a real engine with no
// completer, so every tutor reply is the deterministic fallback text.
func testScreen(t *testing.T) *SessionScreen {
	t.Helper()
	st, err := tutor.NewStore(tutor.StoreTypeMemory)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	engine := tutor.NewEngine(st, nil, nil)
	return New(engine, testDocument())
}

// started boots the screen through its start command.
func started(t *testing.T, s *SessionScreen) {
	t.Helper()
	msg := s.start()()
	sm, ok := msg.(startedMsg)
	if !ok {
		t.Fatalf("start() produced %T, want startedMsg", msg)
	}
	if sm.err != nil {
		t.Fatalf("start: %v", sm.err)
	}
	s.Update(sm)
}

// turn sends one student message and folds the reply into the screen.
func turn(t *testing.T, s *SessionScreen, text string) *tutor.Response {
	t.Helper()
	msg := s.send(text)()
	tm, ok := msg.(turnMsg)
	if !ok {
		t.Fatalf("send() produced %T, want turnMsg", msg)
	}
	if tm.err != nil {
		t.Fatalf("turn %q: %v", text, tm.err)
	}
	s.Update(tm)
	return tm.resp
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestStartPresentsFirstSection(t *testing.T) {
	s := testScreen(t)
	started(t, s)

	if s.state != tutor.StateSectionQnA {
		t.Errorf("state = %v, want %v", s.state, tutor.StateSectionQnA)
	}
	if len(s.transcript) != 2 {
		t.Errorf("transcript length = %d, want 2 (intro + section)", len(s.transcript))
	}
	if got := s.Status(); !strings.Contains(got, "1/2") {
		t.Errorf("Status() = %q, want section position 1/2", got)
	}
}

func TestQuizSwitchesToLetterSelector(t *testing.T) {
	s := testScreen(t)
	started(t, s)

	resp := turn(t, s, "I'm ready for the quiz")
	if resp.State != tutor.StateQuizQuestion {
		t.Fatalf("state = %v, want %v", resp.State, tutor.StateQuizQuestion)
	}
	if !s.choosing {
		t.Error("expected the letter selector to be active")
	}
	if len(s.choice.Options) != 4 {
		t.Errorf("selector has %d options, want 4", len(s.choice.Options))
	}
}

func TestAnswerSubmissionCountsQuiz(t *testing.T) {
	s := testScreen(t)
	started(t, s)
	turn(t, s, "quiz")

	// With no completer the placeholder quiz is used; its answer is A,
	// and the selector starts on option A.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command carrying the answer turn")
	}
	if s.choosing {
		t.Error("selector should close once the answer is sent")
	}
	tm, ok := cmd().(turnMsg)
	if !ok {
		t.Fatalf("answer command produced %T, want turnMsg", cmd())
	}
	s.Update(tm)

	if s.quizzesAnswered != 1 || s.quizzesCorrect != 1 {
		t.Errorf("answered/correct = %d/%d, want 1/1", s.quizzesAnswered, s.quizzesCorrect)
	}
	if s.state != tutor.StateQuizReasoning {
		t.Errorf("state = %v, want %v", s.state, tutor.StateQuizReasoning)
	}
}

func TestTypedMessageGoesThroughInput(t *testing.T) {
	s := testScreen(t)
	started(t, s)

	for _, r := range "next" {
		s.Update(keyPress(r))
	}
	if got := s.input.Value(); got != "next" {
		t.Fatalf("input value = %q, want %q", got, "next")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command carrying the turn")
	}
	if !s.busy {
		t.Error("screen should be busy while the turn is in flight")
	}
	if s.input.Value() != "" {
		t.Error("input should clear after sending")
	}
}

func TestCompleteOffersSummary(t *testing.T) {
	s := testScreen(t)
	started(t, s)

	// Pass one quiz cycle, then advance through both sections.
	turn(t, s, "quiz")
	turn(t, s, "A")
	turn(t, s, "because the section says so")
	turn(t, s, "next section")
	turn(t, s, "quiz")
	turn(t, s, "A")
	turn(t, s, "because the section says so")
	resp := turn(t, s, "next section")

	if resp.State != tutor.StateDocumentComplete {
		t.Fatalf("state = %v, want %v", resp.State, tutor.StateDocumentComplete)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command producing the summary screen")
	}
	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("completion produced %T, want ReplaceScreenMsg", msg)
	}
	if rep.Screen.Title() != "Session Summary" {
		t.Errorf("replacement screen = %q, want the summary", rep.Screen.Title())
	}
}
