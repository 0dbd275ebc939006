// Package session is the tutoring conversation screen: the transcript,
// the free-text input, and the quiz letter selector.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/docent/internal/library"
	"github.com/abhisek/docent/internal/router"
	"github.com/abhisek/docent/internal/screen"
	"github.com/abhisek/docent/internal/screens/summary"
	"github.com/abhisek/docent/internal/tutor"
	"github.com/abhisek/docent/internal/ui/components"
	"github.com/abhisek/docent/internal/ui/layout"
)

// entry is one transcript line.
type entry struct {
	fromTutor bool
	text      string
}

// startedMsg carries the result of creating the session and presenting
// the first section.
type startedMsg struct {
	sessionID string
	intro     string
	resp      *tutor.Response
	err       error
}

// turnMsg carries the engine's reply to one student message.
type turnMsg struct {
	resp *tutor.Response
	err  error
}

// SessionScreen drives one tutoring session for one document.
type SessionScreen struct {
	engine *tutor.Engine
	doc    library.Document

	sessionID  string
	state      tutor.State
	transcript []entry

	input    components.TextInput
	choice   components.MultiChoice
	choosing bool
	busy     bool
	errMsg   string

	startedAt       time.Time
	sectionIndex    int
	quizzesAnswered int
	quizzesCorrect  int
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for the given document.
func New(engine *tutor.Engine, doc library.Document) *SessionScreen {
	return &SessionScreen{
		engine: engine,
		doc:    doc,
		input:  components.NewTextInput("Ask a question, or say 'ready' for a quiz...", false, 200),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	s.startedAt = time.Now()
	return tea.Batch(s.start(), s.input.Init())
}

func (s *SessionScreen) Title() string {
	return "Tutoring"
}

// Status shows the document and section position in the header.
func (s *SessionScreen) Status() string {
	title := s.doc.Title
	if len(title) > 24 {
		title = title[:21] + "..."
	}
	total := len(s.doc.Sections)
	sec := s.sectionIndex + 1
	if sec > total {
		sec = total
	}
	return fmt.Sprintf("%s · %d/%d", title, sec, total)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.state == tutor.StateDocumentComplete:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Summary"},
			{Key: "Esc", Description: "Home"},
		}
	case s.choosing:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Leave session"},
		}
	}
}

// start creates the tutoring session and auto-sends the first message so
// the tutor presents section one without waiting for input.
func (s *SessionScreen) start() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sess, intro, err := s.engine.Start(ctx, s.doc.ID, s.doc.Text, s.doc.Sections)
		if err != nil {
			return startedMsg{err: err}
		}
		sessionID := sess.ID
		resp, err := s.engine.ProcessMessage(ctx, sessionID, "start")
		if err != nil {
			return startedMsg{err: err}
		}
		return startedMsg{sessionID: sessionID, intro: intro.Message, resp: resp}
	}
}

// send runs one tutoring turn off the UI goroutine.
func (s *SessionScreen) send(text string) tea.Cmd {
	sessionID := s.sessionID
	return func() tea.Msg {
		resp, err := s.engine.ProcessMessage(context.Background(), sessionID, text)
		return turnMsg{resp: resp, err: err}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.sessionID = msg.sessionID
		s.transcript = append(s.transcript, entry{fromTutor: true, text: msg.intro})
		s.apply(msg.resp)
		return s, nil

	case turnMsg:
		s.busy = false
		if msg.err != nil {
			if errors.Is(msg.err, tutor.ErrSessionNotFound) {
				s.errMsg = tutor.MsgStartNewSession
			} else {
				s.errMsg = msg.err.Error()
			}
			return s, nil
		}
		s.apply(msg.resp)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.choosing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.state == tutor.StateDocumentComplete && msg.String() == "enter" {
		return s, s.finish()
	}
	if s.busy {
		return s, nil
	}

	if s.choosing {
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted && s.choice.ChosenIndex >= 0 {
			letter := string(rune('A' + s.choice.ChosenIndex))
			s.choosing = false
			s.transcript = append(s.transcript, entry{text: letter})
			s.busy = true
			return s, s.send(letter)
		}
		return s, cmd
	}

	if msg.String() == "enter" {
		text := strings.TrimSpace(s.input.Value())
		if text == "" {
			return s, nil
		}
		s.input.Model.SetValue("")
		s.transcript = append(s.transcript, entry{text: text})
		s.busy = true
		return s, s.send(text)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// apply folds one engine response into the screen state.
func (s *SessionScreen) apply(resp *tutor.Response) {
	s.transcript = append(s.transcript, entry{fromTutor: true, text: resp.Message})
	s.state = resp.State
	s.sectionIndex = resp.SectionIndex

	if resp.IsCorrect != nil {
		s.quizzesAnswered++
		if *resp.IsCorrect {
			s.quizzesCorrect++
		}
	}

	// A fresh quiz turn switches the footer input to the letter selector.
	s.choosing = false
	if resp.State == tutor.StateQuizQuestion && len(resp.QuizOptions) > 0 {
		// The engine judges the answer; the component never reveals it.
		s.choice = components.NewMultiChoice(resp.QuizQuestion, resp.QuizOptions, -1)
		s.choosing = true
	}
}

// finish gathers the session outcome and swaps in the summary screen.
func (s *SessionScreen) finish() tea.Cmd {
	return func() tea.Msg {
		sum := summary.Summary{
			DocumentTitle:   s.doc.Title,
			Sections:        len(s.doc.Sections),
			QuizzesAnswered: s.quizzesAnswered,
			QuizzesCorrect:  s.quizzesCorrect,
			Duration:        time.Since(s.startedAt),
		}
		if snap, err := s.engine.GetState(context.Background(), s.sessionID); err == nil {
			sum.SectionsDone = snap.CurrentSectionIndex
			if len(snap.SectionUnderstanding) > 0 {
				var total float64
				for _, v := range snap.SectionUnderstanding {
					total += v
				}
				sum.Understanding = total / float64(len(snap.SectionUnderstanding))
			}
		}
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
