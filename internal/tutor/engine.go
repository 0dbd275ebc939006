package tutor

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/abhisek/docent/internal/llm"
	"github.com/abhisek/docent/internal/store"
)

// Purpose labels for LLM request logging.
const (
	purposeIntro    = "tutor-intro"
	purposeSection  = "tutor-section"
	purposeQnA      = "tutor-qna"
	purposeQuizGen  = "tutor-quiz-gen"
	purposeExplain  = "tutor-explain"
	purposeEvaluate = "tutor-evaluate"
	purposeReteach  = "tutor-reteach"
	purposeComplete = "tutor-complete"
)

// Response is the engine's answer to one student message: the tutor's
// reply plus the session state the UI needs to render it.
type Response struct {
	// Message is the tutor's reply. Every turn produces exactly one.
	Message string `json:"message"`

	// State is the conversation state after the turn.
	State State `json:"state"`

	// SectionIndex is the section the student is on after the turn.
	SectionIndex int `json:"section_index"`

	// SectionTitle names the current section, when one remains.
	SectionTitle string `json:"section_title,omitempty"`

	// SectionText carries the sanitized section text when the turn
	// presented a section, so the UI can display it alongside the reply.
	SectionText string `json:"section_text,omitempty"`

	// QuizQuestion and QuizOptions mirror the active quiz, if any.
	QuizQuestion string   `json:"quiz_question,omitempty"`
	QuizOptions  []string `json:"quiz_options,omitempty"`

	// UserAnswer is the letter the student most recently selected.
	UserAnswer string `json:"user_answer,omitempty"`

	// IsCorrect reports the verdict when the turn evaluated a quiz
	// answer. Nil on turns that didn't.
	IsCorrect *bool `json:"is_correct,omitempty"`

	// ExplanationAttempts counts wrong answers on the active quiz.
	ExplanationAttempts int `json:"explanation_attempts,omitempty"`

	// QuizCount counts quiz cycles passed on the current section.
	QuizCount int `json:"quiz_count,omitempty"`

	// CanSkipToNext signals that the student may advance by keyword.
	CanSkipToNext bool `json:"can_skip_to_next,omitempty"`

	// HighlightSection signals that the UI should scroll to and
	// highlight the current section.
	HighlightSection bool `json:"highlight_section,omitempty"`
}

// handlerFunc processes one student message for a session in a given
// state. Handlers mutate the session and never fail: any generation
// error degrades to a deterministic reply.
type handlerFunc func(ctx context.Context, s *TutoringSession, input string) *Response

// Engine drives tutoring sessions through the conversation states.
// All LLM failures degrade to canned replies, so a session can always
// move forward.
type Engine struct {
	sessions  Store
	completer Completer
	events    store.EventRepo

	handlers map[State]handlerFunc
	locks    sync.Map // session ID -> *sync.Mutex
}

// NewEngine creates an Engine on top of a session store and a
// completer. events may be nil to disable event recording.
func NewEngine(sessions Store, completer Completer, events store.EventRepo) *Engine {
	e := &Engine{
		sessions:  sessions,
		completer: completer,
		events:    events,
	}
	e.handlers = map[State]handlerFunc{
		StateIntroduction:     e.handleIntroduction,
		StateSectionReading:   e.handleSectionReading,
		StateSectionQnA:       e.handleSectionQnA,
		StateQuizQuestion:     e.handleQuizQuestion,
		StateQuizReasoning:    e.handleQuizReasoning,
		StateQuizReteach:      e.handleQuizReteach,
		StateQuizComplete:     e.handleQuizComplete,
		StateDocumentComplete: e.handleDocumentComplete,
	}
	return e
}

// Start creates a session for a document and produces the tutor's
// opening message.
func (e *Engine) Start(ctx context.Context, documentID, fullText string, sections []Section) (*TutoringSession, *Response, error) {
	s := NewTutoringSession(documentID, fullText, sections)

	msg := e.complete(ctx, purposeIntro, buildIntroductionPrompt(len(sections)))
	if msg == "" {
		msg = introductionFallback()
	}
	s.AppendAssistant(msg)

	if err := e.sessions.Create(ctx, s); err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}
	e.appendEvent(ctx, s, store.TutoringActionStart, s.State)

	return s, e.respond(s, msg), nil
}

// ProcessMessage runs one turn of a session: the student's message goes
// into the conversation history, the state handler produces the tutor's
// reply, and the updated session is persisted. Turns for the same
// session are serialized. Returns ErrSessionNotFound if the session
// doesn't exist.
func (e *Engine) ProcessMessage(ctx context.Context, sessionID, message string) (*Response, error) {
	mu := e.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	s, err := e.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	from := s.State
	fromIndex := s.CurrentSectionIndex
	s.AppendUser(message)

	handler, ok := e.handlers[s.State]
	if !ok {
		handler = e.handleDocumentComplete
	}
	resp := handler(ctx, s, message)

	s.AppendAssistant(resp.Message)
	if err := e.sessions.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	action := store.TutoringActionMessage
	switch {
	case s.State == StateDocumentComplete && from != StateDocumentComplete:
		action = store.TutoringActionDocumentComplete
	case s.CurrentSectionIndex > fromIndex:
		action = store.TutoringActionSectionComplete
	}
	e.appendEvent(ctx, s, action, from)

	return resp, nil
}

// GetState returns a copy of the session. Returns ErrSessionNotFound
// if the session doesn't exist.
func (e *Engine) GetState(ctx context.Context, sessionID string) (*TutoringSession, error) {
	return e.sessions.Get(ctx, sessionID)
}

// sessionLock returns the mutex serializing turns for one session.
func (e *Engine) sessionLock(sessionID string) *sync.Mutex {
	mu, _ := e.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// complete runs one completion tagged with a purpose label. Returns ""
// when no completer is configured or generation fails.
func (e *Engine) complete(ctx context.Context, purpose, prompt string) string {
	if e.completer == nil {
		return ""
	}
	return e.completer.Complete(llm.WithPurpose(ctx, purpose), prompt)
}

// respond builds the response envelope from the session's state after
// the handler ran.
func (e *Engine) respond(s *TutoringSession, message string) *Response {
	r := &Response{
		Message:             message,
		State:               s.State,
		SectionIndex:        s.CurrentSectionIndex,
		UserAnswer:          s.UserQuizAnswer,
		ExplanationAttempts: s.ExplanationAttempts,
		QuizCount:           s.QuizCount,
	}
	if sec := s.CurrentSection(); sec != nil {
		r.SectionTitle = sec.Title
	}
	if s.CurrentQuiz != nil {
		r.QuizQuestion = s.CurrentQuiz.Question
		r.QuizOptions = slices.Clone(s.CurrentQuiz.Options)
	}
	return r
}

// appendEvent records one tutoring turn. Failures are logged to stderr
// and never fail the turn.
func (e *Engine) appendEvent(ctx context.Context, s *TutoringSession, action string, from State) {
	if e.events == nil {
		return
	}
	err := e.events.AppendTutoringEvent(ctx, store.TutoringEventData{
		SessionID:    s.ID,
		DocumentID:   s.DocumentID,
		Action:       action,
		StateFrom:    string(from),
		StateTo:      string(s.State),
		SectionIndex: s.CurrentSectionIndex,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record tutoring event: %v\n", err)
	}
}

// appendQuizEvent records one evaluated quiz answer. Failures are
// logged to stderr and never fail the turn.
func (e *Engine) appendQuizEvent(ctx context.Context, s *TutoringSession, answer string, correct bool, attempt int) {
	if e.events == nil || s.CurrentQuiz == nil {
		return
	}
	err := e.events.AppendQuizEvent(ctx, store.QuizEventData{
		SessionID:     s.ID,
		DocumentID:    s.DocumentID,
		SectionIndex:  s.CurrentSectionIndex,
		QuestionText:  s.CurrentQuiz.Question,
		CorrectLetter: s.CurrentQuiz.CorrectLetter,
		UserAnswer:    answer,
		Correct:       correct,
		Attempt:       attempt,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record quiz event: %v\n", err)
	}
}
