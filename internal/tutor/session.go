package tutor

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// State identifies the tutoring state machine position. The string value is
// the wire tag returned to callers in the response envelope.
type State string

const (
	StateIntroduction     State = "introduction"
	StateSectionReading   State = "section_reading"
	StateSectionQnA       State = "section_qna"
	StateQuizQuestion     State = "quiz_question"
	StateQuizReasoning    State = "quiz_reasoning"
	StateQuizReteach      State = "quiz_reteach"
	StateQuizComplete     State = "quiz_complete"
	StateDocumentComplete State = "complete"
)

// Role identifies who produced a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn in a session's conversation history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Section is a titled, ordered slice of a document used as one teaching unit.
// Sections are produced by document processing and are immutable once
// tutoring starts.
type Section struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Quiz is a single multiple-choice question for the current section.
// Options always has length 4 and CorrectLetter is one of A-D; the parser
// substitutes a placeholder quiz rather than produce anything weaker.
type Quiz struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectLetter string   `json:"correct_letter"`
}

// TutoringSession is the sole mutable entity of the tutoring core. It is
// mutated once per user turn by the engine and persisted whole through the
// session store.
type TutoringSession struct {
	// ID is the session identifier assigned at creation.
	ID string `json:"id"`

	// DocumentID, FullText and Sections are set once at creation.
	DocumentID string    `json:"document_id"`
	FullText   string    `json:"full_text"`
	Sections   []Section `json:"sections"`

	// CurrentSectionIndex advances by exactly 1 per completed section.
	// The session is done when it reaches len(Sections).
	CurrentSectionIndex int `json:"current_section_index"`

	// State drives message routing.
	State State `json:"state"`

	// CurrentQuiz is the active quiz for the current cycle. It persists
	// across the question, reasoning and reteach states of one cycle.
	CurrentQuiz *Quiz `json:"current_quiz,omitempty"`

	// UserQuizAnswer is the student's most recent letter selection.
	UserQuizAnswer string `json:"user_quiz_answer,omitempty"`

	// ExplanationAttempts counts consecutive re-explanations for the
	// current quiz question. Reset to 0 whenever a new quiz is generated.
	ExplanationAttempts int `json:"explanation_attempts"`

	// QuizCount is the number of quiz cycles passed for the current
	// section. Reset to 0 when a new section is presented.
	QuizCount int `json:"quiz_count"`

	// SectionUnderstanding records an understanding score per section
	// index. Write-only telemetry; never read back to gate advancement.
	SectionUnderstanding map[int]float64 `json:"section_understanding"`

	// ConversationHistory is the append-only log of every message
	// exchanged within the session.
	ConversationHistory []Message `json:"conversation_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTutoringSession creates a session in the Introduction state with all
// counters zeroed. The store assigns the ID on Create if left empty.
func NewTutoringSession(documentID, fullText string, sections []Section) *TutoringSession {
	now := time.Now()
	return &TutoringSession{
		DocumentID:           documentID,
		FullText:             fullText,
		Sections:             sections,
		State:                StateIntroduction,
		SectionUnderstanding: make(map[int]float64),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// NewSessionID generates a fresh session identifier.
func NewSessionID() string {
	return "tutoring_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// AppendUser appends a user turn to the conversation history.
func (s *TutoringSession) AppendUser(content string) {
	s.ConversationHistory = append(s.ConversationHistory, Message{Role: RoleUser, Content: content})
}

// AppendAssistant appends an assistant turn to the conversation history.
func (s *TutoringSession) AppendAssistant(content string) {
	s.ConversationHistory = append(s.ConversationHistory, Message{Role: RoleAssistant, Content: content})
}

// Done reports whether every section has been completed.
func (s *TutoringSession) Done() bool {
	return s.CurrentSectionIndex >= len(s.Sections)
}

// CurrentSection returns the section being taught, or nil when the session
// has run past the last section.
func (s *TutoringSession) CurrentSection() *Section {
	if s.CurrentSectionIndex < 0 || s.CurrentSectionIndex >= len(s.Sections) {
		return nil
	}
	return &s.Sections[s.CurrentSectionIndex]
}

// Clone returns a deep copy of the session. Store drivers hand out clones so
// callers never share mutable state with the stored snapshot.
func (s *TutoringSession) Clone() *TutoringSession {
	c := *s
	c.Sections = slices.Clone(s.Sections)
	if s.CurrentQuiz != nil {
		q := *s.CurrentQuiz
		q.Options = slices.Clone(s.CurrentQuiz.Options)
		c.CurrentQuiz = &q
	}
	c.SectionUnderstanding = maps.Clone(s.SectionUnderstanding)
	c.ConversationHistory = slices.Clone(s.ConversationHistory)
	return &c
}
