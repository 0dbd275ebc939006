package tutor

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// maxSimplifyLevel bounds how far explanations are simplified as wrong
// answers accumulate.
const maxSimplifyLevel = 5

func (e *Engine) handleIntroduction(ctx context.Context, s *TutoringSession, _ string) *Response {
	return e.presentSection(ctx, s)
}

func (e *Engine) handleSectionReading(ctx context.Context, s *TutoringSession, _ string) *Response {
	return e.presentSection(ctx, s)
}

// handleSectionQnA answers questions about the current section, or
// starts a quiz once the student signals they're ready.
func (e *Engine) handleSectionQnA(ctx context.Context, s *TutoringSession, input string) *Response {
	if containsAny(input, moveOnKeywords) {
		return e.generateQuiz(ctx, s)
	}

	_, title := sectionLabel(s)
	text := sanitizeSectionText(s.Sections, s.CurrentSectionIndex, s.FullText)

	msg := e.complete(ctx, purposeQnA, buildQnAPrompt(title, text, input))
	if msg == "" {
		msg = qnaFallback
	}
	return e.respond(s, msg)
}

// handleQuizQuestion evaluates a quiz answer. A correct pick moves to
// reasoning; a wrong one explains the correct option and re-poses the
// question, simplifying further with each miss.
func (e *Engine) handleQuizQuestion(ctx context.Context, s *TutoringSession, input string) *Response {
	q := s.CurrentQuiz
	if q == nil {
		return e.generateQuiz(ctx, s)
	}

	letter := parseAnswerLetter(input)
	if letter == "" {
		return e.respond(s, invalidAnswerMessage)
	}
	s.UserQuizAnswer = letter

	if letter == q.CorrectLetter {
		e.appendQuizEvent(ctx, s, letter, true, s.ExplanationAttempts+1)
		s.State = StateQuizReasoning
		resp := e.respond(s, reasoningAsk(letter))
		resp.IsCorrect = boolPtr(true)
		return resp
	}

	s.ExplanationAttempts++
	e.appendQuizEvent(ctx, s, letter, false, s.ExplanationAttempts)

	level := min(s.ExplanationAttempts, maxSimplifyLevel)
	text := sanitizeSectionText(s.Sections, s.CurrentSectionIndex, s.FullText)
	msg := e.complete(ctx, purposeExplain, buildWrongAnswerPrompt(level, q, letter, text))
	if msg == "" {
		msg = wrongAnswerFallback(q)
	}
	resp := e.respond(s, msg)
	resp.IsCorrect = boolPtr(false)
	return resp
}

// handleQuizReasoning judges the student's explanation of a correct
// answer. Sound reasoning banks the quiz; a lucky guess goes to
// reteaching instead.
func (e *Engine) handleQuizReasoning(ctx context.Context, s *TutoringSession, input string) *Response {
	q := s.CurrentQuiz
	if q == nil {
		return e.generateQuiz(ctx, s)
	}

	text := sanitizeSectionText(s.Sections, s.CurrentSectionIndex, s.FullText)
	raw := e.complete(ctx, purposeEvaluate, buildReasoningPrompt(q, s.UserQuizAnswer, input, text))
	correct, feedback := parseReasoningEvaluation(raw)

	if !correct {
		s.State = StateQuizReteach
		return e.respond(s, feedback+"\n\n"+reteachInvite)
	}

	s.QuizCount++
	s.SectionUnderstanding[s.CurrentSectionIndex] = min(1.0, float64(s.QuizCount)*0.33)
	s.State = StateQuizComplete

	resp := e.respond(s, feedback+"\n\n"+quizCompleteOffer)
	resp.CanSkipToNext = true
	return resp
}

// handleQuizReteach re-explains until the student signals the concept
// clicked, then re-poses the same question.
func (e *Engine) handleQuizReteach(ctx context.Context, s *TutoringSession, input string) *Response {
	q := s.CurrentQuiz
	if q == nil {
		return e.generateQuiz(ctx, s)
	}

	if containsAny(input, comprehensionKeywords) {
		s.UserQuizAnswer = ""
		s.State = StateQuizQuestion
		return e.respond(s, formatQuizMessage(q, quizRetryIntro))
	}

	s.ExplanationAttempts++
	level := min(s.ExplanationAttempts, maxSimplifyLevel)
	text := sanitizeSectionText(s.Sections, s.CurrentSectionIndex, s.FullText)
	msg := e.complete(ctx, purposeReteach, buildReteachPrompt(level, q, text))
	if msg == "" {
		msg = reteachFallback(q)
	}
	return e.respond(s, msg)
}

// handleQuizComplete routes between another quiz on this section and
// moving on. "quiz" appears in both keyword sets; asking for more
// questions wins.
func (e *Engine) handleQuizComplete(ctx context.Context, s *TutoringSession, input string) *Response {
	if containsAny(input, moreQuestionsKeywords) {
		return e.generateQuiz(ctx, s)
	}
	if containsAny(input, nextSectionKeywords) {
		return e.completeSection(ctx, s)
	}

	resp := e.respond(s, quizCompleteClarify)
	resp.CanSkipToNext = true
	return resp
}

func (e *Engine) handleDocumentComplete(_ context.Context, s *TutoringSession, _ string) *Response {
	return e.respond(s, documentCompleteAck)
}

// presentSection generates the summary for the current section and
// opens it for questions. A document with no sections left completes
// instead.
func (e *Engine) presentSection(ctx context.Context, s *TutoringSession) *Response {
	if s.Done() {
		return e.completeDocument(ctx, s)
	}

	s.QuizCount = 0
	s.CurrentQuiz = nil
	s.UserQuizAnswer = ""

	number, title := sectionLabel(s)
	text := sanitizeSectionText(s.Sections, s.CurrentSectionIndex, s.FullText)

	msg := e.complete(ctx, purposeSection, buildSectionPrompt(number, title, text))
	if utf8.RuneCountInString(msg) < minUsableChars {
		msg = sectionFallback(number, title, text)
	}

	s.State = StateSectionQnA

	resp := e.respond(s, msg)
	resp.SectionTitle = title
	resp.SectionText = text
	resp.HighlightSection = true
	return resp
}

// generateQuiz creates a fresh quiz for the current section and poses
// it. The wrong-answer counter starts over with the new quiz.
func (e *Engine) generateQuiz(ctx context.Context, s *TutoringSession) *Response {
	_, title := sectionLabel(s)
	text := sanitizeSectionText(s.Sections, s.CurrentSectionIndex, s.FullText)

	raw := e.complete(ctx, purposeQuizGen, buildQuizPrompt(title, text))
	quiz, ok := parseQuiz(raw)
	if !ok {
		quiz = placeholderQuiz(title)
	}

	s.CurrentQuiz = quiz
	s.UserQuizAnswer = ""
	s.ExplanationAttempts = 0
	s.State = StateQuizQuestion

	return e.respond(s, formatQuizMessage(quiz, quizIntro))
}

// completeSection marks the current section fully understood and moves
// to the next one, or completes the document if none remain.
func (e *Engine) completeSection(ctx context.Context, s *TutoringSession) *Response {
	_, title := sectionLabel(s)
	s.SectionUnderstanding[s.CurrentSectionIndex] = 1.0
	s.CurrentSectionIndex++
	s.ExplanationAttempts = 0

	if s.Done() {
		return e.completeDocument(ctx, s)
	}

	handoff := sectionHandoff(title)
	resp := e.presentSection(ctx, s)
	resp.Message = handoff + "\n\n" + resp.Message
	return resp
}

// completeDocument closes out the session with a congratulations.
func (e *Engine) completeDocument(ctx context.Context, s *TutoringSession) *Response {
	s.State = StateDocumentComplete

	msg := e.complete(ctx, purposeComplete, buildCompletionPrompt(len(s.Sections)))
	if msg == "" {
		msg = completionFallback(len(s.Sections))
	}
	return e.respond(s, msg)
}

// sectionLabel returns the 1-based section number and display title,
// falling back to "Section N" for untitled sections.
func sectionLabel(s *TutoringSession) (int, string) {
	number := s.CurrentSectionIndex + 1
	title := fmt.Sprintf("Section %d", number)
	if sec := s.CurrentSection(); sec != nil && sec.Title != "" {
		title = sec.Title
	}
	return number, title
}

func boolPtr(b bool) *bool { return &b }
