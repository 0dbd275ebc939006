package tutor

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// quizOptionCount is the number of options every quiz carries. Parsing and
// fallback both guarantee it, so downstream code may index options freely.
const quizOptionCount = 4

// parseQuiz extracts a quiz from generated text in the line grammar
//
//	QUESTION: <text>
//	A) <option> .. D) <option>
//	CORRECT: <letter>
//
// Returns ok=false when the text does not yield a question, four options and
// a valid correct letter; callers substitute placeholderQuiz then.
func parseQuiz(raw string) (*Quiz, bool) {
	var (
		question string
		options  []string
		correct  string
	)

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "QUESTION:"):
			question = strings.TrimSpace(strings.TrimPrefix(line, "QUESTION:"))
		case strings.HasPrefix(line, "CORRECT:"):
			correct = normalizeLetter(strings.TrimPrefix(line, "CORRECT:"))
		case isOptionLine(line):
			options = append(options, strings.TrimSpace(line[3:]))
		}
	}

	if question == "" || len(options) < quizOptionCount || correct == "" {
		return nil, false
	}

	return &Quiz{
		Question:      question,
		Options:       options[:quizOptionCount],
		CorrectLetter: correct,
	}, true
}

// isOptionLine matches lines shaped like "B) some text": an uppercase first
// character followed by ") ".
func isOptionLine(line string) bool {
	if len(line) < 3 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(r) && line[1:3] == ") "
}

// normalizeLetter reduces a CORRECT: remainder to a single letter A-D, or ""
// when the remainder names no valid letter.
func normalizeLetter(s string) string {
	up := strings.ToUpper(strings.TrimSpace(s))
	if up == "" {
		return ""
	}
	switch up[0] {
	case 'A', 'B', 'C', 'D':
		return string(up[0])
	}
	return ""
}

// placeholderQuiz is the total fallback when generation or parsing fails.
// It never blocks the flow: the student sees a generic question and the
// session keeps moving.
func placeholderQuiz(sectionTitle string) *Quiz {
	return &Quiz{
		Question:      fmt.Sprintf("What is a key concept from %s?", sectionTitle),
		Options:       []string{"Option A", "Option B", "Option C", "Option D"},
		CorrectLetter: "A",
	}
}

// optionLetter returns the display letter for option i. Letters are
// positional, never taken from parsed text.
func optionLetter(i int) string {
	return string(rune('A' + i))
}

// correctOptionText returns the text of the quiz's correct option.
func correctOptionText(q *Quiz) string {
	if q == nil || q.CorrectLetter == "" {
		return ""
	}
	idx := int(q.CorrectLetter[0] - 'A')
	if idx < 0 || idx >= len(q.Options) {
		return ""
	}
	return q.Options[idx]
}

// formatQuizMessage renders a quiz as a student-facing message, opening with
// intro and closing with the answer instruction.
func formatQuizMessage(q *Quiz, intro string) string {
	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n\n")
	b.WriteString(q.Question)
	b.WriteString("\n\n")
	for i, opt := range q.Options {
		b.WriteString(optionLetter(i))
		b.WriteString(") ")
		b.WriteString(opt)
		b.WriteString("\n")
	}
	b.WriteString("\nPlease select your answer (A, B, C, or D).")
	return b.String()
}
