package tutor

import "strings"

// Keyword sets for routing free-text student input. Matching is
// case-insensitive substring matching over the whole message, so "I think
// I'm ready" matches "ready". Coarse on purpose: the alternative is another
// LLM round trip per turn.
var (
	// moveOnKeywords end the Q&A phase and trigger a quiz.
	moveOnKeywords = []string{"next", "continue", "done", "finished", "move on", "ready", "quiz"}

	// comprehensionKeywords confirm understanding during reteach.
	comprehensionKeywords = []string{"yes", "yeah", "understand", "got it", "clear", "okay", "ok", "ready"}

	// moreQuestionsKeywords request another quiz cycle after a pass.
	// Checked before nextSectionKeywords so "ready for another question"
	// stays in the section.
	moreQuestionsKeywords = []string{"another", "more", "again", "quiz", "question", "test", "practice"}

	// nextSectionKeywords advance to the next section after a pass.
	nextSectionKeywords = []string{"next", "continue", "move on", "done", "finished", "ready", "proceed", "skip", "advance"}
)

// containsAny reports whether input contains any of the keywords,
// case-insensitively.
func containsAny(input string, keywords []string) bool {
	lower := strings.ToLower(strings.TrimSpace(input))
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// parseAnswerLetter extracts a quiz answer letter from student input. The
// first character of the trimmed, uppercased input must be A-D; anything
// else is an invalid answer and returns "".
func parseAnswerLetter(input string) string {
	up := strings.ToUpper(strings.TrimSpace(input))
	if up == "" {
		return ""
	}
	switch up[0] {
	case 'A', 'B', 'C', 'D':
		return string(up[0])
	}
	return ""
}
