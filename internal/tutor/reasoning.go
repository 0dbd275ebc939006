package tutor

import "strings"

// reasoningFallback covers evaluations that yield no usable feedback.
const reasoningFallback = "That's solid thinking! You've got a good grasp of this concept."

// parseReasoningEvaluation extracts a verdict and feedback from generated
// text in the grammar
//
//	REASONING_EVALUATION: CORRECT|INCORRECT
//	FEEDBACK: <text, may continue on following lines>
//
// The verdict token is matched case-insensitively. When no feedback can be
// extracted the student is given the benefit of the doubt: the verdict
// defaults to correct with generic encouragement, so a flaky evaluator
// never blocks progress.
func parseReasoningEvaluation(raw string) (correct bool, feedback string) {
	correct = true
	var parts []string
	capturing := false

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		upper := strings.ToUpper(line)

		if idx := strings.Index(upper, "REASONING_EVALUATION:"); idx >= 0 {
			verdict := upper[idx+len("REASONING_EVALUATION:"):]
			if strings.Contains(verdict, "INCORRECT") {
				correct = false
			} else if strings.Contains(verdict, "CORRECT") {
				correct = true
			}
			capturing = false
			continue
		}

		if idx := strings.Index(line, "FEEDBACK:"); idx >= 0 {
			part := strings.TrimSpace(line[idx+len("FEEDBACK:"):])
			if part != "" {
				parts = append(parts, part)
			}
			capturing = true
			continue
		}

		if capturing {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
	}

	feedback = strings.Join(parts, " ")
	if feedback == "" {
		return true, reasoningFallback
	}
	return correct, feedback
}
