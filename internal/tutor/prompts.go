package tutor

import (
	"fmt"
	"strings"
)

// evalContextChars caps the section text included in evaluation and
// explanation prompts, which carry more surrounding material than the
// summary prompt.
const evalContextChars = 1500

// closingQuestion ends every section summary so the student always knows
// the two ways forward.
const closingQuestion = "Do you have any questions, or are you ready for a quiz?"

// buildIntroductionPrompt asks for the session-opening welcome.
func buildIntroductionPrompt(sectionCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an excellent, patient, and adaptive tutor. A student is about to start learning from a document that has %d sections.\n\n", sectionCount)
	b.WriteString("Create a warm, encouraging introduction message (2-3 sentences) that:\n")
	b.WriteString("- Welcomes them warmly\n")
	b.WriteString("- Explains that you'll go through the document section by section\n")
	b.WriteString("- Mentions they can ask questions anytime\n")
	b.WriteString("- Explains there will be quizzes after each section to check understanding\n")
	b.WriteString("- Encourages them with enthusiasm\n\n")
	b.WriteString("Be friendly and conversational.")
	return b.String()
}

// introductionFallback is the canned welcome used when generation fails.
func introductionFallback() string {
	return "Welcome! I'm excited to help you dive into this document. We'll go through it section by section, and you can ask me questions whenever you like. After each section, we'll have a quick quiz to make sure everything's clear. Let's get started. You're going to do great!"
}

// sectionPreamble is the fixed opening of every section summary.
func sectionPreamble(number int, title string) string {
	return fmt.Sprintf("Let's dive into Section %d: %s.", number, title)
}

// buildSectionPrompt asks for a summary of the section, pinned between the
// fixed preamble and the fixed closing question.
func buildSectionPrompt(number int, title, text string) string {
	var b strings.Builder
	b.WriteString("You are a great tutor walking a student through a document one section at a time.\n\n")
	fmt.Fprintf(&b, "Section %d: %s\n\n", number, title)
	fmt.Fprintf(&b, "Content:\n%s\n\n", text)
	b.WriteString("Summarize this section for the student in 3-5 sentences. Explain the key ideas naturally, as if teaching in person. Don't just repeat the text. Explain it the way a good teacher would.\n")
	fmt.Fprintf(&b, "Start your response with exactly: \"%s\"\n", sectionPreamble(number, title))
	fmt.Fprintf(&b, "End your response with exactly: \"%s\"", closingQuestion)
	return b.String()
}

// sectionFallback renders a deterministic section presentation from a text
// excerpt when generation fails or comes back too short.
func sectionFallback(number int, title, text string) string {
	excerpt := text
	if len(excerpt) > 500 {
		excerpt = truncateRunes(excerpt, 500) + "..."
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s", sectionPreamble(number, title), excerpt, closingQuestion)
}

// buildQnAPrompt asks for an answer to a student question, constrained to
// the current section so the tutor never teaches ahead.
func buildQnAPrompt(title, text, question string) string {
	var b strings.Builder
	b.WriteString("You are a tutor helping a student understand a specific section of a document.\n\n")
	b.WriteString("IMPORTANT RULES:\n")
	b.WriteString("1. ONLY answer based on the current section content provided below\n")
	b.WriteString("2. DO NOT introduce any new information not in this section\n")
	fmt.Fprintf(&b, "3. If the question is about something not covered in this section, politely say \"That's a great question! However, we haven't covered that yet in this section. Let's focus on understanding %s first. What would you like to know about this section?\"\n", title)
	b.WriteString("4. If the question is about the current section, answer clearly and helpfully\n")
	b.WriteString("5. Keep responses concise (2-3 sentences)\n\n")
	fmt.Fprintf(&b, "Current Section:\nTitle: %s\n\nContent:\n%s\n\n", title, text)
	fmt.Fprintf(&b, "Student's question: %s\n\n", question)
	b.WriteString("Provide your response:")
	return b.String()
}

// qnaFallback covers a failed question-answering completion.
const qnaFallback = "I'd be happy to help! Could you rephrase your question about this section?"

// buildQuizPrompt asks for one multiple-choice question in the strict line
// grammar parseQuiz expects.
func buildQuizPrompt(title, text string) string {
	var b strings.Builder
	b.WriteString("You are a tutor creating a knowledge-based quiz question to test understanding of a section.\n\n")
	fmt.Fprintf(&b, "Section Title: %s\n\n", title)
	fmt.Fprintf(&b, "Section Content:\n%s\n\n", text)
	b.WriteString("Create ONE multiple-choice question (with 4 options) that tests if the student actually understood the key concepts from this section. The question should be:\n")
	b.WriteString("- Clear and specific\n")
	b.WriteString("- Test actual understanding, not just memorization\n")
	b.WriteString("- Have one clearly correct answer\n")
	b.WriteString("- Have 3 plausible but incorrect distractors\n\n")
	b.WriteString("Format your response EXACTLY like this:\n")
	b.WriteString("QUESTION: [the question text]\n")
	b.WriteString("A) [option A]\n")
	b.WriteString("B) [option B]\n")
	b.WriteString("C) [option C]\n")
	b.WriteString("D) [option D]\n")
	b.WriteString("CORRECT: [the letter of the correct answer, e.g., B]\n\n")
	b.WriteString("Make sure the question tests understanding, not just recall.")
	return b.String()
}

// buildWrongAnswerPrompt asks for an explanation of the correct option after
// a wrong answer. Level runs 1 (normal) to 5 (simplest possible language).
func buildWrongAnswerPrompt(level int, q *Quiz, userAnswer, sectionText string) string {
	var b strings.Builder
	b.WriteString("You are a tutor helping a student who answered a quiz question incorrectly.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\n", q.Question)
	writeOptions(&b, q)
	fmt.Fprintf(&b, "Correct answer: %s) %s\n", q.CorrectLetter, correctOptionText(q))
	fmt.Fprintf(&b, "Student's answer: %s\n\n", userAnswer)
	fmt.Fprintf(&b, "Section content:\n%s\n\n", truncateRunes(sectionText, evalContextChars))
	fmt.Fprintf(&b, "Explain why %s is the correct answer at complexity level %d, where level 1 is a normal explanation and level 5 uses the simplest possible language with short sentences and everyday words.\n", q.CorrectLetter, level)
	b.WriteString("Point out where in the section content the answer can be found. Be encouraging, never discouraging.\n")
	fmt.Fprintf(&b, "End your response by restating the original question exactly so the student can try again:\n%s", q.Question)
	return b.String()
}

// wrongAnswerFallback is the deterministic explanation when generation
// fails: names the correct option and re-poses the question.
func wrongAnswerFallback(q *Quiz) string {
	return fmt.Sprintf("Not quite. The correct answer is %s) %s. You can find this in the section we just went through. Let's try again:\n\n%s",
		q.CorrectLetter, correctOptionText(q), q.Question)
}

// buildReasoningPrompt asks for a reasoning evaluation in the grammar
// parseReasoningEvaluation expects.
func buildReasoningPrompt(q *Quiz, userAnswer, reasoning, sectionText string) string {
	var b strings.Builder
	b.WriteString("You are a tutor evaluating a student's reasoning for a quiz answer they selected correctly.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\n", q.Question)
	writeOptions(&b, q)
	fmt.Fprintf(&b, "Correct answer: %s) %s\n", q.CorrectLetter, correctOptionText(q))
	fmt.Fprintf(&b, "Student's answer: %s\n", userAnswer)
	fmt.Fprintf(&b, "Student's reasoning: %s\n\n", reasoning)
	fmt.Fprintf(&b, "Section content (for context):\n%s\n\n", truncateRunes(sectionText, evalContextChars))
	b.WriteString("Decide whether the reasoning shows genuine understanding of why the answer is correct, or whether the student guessed or reasoned from a misconception. The goal is LEARNING, not just correctness.\n\n")
	b.WriteString("Format your response EXACTLY like this:\n")
	b.WriteString("REASONING_EVALUATION: [CORRECT or INCORRECT]\n")
	b.WriteString("FEEDBACK: [2-3 encouraging sentences explaining your judgment to the student]")
	return b.String()
}

// buildReteachPrompt asks for a progressively simpler re-explanation during
// reteach. Level runs 1 (normal) to 5 (simplest possible language).
func buildReteachPrompt(level int, q *Quiz, sectionText string) string {
	var b strings.Builder
	b.WriteString("You are a tutor re-explaining a concept a student is struggling with.\n\n")
	fmt.Fprintf(&b, "Question being studied: %s\n", q.Question)
	fmt.Fprintf(&b, "Correct answer: %s) %s\n\n", q.CorrectLetter, correctOptionText(q))
	fmt.Fprintf(&b, "Section content:\n%s\n\n", truncateRunes(sectionText, evalContextChars))
	fmt.Fprintf(&b, "The student still doesn't understand. Explain the concept again at complexity level %d, where level 1 is a normal explanation and level 5 uses the simplest possible language with short sentences and everyday words. Use a different angle or analogy than before.\n", level)
	b.WriteString("End by asking if it makes sense now.")
	return b.String()
}

// reteachFallback is the deterministic simplification when generation fails.
func reteachFallback(q *Quiz) string {
	return fmt.Sprintf("Let's take it step by step. The key idea is %s) %s. Read that part of the section once more, and tell me when it makes sense.",
		q.CorrectLetter, correctOptionText(q))
}

// buildCompletionPrompt asks for the end-of-document congratulations.
func buildCompletionPrompt(sectionCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a tutor congratulating a student who just completed going through all %d sections of a document with quizzes.\n\n", sectionCount)
	b.WriteString("Create an encouraging completion message (2-3 sentences) that:\n")
	b.WriteString("- Congratulates them warmly\n")
	b.WriteString("- Acknowledges their effort and learning\n")
	b.WriteString("- Encourages them to keep learning\n")
	b.WriteString("- Is enthusiastic and positive\n\n")
	b.WriteString("Be genuine and celebratory.")
	return b.String()
}

// completionFallback is the canned congratulations when generation fails.
func completionFallback(sectionCount int) string {
	return fmt.Sprintf("Congratulations! You've completed all %d sections. You did an amazing job! Keep up the great work and continue learning!", sectionCount)
}

// writeOptions renders the quiz options as lettered lines.
func writeOptions(b *strings.Builder, q *Quiz) {
	b.WriteString("Options:\n")
	for i, opt := range q.Options {
		fmt.Fprintf(b, "%s) %s\n", optionLetter(i), opt)
	}
	b.WriteString("\n")
}

// Student-facing fixed strings used by the handlers.
const (
	// invalidAnswerMessage re-prompts for a parseable quiz answer.
	invalidAnswerMessage = "Please provide your answer as a single letter: A, B, C, or D."

	// quizIntro opens the first presentation of a quiz question.
	quizIntro = "Great! Now let's see how well you understood this section. Here's a question for you:"

	// quizRetryIntro opens a re-presentation after reteach.
	quizRetryIntro = "Great! Let's try that question again:"

	// quizCompleteOffer follows reasoning feedback after a passed cycle.
	quizCompleteOffer = "Would you like to try another question on this section, or are you ready to move on to the next section?"

	// quizCompleteClarify re-prompts when input in QuizComplete matches
	// neither choice.
	quizCompleteClarify = "Would you like another quiz question on this section, or are you ready to move on? You can say \"another question\" or \"next section\"."

	// reteachInvite follows reasoning feedback when the reasoning missed.
	reteachInvite = "Let's take a moment to make sure this is clear. Tell me when it makes sense, and we'll try the question again."

	// documentCompleteAck answers any message after the session finished.
	documentCompleteAck = "The tutoring session has been completed. Great job!"
)

// reasoningAsk invites the student to explain a correct selection.
func reasoningAsk(letter string) string {
	return fmt.Sprintf("You selected %s. That's great! Now, I'd like to understand your thinking. Can you explain why you chose %s? What was your reasoning?", letter, letter)
}

// sectionHandoff bridges a completed section into the next one's
// presentation.
func sectionHandoff(title string) string {
	return fmt.Sprintf("Great work on %s! Let's keep going.", title)
}
