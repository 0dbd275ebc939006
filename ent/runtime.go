// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/docent/ent/documentevent"
	"github.com/abhisek/docent/ent/llmrequestevent"
	"github.com/abhisek/docent/ent/quizevent"
	"github.com/abhisek/docent/ent/schema"
	"github.com/abhisek/docent/ent/snapshot"
	"github.com/abhisek/docent/ent/tutoringevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documenteventMixin := schema.DocumentEvent{}.Mixin()
	documenteventMixinFields0 := documenteventMixin[0].Fields()
	_ = documenteventMixinFields0
	documenteventFields := schema.DocumentEvent{}.Fields()
	_ = documenteventFields
	// documenteventDescTimestamp is the schema descriptor for timestamp field.
	documenteventDescTimestamp := documenteventMixinFields0[1].Descriptor()
	// documentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	documentevent.DefaultTimestamp = documenteventDescTimestamp.Default.(func() time.Time)
	// documenteventDescDocumentID is the schema descriptor for document_id field.
	documenteventDescDocumentID := documenteventFields[0].Descriptor()
	// documentevent.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	documentevent.DocumentIDValidator = documenteventDescDocumentID.Validators[0].(func(string) error)
	// documenteventDescAction is the schema descriptor for action field.
	documenteventDescAction := documenteventFields[1].Descriptor()
	// documentevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	documentevent.ActionValidator = documenteventDescAction.Validators[0].(func(string) error)
	// documenteventDescTitle is the schema descriptor for title field.
	documenteventDescTitle := documenteventFields[2].Descriptor()
	// documentevent.DefaultTitle holds the default value on creation for the title field.
	documentevent.DefaultTitle = documenteventDescTitle.Default.(string)
	// documenteventDescSourceType is the schema descriptor for source_type field.
	documenteventDescSourceType := documenteventFields[3].Descriptor()
	// documentevent.DefaultSourceType holds the default value on creation for the source_type field.
	documentevent.DefaultSourceType = documenteventDescSourceType.Default.(string)
	// documenteventDescSectionCount is the schema descriptor for section_count field.
	documenteventDescSectionCount := documenteventFields[4].Descriptor()
	// documentevent.DefaultSectionCount holds the default value on creation for the section_count field.
	documentevent.DefaultSectionCount = documenteventDescSectionCount.Default.(int)
	// documenteventDescChunkCount is the schema descriptor for chunk_count field.
	documenteventDescChunkCount := documenteventFields[5].Descriptor()
	// documentevent.DefaultChunkCount holds the default value on creation for the chunk_count field.
	documentevent.DefaultChunkCount = documenteventDescChunkCount.Default.(int)
	// documenteventDescCharCount is the schema descriptor for char_count field.
	documenteventDescCharCount := documenteventFields[6].Descriptor()
	// documentevent.DefaultCharCount holds the default value on creation for the char_count field.
	documentevent.DefaultCharCount = documenteventDescCharCount.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescSessionID is the schema descriptor for session_id field.
	quizeventDescSessionID := quizeventFields[0].Descriptor()
	// quizevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizevent.SessionIDValidator = quizeventDescSessionID.Validators[0].(func(string) error)
	// quizeventDescDocumentID is the schema descriptor for document_id field.
	quizeventDescDocumentID := quizeventFields[1].Descriptor()
	// quizevent.DefaultDocumentID holds the default value on creation for the document_id field.
	quizevent.DefaultDocumentID = quizeventDescDocumentID.Default.(string)
	// quizeventDescQuestionText is the schema descriptor for question_text field.
	quizeventDescQuestionText := quizeventFields[3].Descriptor()
	// quizevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	quizevent.QuestionTextValidator = quizeventDescQuestionText.Validators[0].(func(string) error)
	// quizeventDescCorrectLetter is the schema descriptor for correct_letter field.
	quizeventDescCorrectLetter := quizeventFields[4].Descriptor()
	// quizevent.CorrectLetterValidator is a validator for the "correct_letter" field. It is called by the builders before save.
	quizevent.CorrectLetterValidator = quizeventDescCorrectLetter.Validators[0].(func(string) error)
	// quizeventDescUserAnswer is the schema descriptor for user_answer field.
	quizeventDescUserAnswer := quizeventFields[5].Descriptor()
	// quizevent.UserAnswerValidator is a validator for the "user_answer" field. It is called by the builders before save.
	quizevent.UserAnswerValidator = quizeventDescUserAnswer.Validators[0].(func(string) error)
	// quizeventDescAttempt is the schema descriptor for attempt field.
	quizeventDescAttempt := quizeventFields[7].Descriptor()
	// quizevent.DefaultAttempt holds the default value on creation for the attempt field.
	quizevent.DefaultAttempt = quizeventDescAttempt.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	tutoringeventMixin := schema.TutoringEvent{}.Mixin()
	tutoringeventMixinFields0 := tutoringeventMixin[0].Fields()
	_ = tutoringeventMixinFields0
	tutoringeventFields := schema.TutoringEvent{}.Fields()
	_ = tutoringeventFields
	// tutoringeventDescTimestamp is the schema descriptor for timestamp field.
	tutoringeventDescTimestamp := tutoringeventMixinFields0[1].Descriptor()
	// tutoringevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	tutoringevent.DefaultTimestamp = tutoringeventDescTimestamp.Default.(func() time.Time)
	// tutoringeventDescSessionID is the schema descriptor for session_id field.
	tutoringeventDescSessionID := tutoringeventFields[0].Descriptor()
	// tutoringevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	tutoringevent.SessionIDValidator = tutoringeventDescSessionID.Validators[0].(func(string) error)
	// tutoringeventDescDocumentID is the schema descriptor for document_id field.
	tutoringeventDescDocumentID := tutoringeventFields[1].Descriptor()
	// tutoringevent.DefaultDocumentID holds the default value on creation for the document_id field.
	tutoringevent.DefaultDocumentID = tutoringeventDescDocumentID.Default.(string)
	// tutoringeventDescAction is the schema descriptor for action field.
	tutoringeventDescAction := tutoringeventFields[2].Descriptor()
	// tutoringevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	tutoringevent.ActionValidator = tutoringeventDescAction.Validators[0].(func(string) error)
	// tutoringeventDescStateFrom is the schema descriptor for state_from field.
	tutoringeventDescStateFrom := tutoringeventFields[3].Descriptor()
	// tutoringevent.DefaultStateFrom holds the default value on creation for the state_from field.
	tutoringevent.DefaultStateFrom = tutoringeventDescStateFrom.Default.(string)
	// tutoringeventDescStateTo is the schema descriptor for state_to field.
	tutoringeventDescStateTo := tutoringeventFields[4].Descriptor()
	// tutoringevent.DefaultStateTo holds the default value on creation for the state_to field.
	tutoringevent.DefaultStateTo = tutoringeventDescStateTo.Default.(string)
	// tutoringeventDescSectionIndex is the schema descriptor for section_index field.
	tutoringeventDescSectionIndex := tutoringeventFields[5].Descriptor()
	// tutoringevent.DefaultSectionIndex holds the default value on creation for the section_index field.
	tutoringevent.DefaultSectionIndex = tutoringeventDescSectionIndex.Default.(int)
}
