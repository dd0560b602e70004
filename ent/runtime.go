// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/polski/ent/answerevent"
	"github.com/abhisek/polski/ent/concept"
	"github.com/abhisek/polski/ent/conceptgroup"
	"github.com/abhisek/polski/ent/conceptprogress"
	"github.com/abhisek/polski/ent/courseconcept"
	"github.com/abhisek/polski/ent/llmrequestevent"
	"github.com/abhisek/polski/ent/questionbankentry"
	"github.com/abhisek/polski/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[0].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescMode is the schema descriptor for mode field.
	answereventDescMode := answereventFields[3].Descriptor()
	// answerevent.DefaultMode holds the default value on creation for the mode field.
	answerevent.DefaultMode = answereventDescMode.Default.(string)
	// answereventDescResponseTimeMs is the schema descriptor for response_time_ms field.
	answereventDescResponseTimeMs := answereventFields[5].Descriptor()
	// answerevent.DefaultResponseTimeMs holds the default value on creation for the response_time_ms field.
	answerevent.DefaultResponseTimeMs = answereventDescResponseTimeMs.Default.(int64)
	conceptFields := schema.Concept{}.Fields()
	_ = conceptFields
	// conceptDescName is the schema descriptor for name field.
	conceptDescName := conceptFields[1].Descriptor()
	// concept.NameValidator is a validator for the "name" field. It is called by the builders before save.
	concept.NameValidator = conceptDescName.Validators[0].(func(string) error)
	// conceptDescDescription is the schema descriptor for description field.
	conceptDescDescription := conceptFields[3].Descriptor()
	// concept.DefaultDescription holds the default value on creation for the description field.
	concept.DefaultDescription = conceptDescDescription.Default.(string)
	// conceptDescActive is the schema descriptor for active field.
	conceptDescActive := conceptFields[7].Descriptor()
	// concept.DefaultActive holds the default value on creation for the active field.
	concept.DefaultActive = conceptDescActive.Default.(bool)
	// conceptDescID is the schema descriptor for id field.
	conceptDescID := conceptFields[0].Descriptor()
	// concept.IDValidator is a validator for the "id" field. It is called by the builders before save.
	concept.IDValidator = conceptDescID.Validators[0].(func(string) error)
	conceptgroupFields := schema.ConceptGroup{}.Fields()
	_ = conceptgroupFields
	// conceptgroupDescName is the schema descriptor for name field.
	conceptgroupDescName := conceptgroupFields[1].Descriptor()
	// conceptgroup.NameValidator is a validator for the "name" field. It is called by the builders before save.
	conceptgroup.NameValidator = conceptgroupDescName.Validators[0].(func(string) error)
	// conceptgroupDescActive is the schema descriptor for active field.
	conceptgroupDescActive := conceptgroupFields[3].Descriptor()
	// conceptgroup.DefaultActive holds the default value on creation for the active field.
	conceptgroup.DefaultActive = conceptgroupDescActive.Default.(bool)
	// conceptgroupDescID is the schema descriptor for id field.
	conceptgroupDescID := conceptgroupFields[0].Descriptor()
	// conceptgroup.IDValidator is a validator for the "id" field. It is called by the builders before save.
	conceptgroup.IDValidator = conceptgroupDescID.Validators[0].(func(string) error)
	conceptprogressFields := schema.ConceptProgress{}.Fields()
	_ = conceptprogressFields
	// conceptprogressDescUserID is the schema descriptor for user_id field.
	conceptprogressDescUserID := conceptprogressFields[1].Descriptor()
	// conceptprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	conceptprogress.UserIDValidator = conceptprogressDescUserID.Validators[0].(func(string) error)
	// conceptprogressDescConceptID is the schema descriptor for concept_id field.
	conceptprogressDescConceptID := conceptprogressFields[2].Descriptor()
	// conceptprogress.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	conceptprogress.ConceptIDValidator = conceptprogressDescConceptID.Validators[0].(func(string) error)
	// conceptprogressDescMasteryLevel is the schema descriptor for mastery_level field.
	conceptprogressDescMasteryLevel := conceptprogressFields[3].Descriptor()
	// conceptprogress.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	conceptprogress.DefaultMasteryLevel = conceptprogressDescMasteryLevel.Default.(float64)
	// conceptprogressDescSuccessRate is the schema descriptor for success_rate field.
	conceptprogressDescSuccessRate := conceptprogressFields[4].Descriptor()
	// conceptprogress.DefaultSuccessRate holds the default value on creation for the success_rate field.
	conceptprogress.DefaultSuccessRate = conceptprogressDescSuccessRate.Default.(float64)
	// conceptprogressDescTotalAttempts is the schema descriptor for total_attempts field.
	conceptprogressDescTotalAttempts := conceptprogressFields[5].Descriptor()
	// conceptprogress.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	conceptprogress.DefaultTotalAttempts = conceptprogressDescTotalAttempts.Default.(int)
	// conceptprogressDescConsecutiveCorrect is the schema descriptor for consecutive_correct field.
	conceptprogressDescConsecutiveCorrect := conceptprogressFields[6].Descriptor()
	// conceptprogress.DefaultConsecutiveCorrect holds the default value on creation for the consecutive_correct field.
	conceptprogress.DefaultConsecutiveCorrect = conceptprogressDescConsecutiveCorrect.Default.(int)
	// conceptprogressDescActive is the schema descriptor for active field.
	conceptprogressDescActive := conceptprogressFields[11].Descriptor()
	// conceptprogress.DefaultActive holds the default value on creation for the active field.
	conceptprogress.DefaultActive = conceptprogressDescActive.Default.(bool)
	// conceptprogressDescID is the schema descriptor for id field.
	conceptprogressDescID := conceptprogressFields[0].Descriptor()
	// conceptprogress.IDValidator is a validator for the "id" field. It is called by the builders before save.
	conceptprogress.IDValidator = conceptprogressDescID.Validators[0].(func(string) error)
	courseconceptFields := schema.CourseConcept{}.Fields()
	_ = courseconceptFields
	// courseconceptDescCourseID is the schema descriptor for course_id field.
	courseconceptDescCourseID := courseconceptFields[0].Descriptor()
	// courseconcept.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	courseconcept.CourseIDValidator = courseconceptDescCourseID.Validators[0].(func(string) error)
	// courseconceptDescConceptID is the schema descriptor for concept_id field.
	courseconceptDescConceptID := courseconceptFields[1].Descriptor()
	// courseconcept.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	courseconcept.ConceptIDValidator = courseconceptDescConceptID.Validators[0].(func(string) error)
	// courseconceptDescConfidence is the schema descriptor for confidence field.
	courseconceptDescConfidence := courseconceptFields[2].Descriptor()
	// courseconcept.DefaultConfidence holds the default value on creation for the confidence field.
	courseconcept.DefaultConfidence = courseconceptDescConfidence.Default.(float64)
	// courseconceptDescActive is the schema descriptor for active field.
	courseconceptDescActive := courseconceptFields[3].Descriptor()
	// courseconcept.DefaultActive holds the default value on creation for the active field.
	courseconcept.DefaultActive = courseconceptDescActive.Default.(bool)
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
	questionbankentryFields := schema.QuestionBankEntry{}.Fields()
	_ = questionbankentryFields
	// questionbankentryDescQuestion is the schema descriptor for question field.
	questionbankentryDescQuestion := questionbankentryFields[1].Descriptor()
	// questionbankentry.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	questionbankentry.QuestionValidator = questionbankentryDescQuestion.Validators[0].(func(string) error)
	// questionbankentryDescTimesUsed is the schema descriptor for times_used field.
	questionbankentryDescTimesUsed := questionbankentryFields[6].Descriptor()
	// questionbankentry.DefaultTimesUsed holds the default value on creation for the times_used field.
	questionbankentry.DefaultTimesUsed = questionbankentryDescTimesUsed.Default.(int)
	// questionbankentryDescSuccessRate is the schema descriptor for success_rate field.
	questionbankentryDescSuccessRate := questionbankentryFields[7].Descriptor()
	// questionbankentry.DefaultSuccessRate holds the default value on creation for the success_rate field.
	questionbankentry.DefaultSuccessRate = questionbankentryDescSuccessRate.Default.(float64)
	// questionbankentryDescCreatedAt is the schema descriptor for created_at field.
	questionbankentryDescCreatedAt := questionbankentryFields[9].Descriptor()
	// questionbankentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionbankentry.DefaultCreatedAt = questionbankentryDescCreatedAt.Default.(func() time.Time)
	// questionbankentryDescActive is the schema descriptor for active field.
	questionbankentryDescActive := questionbankentryFields[10].Descriptor()
	// questionbankentry.DefaultActive holds the default value on creation for the active field.
	questionbankentry.DefaultActive = questionbankentryDescActive.Default.(bool)
	// questionbankentryDescID is the schema descriptor for id field.
	questionbankentryDescID := questionbankentryFields[0].Descriptor()
	// questionbankentry.IDValidator is a validator for the "id" field. It is called by the builders before save.
	questionbankentry.IDValidator = questionbankentryDescID.Validators[0].(func(string) error)
}
