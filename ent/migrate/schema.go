// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "concepts", Type: field.TypeJSON, Nullable: true},
		{Name: "mode", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "response_time_ms", Type: field.TypeInt64, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
		},
	}
	// ConceptsColumns holds the columns for the "concepts" table.
	ConceptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "examples", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// ConceptsTable holds the schema information for the "concepts" table.
	ConceptsTable = &schema.Table{
		Name:       "concepts",
		Columns:    ConceptsColumns,
		PrimaryKey: []*schema.Column{ConceptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "concept_name",
				Unique:  false,
				Columns: []*schema.Column{ConceptsColumns[1]},
			},
			{
				Name:    "concept_category_difficulty",
				Unique:  false,
				Columns: []*schema.Column{ConceptsColumns[2], ConceptsColumns[5]},
			},
		},
	}
	// ConceptGroupsColumns holds the columns for the "concept_groups" table.
	ConceptGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "member_concepts", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// ConceptGroupsTable holds the schema information for the "concept_groups" table.
	ConceptGroupsTable = &schema.Table{
		Name:       "concept_groups",
		Columns:    ConceptGroupsColumns,
		PrimaryKey: []*schema.Column{ConceptGroupsColumns[0]},
	}
	// ConceptProgressesColumns holds the columns for the "concept_progresses" table.
	ConceptProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "mastery_level", Type: field.TypeFloat64, Default: 0},
		{Name: "success_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "consecutive_correct", Type: field.TypeInt, Default: 0},
		{Name: "easiness_factor", Type: field.TypeFloat64},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "last_practiced", Type: field.TypeTime, Nullable: true},
		{Name: "next_review", Type: field.TypeTime},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// ConceptProgressesTable holds the schema information for the "concept_progresses" table.
	ConceptProgressesTable = &schema.Table{
		Name:       "concept_progresses",
		Columns:    ConceptProgressesColumns,
		PrimaryKey: []*schema.Column{ConceptProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conceptprogress_user_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{ConceptProgressesColumns[1], ConceptProgressesColumns[2]},
			},
			{
				Name:    "conceptprogress_user_id_next_review",
				Unique:  false,
				Columns: []*schema.Column{ConceptProgressesColumns[1], ConceptProgressesColumns[10]},
			},
		},
	}
	// CourseConceptsColumns holds the columns for the "course_concepts" table.
	CourseConceptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// CourseConceptsTable holds the schema information for the "course_concepts" table.
	CourseConceptsTable = &schema.Table{
		Name:       "course_concepts",
		Columns:    CourseConceptsColumns,
		PrimaryKey: []*schema.Column{CourseConceptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "courseconcept_course_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{CourseConceptsColumns[1], CourseConceptsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_model",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
		},
	}
	// QuestionBankEntriesColumns holds the columns for the "question_bank_entries" table.
	QuestionBankEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "correct_answer", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeString},
		{Name: "target_concepts", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "times_used", Type: field.TypeInt, Default: 0},
		{Name: "success_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "last_used", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "source", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "media", Type: field.TypeJSON, Nullable: true},
	}
	// QuestionBankEntriesTable holds the schema information for the "question_bank_entries" table.
	QuestionBankEntriesTable = &schema.Table{
		Name:       "question_bank_entries",
		Columns:    QuestionBankEntriesColumns,
		PrimaryKey: []*schema.Column{QuestionBankEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionbankentry_active_source",
				Unique:  false,
				Columns: []*schema.Column{QuestionBankEntriesColumns[10], QuestionBankEntriesColumns[11]},
			},
			{
				Name:    "questionbankentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionBankEntriesColumns[9]},
			},
			{
				Name:    "questionbankentry_last_used",
				Unique:  false,
				Columns: []*schema.Column{QuestionBankEntriesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		ConceptsTable,
		ConceptGroupsTable,
		ConceptProgressesTable,
		CourseConceptsTable,
		LlmRequestEventsTable,
		QuestionBankEntriesTable,
	}
)

func init() {
}
