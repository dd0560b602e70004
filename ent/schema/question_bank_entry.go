package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionBankEntry is a stored question.
type QuestionBankEntry struct {
	ent.Schema
}

func (QuestionBankEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.Text("question").
			NotEmpty(),
		field.Text("correct_answer"),
		field.String("type"),
		field.JSON("target_concepts", []string{}).
			Optional(),
		field.String("difficulty"),
		field.Int("times_used").
			Default(0),
		field.Float("success_rate").
			Default(0),
		field.Time("last_used").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Bool("active").
			Default(true),
		field.String("source").
			Comment("manual, generated or momentary"),
		field.JSON("options", []string{}).
			Optional(),
		field.JSON("media", []string{}).
			Optional(),
	}
}

func (QuestionBankEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active", "source"),
		index.Fields("created_at"),
		index.Fields("last_used"),
	}
}
