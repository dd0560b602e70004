package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConceptProgress is a learner's spaced-repetition state for one concept.
type ConceptProgress struct {
	ent.Schema
}

func (ConceptProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("concept_id").
			NotEmpty(),
		field.Float("mastery_level").
			Default(0),
		field.Float("success_rate").
			Default(0),
		field.Int("total_attempts").
			Default(0),
		field.Int("consecutive_correct").
			Default(0),
		field.Float("easiness_factor"),
		field.Int("interval_days"),
		field.Time("last_practiced").
			Optional().
			Nillable(),
		field.Time("next_review"),
		field.Bool("active").
			Default(true),
	}
}

func (ConceptProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "concept_id").
			Unique(),
		index.Fields("user_id", "next_review"),
	}
}
