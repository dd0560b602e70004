package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CourseConcept maps a concept to a course with an extraction confidence.
type CourseConcept struct {
	ent.Schema
}

func (CourseConcept) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			NotEmpty(),
		field.String("concept_id").
			NotEmpty(),
		field.Float("confidence").
			Default(0),
		field.Bool("active").
			Default(true),
	}
}

func (CourseConcept) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "concept_id").
			Unique(),
	}
}
