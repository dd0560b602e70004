package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ConceptGroup is a named bundle of concepts drilled together.
type ConceptGroup struct {
	ent.Schema
}

func (ConceptGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty().
			Unique(),
		field.JSON("member_concepts", []string{}).
			Optional(),
		field.Bool("active").
			Default(true),
	}
}
