package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Concept is a unit of Polish grammar or vocabulary.
type Concept struct {
	ent.Schema
}

func (Concept) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("category").
			Comment("GRAMMAR or VOCABULARY"),
		field.Text("description").
			Default(""),
		field.JSON("examples", []string{}).
			Optional(),
		field.String("difficulty").
			Comment("CEFR level A1..C2"),
		field.JSON("tags", []string{}).
			Optional(),
		field.Bool("active").
			Default(true),
	}
}

func (Concept) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("category", "difficulty"),
	}
}
