package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answered question.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.JSON("concepts", []string{}).
			Optional().
			Comment("Target concepts of the question at answer time"),
		field.String("mode").
			Default("").
			Comment("Provisioning mode the question was served in"),
		field.Bool("correct"),
		field.Int64("response_time_ms").
			Default(0),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("question_id"),
	}
}
