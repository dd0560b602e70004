package observability

import "go.opentelemetry.io/otel/attribute"

func UserID(id string) attribute.KeyValue { return attribute.String("polski.user_id", id) }

func Mode(m string) attribute.KeyValue { return attribute.String("polski.mode", m) }

func ConceptCount(n int) attribute.KeyValue { return attribute.Int("polski.concept_count", n) }

func QuestionCount(n int) attribute.KeyValue { return attribute.Int("polski.question_count", n) }

func QuestionID(id string) attribute.KeyValue { return attribute.String("polski.question_id", id) }
