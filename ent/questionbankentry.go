// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/polski/ent/questionbankentry"
)

// QuestionBankEntry is the model entity for the QuestionBankEntry schema.
type QuestionBankEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// CorrectAnswer holds the value of the "correct_answer" field.
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// TargetConcepts holds the value of the "target_concepts" field.
	TargetConcepts []string `json:"target_concepts,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// TimesUsed holds the value of the "times_used" field.
	TimesUsed int `json:"times_used,omitempty"`
	// SuccessRate holds the value of the "success_rate" field.
	SuccessRate float64 `json:"success_rate,omitempty"`
	// LastUsed holds the value of the "last_used" field.
	LastUsed *time.Time `json:"last_used,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// manual, generated or momentary
	Source string `json:"source,omitempty"`
	// Options holds the value of the "options" field.
	Options []string `json:"options,omitempty"`
	// Media holds the value of the "media" field.
	Media        []string `json:"media,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionBankEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionbankentry.FieldTargetConcepts, questionbankentry.FieldOptions, questionbankentry.FieldMedia:
			values[i] = new([]byte)
		case questionbankentry.FieldActive:
			values[i] = new(sql.NullBool)
		case questionbankentry.FieldSuccessRate:
			values[i] = new(sql.NullFloat64)
		case questionbankentry.FieldTimesUsed:
			values[i] = new(sql.NullInt64)
		case questionbankentry.FieldID, questionbankentry.FieldQuestion, questionbankentry.FieldCorrectAnswer, questionbankentry.FieldType, questionbankentry.FieldDifficulty, questionbankentry.FieldSource:
			values[i] = new(sql.NullString)
		case questionbankentry.FieldLastUsed, questionbankentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionBankEntry fields.
func (_m *QuestionBankEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionbankentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case questionbankentry.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case questionbankentry.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case questionbankentry.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case questionbankentry.FieldTargetConcepts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field target_concepts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TargetConcepts); err != nil {
					return fmt.Errorf("unmarshal field target_concepts: %w", err)
				}
			}
		case questionbankentry.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case questionbankentry.FieldTimesUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_used", values[i])
			} else if value.Valid {
				_m.TimesUsed = int(value.Int64)
			}
		case questionbankentry.FieldSuccessRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field success_rate", values[i])
			} else if value.Valid {
				_m.SuccessRate = value.Float64
			}
		case questionbankentry.FieldLastUsed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used", values[i])
			} else if value.Valid {
				_m.LastUsed = new(time.Time)
				*_m.LastUsed = value.Time
			}
		case questionbankentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case questionbankentry.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case questionbankentry.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case questionbankentry.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case questionbankentry.FieldMedia:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field media", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Media); err != nil {
					return fmt.Errorf("unmarshal field media: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionBankEntry.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionBankEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionBankEntry.
// Note that you need to call QuestionBankEntry.Unwrap() before calling this method if this QuestionBankEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionBankEntry) Update() *QuestionBankEntryUpdateOne {
	return NewQuestionBankEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionBankEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionBankEntry) Unwrap() *QuestionBankEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionBankEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionBankEntry) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionBankEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("target_concepts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetConcepts))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("times_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesUsed))
	builder.WriteString(", ")
	builder.WriteString("success_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessRate))
	builder.WriteString(", ")
	if v := _m.LastUsed; v != nil {
		builder.WriteString("last_used=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("media=")
	builder.WriteString(fmt.Sprintf("%v", _m.Media))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionBankEntries is a parsable slice of QuestionBankEntry.
type QuestionBankEntries []*QuestionBankEntry
