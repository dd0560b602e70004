// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/polski/ent/conceptprogress"
)

// ConceptProgress is the model entity for the ConceptProgress schema.
type ConceptProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// MasteryLevel holds the value of the "mastery_level" field.
	MasteryLevel float64 `json:"mastery_level,omitempty"`
	// SuccessRate holds the value of the "success_rate" field.
	SuccessRate float64 `json:"success_rate,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int `json:"total_attempts,omitempty"`
	// ConsecutiveCorrect holds the value of the "consecutive_correct" field.
	ConsecutiveCorrect int `json:"consecutive_correct,omitempty"`
	// EasinessFactor holds the value of the "easiness_factor" field.
	EasinessFactor float64 `json:"easiness_factor,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// LastPracticed holds the value of the "last_practiced" field.
	LastPracticed *time.Time `json:"last_practiced,omitempty"`
	// NextReview holds the value of the "next_review" field.
	NextReview time.Time `json:"next_review,omitempty"`
	// Active holds the value of the "active" field.
	Active       bool `json:"active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConceptProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conceptprogress.FieldActive:
			values[i] = new(sql.NullBool)
		case conceptprogress.FieldMasteryLevel, conceptprogress.FieldSuccessRate, conceptprogress.FieldEasinessFactor:
			values[i] = new(sql.NullFloat64)
		case conceptprogress.FieldTotalAttempts, conceptprogress.FieldConsecutiveCorrect, conceptprogress.FieldIntervalDays:
			values[i] = new(sql.NullInt64)
		case conceptprogress.FieldID, conceptprogress.FieldUserID, conceptprogress.FieldConceptID:
			values[i] = new(sql.NullString)
		case conceptprogress.FieldLastPracticed, conceptprogress.FieldNextReview:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConceptProgress fields.
func (_m *ConceptProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conceptprogress.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conceptprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case conceptprogress.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case conceptprogress.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				_m.MasteryLevel = value.Float64
			}
		case conceptprogress.FieldSuccessRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field success_rate", values[i])
			} else if value.Valid {
				_m.SuccessRate = value.Float64
			}
		case conceptprogress.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case conceptprogress.FieldConsecutiveCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_correct", values[i])
			} else if value.Valid {
				_m.ConsecutiveCorrect = int(value.Int64)
			}
		case conceptprogress.FieldEasinessFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field easiness_factor", values[i])
			} else if value.Valid {
				_m.EasinessFactor = value.Float64
			}
		case conceptprogress.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case conceptprogress.FieldLastPracticed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced", values[i])
			} else if value.Valid {
				_m.LastPracticed = new(time.Time)
				*_m.LastPracticed = value.Time
			}
		case conceptprogress.FieldNextReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review", values[i])
			} else if value.Valid {
				_m.NextReview = value.Time
			}
		case conceptprogress.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConceptProgress.
// This includes values selected through modifiers, order, etc.
func (_m *ConceptProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConceptProgress.
// Note that you need to call ConceptProgress.Unwrap() before calling this method if this ConceptProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConceptProgress) Update() *ConceptProgressUpdateOne {
	return NewConceptProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConceptProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConceptProgress) Unwrap() *ConceptProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConceptProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConceptProgress) String() string {
	var builder strings.Builder
	builder.WriteString("ConceptProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryLevel))
	builder.WriteString(", ")
	builder.WriteString("success_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessRate))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("consecutive_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveCorrect))
	builder.WriteString(", ")
	builder.WriteString("easiness_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EasinessFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	if v := _m.LastPracticed; v != nil {
		builder.WriteString("last_practiced=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("next_review=")
	builder.WriteString(_m.NextReview.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteByte(')')
	return builder.String()
}

// ConceptProgresses is a parsable slice of ConceptProgress.
type ConceptProgresses []*ConceptProgress
