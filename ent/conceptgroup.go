// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/polski/ent/conceptgroup"
)

// ConceptGroup is the model entity for the ConceptGroup schema.
type ConceptGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// MemberConcepts holds the value of the "member_concepts" field.
	MemberConcepts []string `json:"member_concepts,omitempty"`
	// Active holds the value of the "active" field.
	Active       bool `json:"active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConceptGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conceptgroup.FieldMemberConcepts:
			values[i] = new([]byte)
		case conceptgroup.FieldActive:
			values[i] = new(sql.NullBool)
		case conceptgroup.FieldID, conceptgroup.FieldName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConceptGroup fields.
func (_m *ConceptGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conceptgroup.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conceptgroup.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case conceptgroup.FieldMemberConcepts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field member_concepts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MemberConcepts); err != nil {
					return fmt.Errorf("unmarshal field member_concepts: %w", err)
				}
			}
		case conceptgroup.FieldActive:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ConceptGroup.
// This includes values selected through modifiers, order, etc.
func (_m *ConceptGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConceptGroup.
// Note that you need to call ConceptGroup.Unwrap() before calling this method if this ConceptGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConceptGroup) Update() *ConceptGroupUpdateOne {
	return NewConceptGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConceptGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConceptGroup) Unwrap() *ConceptGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConceptGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConceptGroup) String() string {
	var builder strings.Builder
	builder.WriteString("ConceptGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("member_concepts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemberConcepts))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteByte(')')
	return builder.String()
}

// ConceptGroups is a parsable slice of ConceptGroup.
type ConceptGroups []*ConceptGroup
