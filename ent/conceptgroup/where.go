// Code generated by ent, DO NOT EDIT.

package conceptgroup

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/polski/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldEQ(FieldName, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldEQ(FieldActive, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldContainsFold(FieldName, v))
}

// MemberConceptsIsNil applies the IsNil predicate on the "member_concepts" field.
func MemberConceptsIsNil() predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldIsNull(FieldMemberConcepts))
}

// MemberConceptsNotNil applies the NotNil predicate on the "member_concepts" field.
func MemberConceptsNotNil() predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldNotNull(FieldMemberConcepts))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.FieldNEQ(FieldActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConceptGroup) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConceptGroup) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConceptGroup) predicate.ConceptGroup {
	return predicate.ConceptGroup(sql.NotPredicates(p))
}
