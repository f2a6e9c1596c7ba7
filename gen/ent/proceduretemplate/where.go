// Code generated by ent, DO NOT EDIT.

package proceduretemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldProfileID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldName, v))
}

// CashPrice applies equality check predicate on the "cash_price" field. It's identical to CashPriceEQ.
func CashPrice(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldCashPrice, v))
}

// InsurancePrice applies equality check predicate on the "insurance_price" field. It's identical to InsurancePriceEQ.
func InsurancePrice(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldInsurancePrice, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNotIn(FieldProfileID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldContainsFold(FieldName, v))
}

// CashPriceEQ applies the EQ predicate on the "cash_price" field.
func CashPriceEQ(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldCashPrice, v))
}

// CashPriceNEQ applies the NEQ predicate on the "cash_price" field.
func CashPriceNEQ(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNEQ(FieldCashPrice, v))
}

// CashPriceIn applies the In predicate on the "cash_price" field.
func CashPriceIn(vs ...float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldIn(FieldCashPrice, vs...))
}

// CashPriceNotIn applies the NotIn predicate on the "cash_price" field.
func CashPriceNotIn(vs ...float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNotIn(FieldCashPrice, vs...))
}

// CashPriceGT applies the GT predicate on the "cash_price" field.
func CashPriceGT(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldGT(FieldCashPrice, v))
}

// CashPriceGTE applies the GTE predicate on the "cash_price" field.
func CashPriceGTE(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldGTE(FieldCashPrice, v))
}

// CashPriceLT applies the LT predicate on the "cash_price" field.
func CashPriceLT(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldLT(FieldCashPrice, v))
}

// CashPriceLTE applies the LTE predicate on the "cash_price" field.
func CashPriceLTE(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldLTE(FieldCashPrice, v))
}

// InsurancePriceEQ applies the EQ predicate on the "insurance_price" field.
func InsurancePriceEQ(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldInsurancePrice, v))
}

// InsurancePriceNEQ applies the NEQ predicate on the "insurance_price" field.
func InsurancePriceNEQ(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNEQ(FieldInsurancePrice, v))
}

// InsurancePriceIn applies the In predicate on the "insurance_price" field.
func InsurancePriceIn(vs ...float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldIn(FieldInsurancePrice, vs...))
}

// InsurancePriceNotIn applies the NotIn predicate on the "insurance_price" field.
func InsurancePriceNotIn(vs ...float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNotIn(FieldInsurancePrice, vs...))
}

// InsurancePriceGT applies the GT predicate on the "insurance_price" field.
func InsurancePriceGT(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldGT(FieldInsurancePrice, v))
}

// InsurancePriceGTE applies the GTE predicate on the "insurance_price" field.
func InsurancePriceGTE(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldGTE(FieldInsurancePrice, v))
}

// InsurancePriceLT applies the LT predicate on the "insurance_price" field.
func InsurancePriceLT(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldLT(FieldInsurancePrice, v))
}

// InsurancePriceLTE applies the LTE predicate on the "insurance_price" field.
func InsurancePriceLTE(v float64) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldLTE(FieldInsurancePrice, v))
}

// InsurancePriceIsNil applies the IsNil predicate on the "insurance_price" field.
func InsurancePriceIsNil() predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldIsNull(FieldInsurancePrice))
}

// InsurancePriceNotNil applies the NotNil predicate on the "insurance_price" field.
func InsurancePriceNotNil() predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNotNull(FieldInsurancePrice))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcedureTemplate) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcedureTemplate) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcedureTemplate) predicate.ProcedureTemplate {
	return predicate.ProcedureTemplate(sql.NotPredicates(p))
}
