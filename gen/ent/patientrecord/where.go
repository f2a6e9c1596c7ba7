// Code generated by ent, DO NOT EDIT.

package patientrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldProfileID, v))
}

// VisitDate applies equality check predicate on the "visit_date" field. It's identical to VisitDateEQ.
func VisitDate(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldVisitDate, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldPatientName, v))
}

// FileNumber applies equality check predicate on the "file_number" field. It's identical to FileNumberEQ.
func FileNumber(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldFileNumber, v))
}

// Age applies equality check predicate on the "age" field. It's identical to AgeEQ.
func Age(v int) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldAge, v))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldGender, v))
}

// Nationality applies equality check predicate on the "nationality" field. It's identical to NationalityEQ.
func Nationality(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldNationality, v))
}

// PatientType applies equality check predicate on the "patient_type" field. It's identical to PatientTypeEQ.
func PatientType(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldPatientType, v))
}

// PaymentType applies equality check predicate on the "payment_type" field. It's identical to PaymentTypeEQ.
func PaymentType(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldPaymentType, v))
}

// InsuranceCompany applies equality check predicate on the "insurance_company" field. It's identical to InsuranceCompanyEQ.
func InsuranceCompany(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldInsuranceCompany, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldTotalAmount, v))
}

// Remarks applies equality check predicate on the "remarks" field. It's identical to RemarksEQ.
func Remarks(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldRemarks, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldSource, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldProfileID, vs...))
}

// VisitDateEQ applies the EQ predicate on the "visit_date" field.
func VisitDateEQ(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldVisitDate, v))
}

// VisitDateNEQ applies the NEQ predicate on the "visit_date" field.
func VisitDateNEQ(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldVisitDate, v))
}

// VisitDateIn applies the In predicate on the "visit_date" field.
func VisitDateIn(vs ...time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldVisitDate, vs...))
}

// VisitDateNotIn applies the NotIn predicate on the "visit_date" field.
func VisitDateNotIn(vs ...time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldVisitDate, vs...))
}

// VisitDateGT applies the GT predicate on the "visit_date" field.
func VisitDateGT(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldVisitDate, v))
}

// VisitDateGTE applies the GTE predicate on the "visit_date" field.
func VisitDateGTE(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldVisitDate, v))
}

// VisitDateLT applies the LT predicate on the "visit_date" field.
func VisitDateLT(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldVisitDate, v))
}

// VisitDateLTE applies the LTE predicate on the "visit_date" field.
func VisitDateLTE(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldVisitDate, v))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContainsFold(FieldPatientName, v))
}

// FileNumberEQ applies the EQ predicate on the "file_number" field.
func FileNumberEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldFileNumber, v))
}

// FileNumberNEQ applies the NEQ predicate on the "file_number" field.
func FileNumberNEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldFileNumber, v))
}

// FileNumberIn applies the In predicate on the "file_number" field.
func FileNumberIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldFileNumber, vs...))
}

// FileNumberNotIn applies the NotIn predicate on the "file_number" field.
func FileNumberNotIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldFileNumber, vs...))
}

// FileNumberGT applies the GT predicate on the "file_number" field.
func FileNumberGT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldFileNumber, v))
}

// FileNumberGTE applies the GTE predicate on the "file_number" field.
func FileNumberGTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldFileNumber, v))
}

// FileNumberLT applies the LT predicate on the "file_number" field.
func FileNumberLT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldFileNumber, v))
}

// FileNumberLTE applies the LTE predicate on the "file_number" field.
func FileNumberLTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldFileNumber, v))
}

// FileNumberContains applies the Contains predicate on the "file_number" field.
func FileNumberContains(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContains(FieldFileNumber, v))
}

// FileNumberHasPrefix applies the HasPrefix predicate on the "file_number" field.
func FileNumberHasPrefix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasPrefix(FieldFileNumber, v))
}

// FileNumberHasSuffix applies the HasSuffix predicate on the "file_number" field.
func FileNumberHasSuffix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasSuffix(FieldFileNumber, v))
}

// FileNumberEqualFold applies the EqualFold predicate on the "file_number" field.
func FileNumberEqualFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEqualFold(FieldFileNumber, v))
}

// FileNumberContainsFold applies the ContainsFold predicate on the "file_number" field.
func FileNumberContainsFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContainsFold(FieldFileNumber, v))
}

// AgeEQ applies the EQ predicate on the "age" field.
func AgeEQ(v int) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldAge, v))
}

// AgeNEQ applies the NEQ predicate on the "age" field.
func AgeNEQ(v int) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldAge, v))
}

// AgeIn applies the In predicate on the "age" field.
func AgeIn(vs ...int) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldAge, vs...))
}

// AgeNotIn applies the NotIn predicate on the "age" field.
func AgeNotIn(vs ...int) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldAge, vs...))
}

// AgeGT applies the GT predicate on the "age" field.
func AgeGT(v int) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldAge, v))
}

// AgeGTE applies the GTE predicate on the "age" field.
func AgeGTE(v int) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldAge, v))
}

// AgeLT applies the LT predicate on the "age" field.
func AgeLT(v int) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldAge, v))
}

// AgeLTE applies the LTE predicate on the "age" field.
func AgeLTE(v int) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldAge, v))
}

// AgeIsNil applies the IsNil predicate on the "age" field.
func AgeIsNil() predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIsNull(FieldAge))
}

// AgeNotNil applies the NotNil predicate on the "age" field.
func AgeNotNil() predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotNull(FieldAge))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasSuffix(FieldGender, v))
}

// GenderIsNil applies the IsNil predicate on the "gender" field.
func GenderIsNil() predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIsNull(FieldGender))
}

// GenderNotNil applies the NotNil predicate on the "gender" field.
func GenderNotNil() predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotNull(FieldGender))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContainsFold(FieldGender, v))
}

// NationalityEQ applies the EQ predicate on the "nationality" field.
func NationalityEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldNationality, v))
}

// NationalityNEQ applies the NEQ predicate on the "nationality" field.
func NationalityNEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldNationality, v))
}

// NationalityIn applies the In predicate on the "nationality" field.
func NationalityIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldNationality, vs...))
}

// NationalityNotIn applies the NotIn predicate on the "nationality" field.
func NationalityNotIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldNationality, vs...))
}

// NationalityGT applies the GT predicate on the "nationality" field.
func NationalityGT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldNationality, v))
}

// NationalityGTE applies the GTE predicate on the "nationality" field.
func NationalityGTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldNationality, v))
}

// NationalityLT applies the LT predicate on the "nationality" field.
func NationalityLT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldNationality, v))
}

// NationalityLTE applies the LTE predicate on the "nationality" field.
func NationalityLTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldNationality, v))
}

// NationalityContains applies the Contains predicate on the "nationality" field.
func NationalityContains(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContains(FieldNationality, v))
}

// NationalityHasPrefix applies the HasPrefix predicate on the "nationality" field.
func NationalityHasPrefix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasPrefix(FieldNationality, v))
}

// NationalityHasSuffix applies the HasSuffix predicate on the "nationality" field.
func NationalityHasSuffix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasSuffix(FieldNationality, v))
}

// NationalityIsNil applies the IsNil predicate on the "nationality" field.
func NationalityIsNil() predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIsNull(FieldNationality))
}

// NationalityNotNil applies the NotNil predicate on the "nationality" field.
func NationalityNotNil() predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotNull(FieldNationality))
}

// NationalityEqualFold applies the EqualFold predicate on the "nationality" field.
func NationalityEqualFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEqualFold(FieldNationality, v))
}

// NationalityContainsFold applies the ContainsFold predicate on the "nationality" field.
func NationalityContainsFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContainsFold(FieldNationality, v))
}

// PatientTypeEQ applies the EQ predicate on the "patient_type" field.
func PatientTypeEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldPatientType, v))
}

// PatientTypeNEQ applies the NEQ predicate on the "patient_type" field.
func PatientTypeNEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldPatientType, v))
}

// PatientTypeIn applies the In predicate on the "patient_type" field.
func PatientTypeIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldPatientType, vs...))
}

// PatientTypeNotIn applies the NotIn predicate on the "patient_type" field.
func PatientTypeNotIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldPatientType, vs...))
}

// PatientTypeGT applies the GT predicate on the "patient_type" field.
func PatientTypeGT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldPatientType, v))
}

// PatientTypeGTE applies the GTE predicate on the "patient_type" field.
func PatientTypeGTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldPatientType, v))
}

// PatientTypeLT applies the LT predicate on the "patient_type" field.
func PatientTypeLT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldPatientType, v))
}

// PatientTypeLTE applies the LTE predicate on the "patient_type" field.
func PatientTypeLTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldPatientType, v))
}

// PatientTypeContains applies the Contains predicate on the "patient_type" field.
func PatientTypeContains(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContains(FieldPatientType, v))
}

// PatientTypeHasPrefix applies the HasPrefix predicate on the "patient_type" field.
func PatientTypeHasPrefix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasPrefix(FieldPatientType, v))
}

// PatientTypeHasSuffix applies the HasSuffix predicate on the "patient_type" field.
func PatientTypeHasSuffix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasSuffix(FieldPatientType, v))
}

// PatientTypeIsNil applies the IsNil predicate on the "patient_type" field.
func PatientTypeIsNil() predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIsNull(FieldPatientType))
}

// PatientTypeNotNil applies the NotNil predicate on the "patient_type" field.
func PatientTypeNotNil() predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotNull(FieldPatientType))
}

// PatientTypeEqualFold applies the EqualFold predicate on the "patient_type" field.
func PatientTypeEqualFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEqualFold(FieldPatientType, v))
}

// PatientTypeContainsFold applies the ContainsFold predicate on the "patient_type" field.
func PatientTypeContainsFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContainsFold(FieldPatientType, v))
}

// PaymentTypeEQ applies the EQ predicate on the "payment_type" field.
func PaymentTypeEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldPaymentType, v))
}

// PaymentTypeNEQ applies the NEQ predicate on the "payment_type" field.
func PaymentTypeNEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldPaymentType, v))
}

// PaymentTypeIn applies the In predicate on the "payment_type" field.
func PaymentTypeIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldPaymentType, vs...))
}

// PaymentTypeNotIn applies the NotIn predicate on the "payment_type" field.
func PaymentTypeNotIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldPaymentType, vs...))
}

// PaymentTypeGT applies the GT predicate on the "payment_type" field.
func PaymentTypeGT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldPaymentType, v))
}

// PaymentTypeGTE applies the GTE predicate on the "payment_type" field.
func PaymentTypeGTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldPaymentType, v))
}

// PaymentTypeLT applies the LT predicate on the "payment_type" field.
func PaymentTypeLT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldPaymentType, v))
}

// PaymentTypeLTE applies the LTE predicate on the "payment_type" field.
func PaymentTypeLTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldPaymentType, v))
}

// PaymentTypeContains applies the Contains predicate on the "payment_type" field.
func PaymentTypeContains(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContains(FieldPaymentType, v))
}

// PaymentTypeHasPrefix applies the HasPrefix predicate on the "payment_type" field.
func PaymentTypeHasPrefix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasPrefix(FieldPaymentType, v))
}

// PaymentTypeHasSuffix applies the HasSuffix predicate on the "payment_type" field.
func PaymentTypeHasSuffix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasSuffix(FieldPaymentType, v))
}

// PaymentTypeEqualFold applies the EqualFold predicate on the "payment_type" field.
func PaymentTypeEqualFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEqualFold(FieldPaymentType, v))
}

// PaymentTypeContainsFold applies the ContainsFold predicate on the "payment_type" field.
func PaymentTypeContainsFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContainsFold(FieldPaymentType, v))
}

// InsuranceCompanyEQ applies the EQ predicate on the "insurance_company" field.
func InsuranceCompanyEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldInsuranceCompany, v))
}

// InsuranceCompanyNEQ applies the NEQ predicate on the "insurance_company" field.
func InsuranceCompanyNEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldInsuranceCompany, v))
}

// InsuranceCompanyIn applies the In predicate on the "insurance_company" field.
func InsuranceCompanyIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldInsuranceCompany, vs...))
}

// InsuranceCompanyNotIn applies the NotIn predicate on the "insurance_company" field.
func InsuranceCompanyNotIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldInsuranceCompany, vs...))
}

// InsuranceCompanyGT applies the GT predicate on the "insurance_company" field.
func InsuranceCompanyGT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldInsuranceCompany, v))
}

// InsuranceCompanyGTE applies the GTE predicate on the "insurance_company" field.
func InsuranceCompanyGTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldInsuranceCompany, v))
}

// InsuranceCompanyLT applies the LT predicate on the "insurance_company" field.
func InsuranceCompanyLT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldInsuranceCompany, v))
}

// InsuranceCompanyLTE applies the LTE predicate on the "insurance_company" field.
func InsuranceCompanyLTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldInsuranceCompany, v))
}

// InsuranceCompanyContains applies the Contains predicate on the "insurance_company" field.
func InsuranceCompanyContains(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContains(FieldInsuranceCompany, v))
}

// InsuranceCompanyHasPrefix applies the HasPrefix predicate on the "insurance_company" field.
func InsuranceCompanyHasPrefix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasPrefix(FieldInsuranceCompany, v))
}

// InsuranceCompanyHasSuffix applies the HasSuffix predicate on the "insurance_company" field.
func InsuranceCompanyHasSuffix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasSuffix(FieldInsuranceCompany, v))
}

// InsuranceCompanyIsNil applies the IsNil predicate on the "insurance_company" field.
func InsuranceCompanyIsNil() predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIsNull(FieldInsuranceCompany))
}

// InsuranceCompanyNotNil applies the NotNil predicate on the "insurance_company" field.
func InsuranceCompanyNotNil() predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotNull(FieldInsuranceCompany))
}

// InsuranceCompanyEqualFold applies the EqualFold predicate on the "insurance_company" field.
func InsuranceCompanyEqualFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEqualFold(FieldInsuranceCompany, v))
}

// InsuranceCompanyContainsFold applies the ContainsFold predicate on the "insurance_company" field.
func InsuranceCompanyContainsFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContainsFold(FieldInsuranceCompany, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldTotalAmount, v))
}

// RemarksEQ applies the EQ predicate on the "remarks" field.
func RemarksEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldRemarks, v))
}

// RemarksNEQ applies the NEQ predicate on the "remarks" field.
func RemarksNEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldRemarks, v))
}

// RemarksIn applies the In predicate on the "remarks" field.
func RemarksIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldRemarks, vs...))
}

// RemarksNotIn applies the NotIn predicate on the "remarks" field.
func RemarksNotIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldRemarks, vs...))
}

// RemarksGT applies the GT predicate on the "remarks" field.
func RemarksGT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldRemarks, v))
}

// RemarksGTE applies the GTE predicate on the "remarks" field.
func RemarksGTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldRemarks, v))
}

// RemarksLT applies the LT predicate on the "remarks" field.
func RemarksLT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldRemarks, v))
}

// RemarksLTE applies the LTE predicate on the "remarks" field.
func RemarksLTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldRemarks, v))
}

// RemarksContains applies the Contains predicate on the "remarks" field.
func RemarksContains(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContains(FieldRemarks, v))
}

// RemarksHasPrefix applies the HasPrefix predicate on the "remarks" field.
func RemarksHasPrefix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasPrefix(FieldRemarks, v))
}

// RemarksHasSuffix applies the HasSuffix predicate on the "remarks" field.
func RemarksHasSuffix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasSuffix(FieldRemarks, v))
}

// RemarksIsNil applies the IsNil predicate on the "remarks" field.
func RemarksIsNil() predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIsNull(FieldRemarks))
}

// RemarksNotNil applies the NotNil predicate on the "remarks" field.
func RemarksNotNil() predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotNull(FieldRemarks))
}

// RemarksEqualFold applies the EqualFold predicate on the "remarks" field.
func RemarksEqualFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEqualFold(FieldRemarks, v))
}

// RemarksContainsFold applies the ContainsFold predicate on the "remarks" field.
func RemarksContainsFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContainsFold(FieldRemarks, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldContainsFold(FieldSource, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PatientRecord {
	return predicate.PatientRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.PatientRecord {
	return predicate.PatientRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.PatientRecord {
	return predicate.PatientRecord(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PatientRecord) predicate.PatientRecord {
	return predicate.PatientRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PatientRecord) predicate.PatientRecord {
	return predicate.PatientRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PatientRecord) predicate.PatientRecord {
	return predicate.PatientRecord(sql.NotPredicates(p))
}
