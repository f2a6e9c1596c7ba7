// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/patientrecord"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/predicate"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/profile"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
	"github.com/google/uuid"
)

// PatientRecordUpdate is the builder for updating PatientRecord entities.
type PatientRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PatientRecordMutation
}

// Where appends a list predicates to the PatientRecordUpdate builder.
func (_u *PatientRecordUpdate) Where(ps ...predicate.PatientRecord) *PatientRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *PatientRecordUpdate) SetProfileID(v uuid.UUID) *PatientRecordUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillableProfileID(v *uuid.UUID) *PatientRecordUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetVisitDate sets the "visit_date" field.
func (_u *PatientRecordUpdate) SetVisitDate(v time.Time) *PatientRecordUpdate {
	_u.mutation.SetVisitDate(v)
	return _u
}

// SetNillableVisitDate sets the "visit_date" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillableVisitDate(v *time.Time) *PatientRecordUpdate {
	if v != nil {
		_u.SetVisitDate(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *PatientRecordUpdate) SetPatientName(v string) *PatientRecordUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillablePatientName(v *string) *PatientRecordUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetFileNumber sets the "file_number" field.
func (_u *PatientRecordUpdate) SetFileNumber(v string) *PatientRecordUpdate {
	_u.mutation.SetFileNumber(v)
	return _u
}

// SetNillableFileNumber sets the "file_number" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillableFileNumber(v *string) *PatientRecordUpdate {
	if v != nil {
		_u.SetFileNumber(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *PatientRecordUpdate) SetAge(v int) *PatientRecordUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillableAge(v *int) *PatientRecordUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *PatientRecordUpdate) AddAge(v int) *PatientRecordUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// ClearAge clears the value of the "age" field.
func (_u *PatientRecordUpdate) ClearAge() *PatientRecordUpdate {
	_u.mutation.ClearAge()
	return _u
}

// SetGender sets the "gender" field.
func (_u *PatientRecordUpdate) SetGender(v string) *PatientRecordUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillableGender(v *string) *PatientRecordUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *PatientRecordUpdate) ClearGender() *PatientRecordUpdate {
	_u.mutation.ClearGender()
	return _u
}

// SetNationality sets the "nationality" field.
func (_u *PatientRecordUpdate) SetNationality(v string) *PatientRecordUpdate {
	_u.mutation.SetNationality(v)
	return _u
}

// SetNillableNationality sets the "nationality" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillableNationality(v *string) *PatientRecordUpdate {
	if v != nil {
		_u.SetNationality(*v)
	}
	return _u
}

// ClearNationality clears the value of the "nationality" field.
func (_u *PatientRecordUpdate) ClearNationality() *PatientRecordUpdate {
	_u.mutation.ClearNationality()
	return _u
}

// SetPatientType sets the "patient_type" field.
func (_u *PatientRecordUpdate) SetPatientType(v string) *PatientRecordUpdate {
	_u.mutation.SetPatientType(v)
	return _u
}

// SetNillablePatientType sets the "patient_type" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillablePatientType(v *string) *PatientRecordUpdate {
	if v != nil {
		_u.SetPatientType(*v)
	}
	return _u
}

// ClearPatientType clears the value of the "patient_type" field.
func (_u *PatientRecordUpdate) ClearPatientType() *PatientRecordUpdate {
	_u.mutation.ClearPatientType()
	return _u
}

// SetPaymentType sets the "payment_type" field.
func (_u *PatientRecordUpdate) SetPaymentType(v string) *PatientRecordUpdate {
	_u.mutation.SetPaymentType(v)
	return _u
}

// SetNillablePaymentType sets the "payment_type" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillablePaymentType(v *string) *PatientRecordUpdate {
	if v != nil {
		_u.SetPaymentType(*v)
	}
	return _u
}

// SetInsuranceCompany sets the "insurance_company" field.
func (_u *PatientRecordUpdate) SetInsuranceCompany(v string) *PatientRecordUpdate {
	_u.mutation.SetInsuranceCompany(v)
	return _u
}

// SetNillableInsuranceCompany sets the "insurance_company" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillableInsuranceCompany(v *string) *PatientRecordUpdate {
	if v != nil {
		_u.SetInsuranceCompany(*v)
	}
	return _u
}

// ClearInsuranceCompany clears the value of the "insurance_company" field.
func (_u *PatientRecordUpdate) ClearInsuranceCompany() *PatientRecordUpdate {
	_u.mutation.ClearInsuranceCompany()
	return _u
}

// SetProcedures sets the "procedures" field.
func (_u *PatientRecordUpdate) SetProcedures(v []entity.ProcedureItem) *PatientRecordUpdate {
	_u.mutation.SetProcedures(v)
	return _u
}

// AppendProcedures appends value to the "procedures" field.
func (_u *PatientRecordUpdate) AppendProcedures(v []entity.ProcedureItem) *PatientRecordUpdate {
	_u.mutation.AppendProcedures(v)
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *PatientRecordUpdate) SetTotalAmount(v float64) *PatientRecordUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillableTotalAmount(v *float64) *PatientRecordUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *PatientRecordUpdate) AddTotalAmount(v float64) *PatientRecordUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetRemarks sets the "remarks" field.
func (_u *PatientRecordUpdate) SetRemarks(v string) *PatientRecordUpdate {
	_u.mutation.SetRemarks(v)
	return _u
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillableRemarks(v *string) *PatientRecordUpdate {
	if v != nil {
		_u.SetRemarks(*v)
	}
	return _u
}

// ClearRemarks clears the value of the "remarks" field.
func (_u *PatientRecordUpdate) ClearRemarks() *PatientRecordUpdate {
	_u.mutation.ClearRemarks()
	return _u
}

// SetSource sets the "source" field.
func (_u *PatientRecordUpdate) SetSource(v string) *PatientRecordUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillableSource(v *string) *PatientRecordUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PatientRecordUpdate) SetCreatedAt(v time.Time) *PatientRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PatientRecordUpdate) SetNillableCreatedAt(v *time.Time) *PatientRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientRecordUpdate) SetUpdatedAt(v time.Time) *PatientRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *PatientRecordUpdate) SetProfile(v *Profile) *PatientRecordUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the PatientRecordMutation object of the builder.
func (_u *PatientRecordUpdate) Mutation() *PatientRecordMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *PatientRecordUpdate) ClearProfile() *PatientRecordUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientRecordUpdate) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := patientrecord.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileNumber(); ok {
		if err := patientrecord.FileNumberValidator(v); err != nil {
			return &ValidationError{Name: "file_number", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.file_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := patientrecord.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientType(); ok {
		if err := patientrecord.PatientTypeValidator(v); err != nil {
			return &ValidationError{Name: "patient_type", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.patient_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentType(); ok {
		if err := patientrecord.PaymentTypeValidator(v); err != nil {
			return &ValidationError{Name: "payment_type", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.payment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := patientrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.source": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PatientRecord.profile"`)
	}
	return nil
}

func (_u *PatientRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientrecord.Table, patientrecord.Columns, sqlgraph.NewFieldSpec(patientrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VisitDate(); ok {
		_spec.SetField(patientrecord.FieldVisitDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(patientrecord.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileNumber(); ok {
		_spec.SetField(patientrecord.FieldFileNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(patientrecord.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(patientrecord.FieldAge, field.TypeInt, value)
	}
	if _u.mutation.AgeCleared() {
		_spec.ClearField(patientrecord.FieldAge, field.TypeInt)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(patientrecord.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(patientrecord.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.Nationality(); ok {
		_spec.SetField(patientrecord.FieldNationality, field.TypeString, value)
	}
	if _u.mutation.NationalityCleared() {
		_spec.ClearField(patientrecord.FieldNationality, field.TypeString)
	}
	if value, ok := _u.mutation.PatientType(); ok {
		_spec.SetField(patientrecord.FieldPatientType, field.TypeString, value)
	}
	if _u.mutation.PatientTypeCleared() {
		_spec.ClearField(patientrecord.FieldPatientType, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentType(); ok {
		_spec.SetField(patientrecord.FieldPaymentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.InsuranceCompany(); ok {
		_spec.SetField(patientrecord.FieldInsuranceCompany, field.TypeString, value)
	}
	if _u.mutation.InsuranceCompanyCleared() {
		_spec.ClearField(patientrecord.FieldInsuranceCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Procedures(); ok {
		_spec.SetField(patientrecord.FieldProcedures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcedures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patientrecord.FieldProcedures, value)
		})
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(patientrecord.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(patientrecord.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Remarks(); ok {
		_spec.SetField(patientrecord.FieldRemarks, field.TypeString, value)
	}
	if _u.mutation.RemarksCleared() {
		_spec.ClearField(patientrecord.FieldRemarks, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(patientrecord.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(patientrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientrecord.ProfileTable,
			Columns: []string{patientrecord.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientrecord.ProfileTable,
			Columns: []string{patientrecord.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientRecordUpdateOne is the builder for updating a single PatientRecord entity.
type PatientRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientRecordMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *PatientRecordUpdateOne) SetProfileID(v uuid.UUID) *PatientRecordUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillableProfileID(v *uuid.UUID) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetVisitDate sets the "visit_date" field.
func (_u *PatientRecordUpdateOne) SetVisitDate(v time.Time) *PatientRecordUpdateOne {
	_u.mutation.SetVisitDate(v)
	return _u
}

// SetNillableVisitDate sets the "visit_date" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillableVisitDate(v *time.Time) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetVisitDate(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *PatientRecordUpdateOne) SetPatientName(v string) *PatientRecordUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillablePatientName(v *string) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetFileNumber sets the "file_number" field.
func (_u *PatientRecordUpdateOne) SetFileNumber(v string) *PatientRecordUpdateOne {
	_u.mutation.SetFileNumber(v)
	return _u
}

// SetNillableFileNumber sets the "file_number" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillableFileNumber(v *string) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetFileNumber(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *PatientRecordUpdateOne) SetAge(v int) *PatientRecordUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillableAge(v *int) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *PatientRecordUpdateOne) AddAge(v int) *PatientRecordUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// ClearAge clears the value of the "age" field.
func (_u *PatientRecordUpdateOne) ClearAge() *PatientRecordUpdateOne {
	_u.mutation.ClearAge()
	return _u
}

// SetGender sets the "gender" field.
func (_u *PatientRecordUpdateOne) SetGender(v string) *PatientRecordUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillableGender(v *string) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *PatientRecordUpdateOne) ClearGender() *PatientRecordUpdateOne {
	_u.mutation.ClearGender()
	return _u
}

// SetNationality sets the "nationality" field.
func (_u *PatientRecordUpdateOne) SetNationality(v string) *PatientRecordUpdateOne {
	_u.mutation.SetNationality(v)
	return _u
}

// SetNillableNationality sets the "nationality" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillableNationality(v *string) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetNationality(*v)
	}
	return _u
}

// ClearNationality clears the value of the "nationality" field.
func (_u *PatientRecordUpdateOne) ClearNationality() *PatientRecordUpdateOne {
	_u.mutation.ClearNationality()
	return _u
}

// SetPatientType sets the "patient_type" field.
func (_u *PatientRecordUpdateOne) SetPatientType(v string) *PatientRecordUpdateOne {
	_u.mutation.SetPatientType(v)
	return _u
}

// SetNillablePatientType sets the "patient_type" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillablePatientType(v *string) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetPatientType(*v)
	}
	return _u
}

// ClearPatientType clears the value of the "patient_type" field.
func (_u *PatientRecordUpdateOne) ClearPatientType() *PatientRecordUpdateOne {
	_u.mutation.ClearPatientType()
	return _u
}

// SetPaymentType sets the "payment_type" field.
func (_u *PatientRecordUpdateOne) SetPaymentType(v string) *PatientRecordUpdateOne {
	_u.mutation.SetPaymentType(v)
	return _u
}

// SetNillablePaymentType sets the "payment_type" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillablePaymentType(v *string) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetPaymentType(*v)
	}
	return _u
}

// SetInsuranceCompany sets the "insurance_company" field.
func (_u *PatientRecordUpdateOne) SetInsuranceCompany(v string) *PatientRecordUpdateOne {
	_u.mutation.SetInsuranceCompany(v)
	return _u
}

// SetNillableInsuranceCompany sets the "insurance_company" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillableInsuranceCompany(v *string) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetInsuranceCompany(*v)
	}
	return _u
}

// ClearInsuranceCompany clears the value of the "insurance_company" field.
func (_u *PatientRecordUpdateOne) ClearInsuranceCompany() *PatientRecordUpdateOne {
	_u.mutation.ClearInsuranceCompany()
	return _u
}

// SetProcedures sets the "procedures" field.
func (_u *PatientRecordUpdateOne) SetProcedures(v []entity.ProcedureItem) *PatientRecordUpdateOne {
	_u.mutation.SetProcedures(v)
	return _u
}

// AppendProcedures appends value to the "procedures" field.
func (_u *PatientRecordUpdateOne) AppendProcedures(v []entity.ProcedureItem) *PatientRecordUpdateOne {
	_u.mutation.AppendProcedures(v)
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *PatientRecordUpdateOne) SetTotalAmount(v float64) *PatientRecordUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillableTotalAmount(v *float64) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *PatientRecordUpdateOne) AddTotalAmount(v float64) *PatientRecordUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetRemarks sets the "remarks" field.
func (_u *PatientRecordUpdateOne) SetRemarks(v string) *PatientRecordUpdateOne {
	_u.mutation.SetRemarks(v)
	return _u
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillableRemarks(v *string) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetRemarks(*v)
	}
	return _u
}

// ClearRemarks clears the value of the "remarks" field.
func (_u *PatientRecordUpdateOne) ClearRemarks() *PatientRecordUpdateOne {
	_u.mutation.ClearRemarks()
	return _u
}

// SetSource sets the "source" field.
func (_u *PatientRecordUpdateOne) SetSource(v string) *PatientRecordUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillableSource(v *string) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PatientRecordUpdateOne) SetCreatedAt(v time.Time) *PatientRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PatientRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *PatientRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientRecordUpdateOne) SetUpdatedAt(v time.Time) *PatientRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *PatientRecordUpdateOne) SetProfile(v *Profile) *PatientRecordUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the PatientRecordMutation object of the builder.
func (_u *PatientRecordUpdateOne) Mutation() *PatientRecordMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *PatientRecordUpdateOne) ClearProfile() *PatientRecordUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the PatientRecordUpdate builder.
func (_u *PatientRecordUpdateOne) Where(ps ...predicate.PatientRecord) *PatientRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientRecordUpdateOne) Select(field string, fields ...string) *PatientRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientRecord entity.
func (_u *PatientRecordUpdateOne) Save(ctx context.Context) (*PatientRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientRecordUpdateOne) SaveX(ctx context.Context) *PatientRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientRecordUpdateOne) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := patientrecord.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileNumber(); ok {
		if err := patientrecord.FileNumberValidator(v); err != nil {
			return &ValidationError{Name: "file_number", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.file_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := patientrecord.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.age": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientType(); ok {
		if err := patientrecord.PatientTypeValidator(v); err != nil {
			return &ValidationError{Name: "patient_type", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.patient_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentType(); ok {
		if err := patientrecord.PaymentTypeValidator(v); err != nil {
			return &ValidationError{Name: "payment_type", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.payment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := patientrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.source": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PatientRecord.profile"`)
	}
	return nil
}

func (_u *PatientRecordUpdateOne) sqlSave(ctx context.Context) (_node *PatientRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientrecord.Table, patientrecord.Columns, sqlgraph.NewFieldSpec(patientrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PatientRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientrecord.FieldID)
		for _, f := range fields {
			if !patientrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patientrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VisitDate(); ok {
		_spec.SetField(patientrecord.FieldVisitDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(patientrecord.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileNumber(); ok {
		_spec.SetField(patientrecord.FieldFileNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(patientrecord.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(patientrecord.FieldAge, field.TypeInt, value)
	}
	if _u.mutation.AgeCleared() {
		_spec.ClearField(patientrecord.FieldAge, field.TypeInt)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(patientrecord.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(patientrecord.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.Nationality(); ok {
		_spec.SetField(patientrecord.FieldNationality, field.TypeString, value)
	}
	if _u.mutation.NationalityCleared() {
		_spec.ClearField(patientrecord.FieldNationality, field.TypeString)
	}
	if value, ok := _u.mutation.PatientType(); ok {
		_spec.SetField(patientrecord.FieldPatientType, field.TypeString, value)
	}
	if _u.mutation.PatientTypeCleared() {
		_spec.ClearField(patientrecord.FieldPatientType, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentType(); ok {
		_spec.SetField(patientrecord.FieldPaymentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.InsuranceCompany(); ok {
		_spec.SetField(patientrecord.FieldInsuranceCompany, field.TypeString, value)
	}
	if _u.mutation.InsuranceCompanyCleared() {
		_spec.ClearField(patientrecord.FieldInsuranceCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Procedures(); ok {
		_spec.SetField(patientrecord.FieldProcedures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcedures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patientrecord.FieldProcedures, value)
		})
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(patientrecord.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(patientrecord.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Remarks(); ok {
		_spec.SetField(patientrecord.FieldRemarks, field.TypeString, value)
	}
	if _u.mutation.RemarksCleared() {
		_spec.ClearField(patientrecord.FieldRemarks, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(patientrecord.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(patientrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientrecord.ProfileTable,
			Columns: []string{patientrecord.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientrecord.ProfileTable,
			Columns: []string{patientrecord.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PatientRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
