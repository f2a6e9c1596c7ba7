// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/patientrecord"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/profile"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
	"github.com/google/uuid"
)

// PatientRecordCreate is the builder for creating a PatientRecord entity.
type PatientRecordCreate struct {
	config
	mutation *PatientRecordMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *PatientRecordCreate) SetProfileID(v uuid.UUID) *PatientRecordCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetVisitDate sets the "visit_date" field.
func (_c *PatientRecordCreate) SetVisitDate(v time.Time) *PatientRecordCreate {
	_c.mutation.SetVisitDate(v)
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *PatientRecordCreate) SetPatientName(v string) *PatientRecordCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetFileNumber sets the "file_number" field.
func (_c *PatientRecordCreate) SetFileNumber(v string) *PatientRecordCreate {
	_c.mutation.SetFileNumber(v)
	return _c
}

// SetAge sets the "age" field.
func (_c *PatientRecordCreate) SetAge(v int) *PatientRecordCreate {
	_c.mutation.SetAge(v)
	return _c
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_c *PatientRecordCreate) SetNillableAge(v *int) *PatientRecordCreate {
	if v != nil {
		_c.SetAge(*v)
	}
	return _c
}

// SetGender sets the "gender" field.
func (_c *PatientRecordCreate) SetGender(v string) *PatientRecordCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *PatientRecordCreate) SetNillableGender(v *string) *PatientRecordCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetNationality sets the "nationality" field.
func (_c *PatientRecordCreate) SetNationality(v string) *PatientRecordCreate {
	_c.mutation.SetNationality(v)
	return _c
}

// SetNillableNationality sets the "nationality" field if the given value is not nil.
func (_c *PatientRecordCreate) SetNillableNationality(v *string) *PatientRecordCreate {
	if v != nil {
		_c.SetNationality(*v)
	}
	return _c
}

// SetPatientType sets the "patient_type" field.
func (_c *PatientRecordCreate) SetPatientType(v string) *PatientRecordCreate {
	_c.mutation.SetPatientType(v)
	return _c
}

// SetNillablePatientType sets the "patient_type" field if the given value is not nil.
func (_c *PatientRecordCreate) SetNillablePatientType(v *string) *PatientRecordCreate {
	if v != nil {
		_c.SetPatientType(*v)
	}
	return _c
}

// SetPaymentType sets the "payment_type" field.
func (_c *PatientRecordCreate) SetPaymentType(v string) *PatientRecordCreate {
	_c.mutation.SetPaymentType(v)
	return _c
}

// SetInsuranceCompany sets the "insurance_company" field.
func (_c *PatientRecordCreate) SetInsuranceCompany(v string) *PatientRecordCreate {
	_c.mutation.SetInsuranceCompany(v)
	return _c
}

// SetNillableInsuranceCompany sets the "insurance_company" field if the given value is not nil.
func (_c *PatientRecordCreate) SetNillableInsuranceCompany(v *string) *PatientRecordCreate {
	if v != nil {
		_c.SetInsuranceCompany(*v)
	}
	return _c
}

// SetProcedures sets the "procedures" field.
func (_c *PatientRecordCreate) SetProcedures(v []entity.ProcedureItem) *PatientRecordCreate {
	_c.mutation.SetProcedures(v)
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *PatientRecordCreate) SetTotalAmount(v float64) *PatientRecordCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetRemarks sets the "remarks" field.
func (_c *PatientRecordCreate) SetRemarks(v string) *PatientRecordCreate {
	_c.mutation.SetRemarks(v)
	return _c
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_c *PatientRecordCreate) SetNillableRemarks(v *string) *PatientRecordCreate {
	if v != nil {
		_c.SetRemarks(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *PatientRecordCreate) SetSource(v string) *PatientRecordCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *PatientRecordCreate) SetNillableSource(v *string) *PatientRecordCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientRecordCreate) SetCreatedAt(v time.Time) *PatientRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientRecordCreate) SetNillableCreatedAt(v *time.Time) *PatientRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientRecordCreate) SetUpdatedAt(v time.Time) *PatientRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientRecordCreate) SetNillableUpdatedAt(v *time.Time) *PatientRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientRecordCreate) SetID(v uuid.UUID) *PatientRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientRecordCreate) SetNillableID(v *uuid.UUID) *PatientRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *PatientRecordCreate) SetProfile(v *Profile) *PatientRecordCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the PatientRecordMutation object of the builder.
func (_c *PatientRecordCreate) Mutation() *PatientRecordMutation {
	return _c.mutation
}

// Save creates the PatientRecord in the database.
func (_c *PatientRecordCreate) Save(ctx context.Context) (*PatientRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientRecordCreate) SaveX(ctx context.Context) *PatientRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientRecordCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := patientrecord.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patientrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patientrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patientrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientRecordCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "PatientRecord.profile_id"`)}
	}
	if _, ok := _c.mutation.VisitDate(); !ok {
		return &ValidationError{Name: "visit_date", err: errors.New(`ent: missing required field "PatientRecord.visit_date"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`ent: missing required field "PatientRecord.patient_name"`)}
	}
	if v, ok := _c.mutation.PatientName(); ok {
		if err := patientrecord.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.patient_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileNumber(); !ok {
		return &ValidationError{Name: "file_number", err: errors.New(`ent: missing required field "PatientRecord.file_number"`)}
	}
	if v, ok := _c.mutation.FileNumber(); ok {
		if err := patientrecord.FileNumberValidator(v); err != nil {
			return &ValidationError{Name: "file_number", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.file_number": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Age(); ok {
		if err := patientrecord.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.age": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PatientType(); ok {
		if err := patientrecord.PatientTypeValidator(v); err != nil {
			return &ValidationError{Name: "patient_type", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.patient_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaymentType(); !ok {
		return &ValidationError{Name: "payment_type", err: errors.New(`ent: missing required field "PatientRecord.payment_type"`)}
	}
	if v, ok := _c.mutation.PaymentType(); ok {
		if err := patientrecord.PaymentTypeValidator(v); err != nil {
			return &ValidationError{Name: "payment_type", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.payment_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Procedures(); !ok {
		return &ValidationError{Name: "procedures", err: errors.New(`ent: missing required field "PatientRecord.procedures"`)}
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`ent: missing required field "PatientRecord.total_amount"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "PatientRecord.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := patientrecord.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PatientRecord.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PatientRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PatientRecord.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "PatientRecord.profile"`)}
	}
	return nil
}

func (_c *PatientRecordCreate) sqlSave(ctx context.Context) (*PatientRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatientRecordCreate) createSpec() (*PatientRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientrecord.Table, sqlgraph.NewFieldSpec(patientrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VisitDate(); ok {
		_spec.SetField(patientrecord.FieldVisitDate, field.TypeTime, value)
		_node.VisitDate = value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(patientrecord.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.FileNumber(); ok {
		_spec.SetField(patientrecord.FieldFileNumber, field.TypeString, value)
		_node.FileNumber = value
	}
	if value, ok := _c.mutation.Age(); ok {
		_spec.SetField(patientrecord.FieldAge, field.TypeInt, value)
		_node.Age = &value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(patientrecord.FieldGender, field.TypeString, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.Nationality(); ok {
		_spec.SetField(patientrecord.FieldNationality, field.TypeString, value)
		_node.Nationality = &value
	}
	if value, ok := _c.mutation.PatientType(); ok {
		_spec.SetField(patientrecord.FieldPatientType, field.TypeString, value)
		_node.PatientType = value
	}
	if value, ok := _c.mutation.PaymentType(); ok {
		_spec.SetField(patientrecord.FieldPaymentType, field.TypeString, value)
		_node.PaymentType = value
	}
	if value, ok := _c.mutation.InsuranceCompany(); ok {
		_spec.SetField(patientrecord.FieldInsuranceCompany, field.TypeString, value)
		_node.InsuranceCompany = &value
	}
	if value, ok := _c.mutation.Procedures(); ok {
		_spec.SetField(patientrecord.FieldProcedures, field.TypeJSON, value)
		_node.Procedures = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(patientrecord.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.Remarks(); ok {
		_spec.SetField(patientrecord.FieldRemarks, field.TypeString, value)
		_node.Remarks = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(patientrecord.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patientrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patientrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PatientRecordCreateBulk is the builder for creating many PatientRecord entities in bulk.
type PatientRecordCreateBulk struct {
	config
	err      error
	builders []*PatientRecordCreate
}

// Save creates the PatientRecord entities in the database.
func (_c *PatientRecordCreateBulk) Save(ctx context.Context) ([]*PatientRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PatientRecordCreateBulk) SaveX(ctx context.Context) []*PatientRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
