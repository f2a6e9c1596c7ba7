// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/patientrecord"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/predicate"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/proceduretemplate"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/profile"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePatientRecord     = "PatientRecord"
	TypeProcedureTemplate = "ProcedureTemplate"
	TypeProfile           = "Profile"
)

// PatientRecordMutation represents an operation that mutates the PatientRecord nodes in the graph.
type PatientRecordMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	visit_date        *time.Time
	patient_name      *string
	file_number       *string
	age               *int
	addage            *int
	gender            *string
	nationality       *string
	patient_type      *string
	payment_type      *string
	insurance_company *string
	procedures        *[]entity.ProcedureItem
	appendprocedures  []entity.ProcedureItem
	total_amount      *float64
	addtotal_amount   *float64
	remarks           *string
	source            *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	profile           *uuid.UUID
	clearedprofile    bool
	done              bool
	oldValue          func(context.Context) (*PatientRecord, error)
	predicates        []predicate.PatientRecord
}

var _ ent.Mutation = (*PatientRecordMutation)(nil)

// patientrecordOption allows management of the mutation configuration using functional options.
type patientrecordOption func(*PatientRecordMutation)

// newPatientRecordMutation creates new mutation for the PatientRecord entity.
func newPatientRecordMutation(c config, op Op, opts ...patientrecordOption) *PatientRecordMutation {
	m := &PatientRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePatientRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientRecordID sets the ID field of the mutation.
func withPatientRecordID(id uuid.UUID) patientrecordOption {
	return func(m *PatientRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PatientRecord
		)
		m.oldValue = func(ctx context.Context) (*PatientRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatientRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatientRecord sets the old PatientRecord of the mutation.
func withPatientRecord(node *PatientRecord) patientrecordOption {
	return func(m *PatientRecordMutation) {
		m.oldValue = func(context.Context) (*PatientRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PatientRecord entities.
func (m *PatientRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatientRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *PatientRecordMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *PatientRecordMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *PatientRecordMutation) ResetProfileID() {
	m.profile = nil
}

// SetVisitDate sets the "visit_date" field.
func (m *PatientRecordMutation) SetVisitDate(t time.Time) {
	m.visit_date = &t
}

// VisitDate returns the value of the "visit_date" field in the mutation.
func (m *PatientRecordMutation) VisitDate() (r time.Time, exists bool) {
	v := m.visit_date
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitDate returns the old "visit_date" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldVisitDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitDate: %w", err)
	}
	return oldValue.VisitDate, nil
}

// ResetVisitDate resets all changes to the "visit_date" field.
func (m *PatientRecordMutation) ResetVisitDate() {
	m.visit_date = nil
}

// SetPatientName sets the "patient_name" field.
func (m *PatientRecordMutation) SetPatientName(s string) {
	m.patient_name = &s
}

// PatientName returns the value of the "patient_name" field in the mutation.
func (m *PatientRecordMutation) PatientName() (r string, exists bool) {
	v := m.patient_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientName returns the old "patient_name" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldPatientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientName: %w", err)
	}
	return oldValue.PatientName, nil
}

// ResetPatientName resets all changes to the "patient_name" field.
func (m *PatientRecordMutation) ResetPatientName() {
	m.patient_name = nil
}

// SetFileNumber sets the "file_number" field.
func (m *PatientRecordMutation) SetFileNumber(s string) {
	m.file_number = &s
}

// FileNumber returns the value of the "file_number" field in the mutation.
func (m *PatientRecordMutation) FileNumber() (r string, exists bool) {
	v := m.file_number
	if v == nil {
		return
	}
	return *v, true
}

// OldFileNumber returns the old "file_number" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldFileNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileNumber: %w", err)
	}
	return oldValue.FileNumber, nil
}

// ResetFileNumber resets all changes to the "file_number" field.
func (m *PatientRecordMutation) ResetFileNumber() {
	m.file_number = nil
}

// SetAge sets the "age" field.
func (m *PatientRecordMutation) SetAge(i int) {
	m.age = &i
	m.addage = nil
}

// Age returns the value of the "age" field in the mutation.
func (m *PatientRecordMutation) Age() (r int, exists bool) {
	v := m.age
	if v == nil {
		return
	}
	return *v, true
}

// OldAge returns the old "age" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldAge(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAge: %w", err)
	}
	return oldValue.Age, nil
}

// AddAge adds i to the "age" field.
func (m *PatientRecordMutation) AddAge(i int) {
	if m.addage != nil {
		*m.addage += i
	} else {
		m.addage = &i
	}
}

// AddedAge returns the value that was added to the "age" field in this mutation.
func (m *PatientRecordMutation) AddedAge() (r int, exists bool) {
	v := m.addage
	if v == nil {
		return
	}
	return *v, true
}

// ClearAge clears the value of the "age" field.
func (m *PatientRecordMutation) ClearAge() {
	m.age = nil
	m.addage = nil
	m.clearedFields[patientrecord.FieldAge] = struct{}{}
}

// AgeCleared returns if the "age" field was cleared in this mutation.
func (m *PatientRecordMutation) AgeCleared() bool {
	_, ok := m.clearedFields[patientrecord.FieldAge]
	return ok
}

// ResetAge resets all changes to the "age" field.
func (m *PatientRecordMutation) ResetAge() {
	m.age = nil
	m.addage = nil
	delete(m.clearedFields, patientrecord.FieldAge)
}

// SetGender sets the "gender" field.
func (m *PatientRecordMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *PatientRecordMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldGender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *PatientRecordMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[patientrecord.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *PatientRecordMutation) GenderCleared() bool {
	_, ok := m.clearedFields[patientrecord.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *PatientRecordMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, patientrecord.FieldGender)
}

// SetNationality sets the "nationality" field.
func (m *PatientRecordMutation) SetNationality(s string) {
	m.nationality = &s
}

// Nationality returns the value of the "nationality" field in the mutation.
func (m *PatientRecordMutation) Nationality() (r string, exists bool) {
	v := m.nationality
	if v == nil {
		return
	}
	return *v, true
}

// OldNationality returns the old "nationality" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldNationality(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNationality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNationality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNationality: %w", err)
	}
	return oldValue.Nationality, nil
}

// ClearNationality clears the value of the "nationality" field.
func (m *PatientRecordMutation) ClearNationality() {
	m.nationality = nil
	m.clearedFields[patientrecord.FieldNationality] = struct{}{}
}

// NationalityCleared returns if the "nationality" field was cleared in this mutation.
func (m *PatientRecordMutation) NationalityCleared() bool {
	_, ok := m.clearedFields[patientrecord.FieldNationality]
	return ok
}

// ResetNationality resets all changes to the "nationality" field.
func (m *PatientRecordMutation) ResetNationality() {
	m.nationality = nil
	delete(m.clearedFields, patientrecord.FieldNationality)
}

// SetPatientType sets the "patient_type" field.
func (m *PatientRecordMutation) SetPatientType(s string) {
	m.patient_type = &s
}

// PatientType returns the value of the "patient_type" field in the mutation.
func (m *PatientRecordMutation) PatientType() (r string, exists bool) {
	v := m.patient_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientType returns the old "patient_type" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldPatientType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientType: %w", err)
	}
	return oldValue.PatientType, nil
}

// ClearPatientType clears the value of the "patient_type" field.
func (m *PatientRecordMutation) ClearPatientType() {
	m.patient_type = nil
	m.clearedFields[patientrecord.FieldPatientType] = struct{}{}
}

// PatientTypeCleared returns if the "patient_type" field was cleared in this mutation.
func (m *PatientRecordMutation) PatientTypeCleared() bool {
	_, ok := m.clearedFields[patientrecord.FieldPatientType]
	return ok
}

// ResetPatientType resets all changes to the "patient_type" field.
func (m *PatientRecordMutation) ResetPatientType() {
	m.patient_type = nil
	delete(m.clearedFields, patientrecord.FieldPatientType)
}

// SetPaymentType sets the "payment_type" field.
func (m *PatientRecordMutation) SetPaymentType(s string) {
	m.payment_type = &s
}

// PaymentType returns the value of the "payment_type" field in the mutation.
func (m *PatientRecordMutation) PaymentType() (r string, exists bool) {
	v := m.payment_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentType returns the old "payment_type" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldPaymentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentType: %w", err)
	}
	return oldValue.PaymentType, nil
}

// ResetPaymentType resets all changes to the "payment_type" field.
func (m *PatientRecordMutation) ResetPaymentType() {
	m.payment_type = nil
}

// SetInsuranceCompany sets the "insurance_company" field.
func (m *PatientRecordMutation) SetInsuranceCompany(s string) {
	m.insurance_company = &s
}

// InsuranceCompany returns the value of the "insurance_company" field in the mutation.
func (m *PatientRecordMutation) InsuranceCompany() (r string, exists bool) {
	v := m.insurance_company
	if v == nil {
		return
	}
	return *v, true
}

// OldInsuranceCompany returns the old "insurance_company" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldInsuranceCompany(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsuranceCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsuranceCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsuranceCompany: %w", err)
	}
	return oldValue.InsuranceCompany, nil
}

// ClearInsuranceCompany clears the value of the "insurance_company" field.
func (m *PatientRecordMutation) ClearInsuranceCompany() {
	m.insurance_company = nil
	m.clearedFields[patientrecord.FieldInsuranceCompany] = struct{}{}
}

// InsuranceCompanyCleared returns if the "insurance_company" field was cleared in this mutation.
func (m *PatientRecordMutation) InsuranceCompanyCleared() bool {
	_, ok := m.clearedFields[patientrecord.FieldInsuranceCompany]
	return ok
}

// ResetInsuranceCompany resets all changes to the "insurance_company" field.
func (m *PatientRecordMutation) ResetInsuranceCompany() {
	m.insurance_company = nil
	delete(m.clearedFields, patientrecord.FieldInsuranceCompany)
}

// SetProcedures sets the "procedures" field.
func (m *PatientRecordMutation) SetProcedures(ei []entity.ProcedureItem) {
	m.procedures = &ei
	m.appendprocedures = nil
}

// Procedures returns the value of the "procedures" field in the mutation.
func (m *PatientRecordMutation) Procedures() (r []entity.ProcedureItem, exists bool) {
	v := m.procedures
	if v == nil {
		return
	}
	return *v, true
}

// OldProcedures returns the old "procedures" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldProcedures(ctx context.Context) (v []entity.ProcedureItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcedures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcedures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcedures: %w", err)
	}
	return oldValue.Procedures, nil
}

// AppendProcedures adds ei to the "procedures" field.
func (m *PatientRecordMutation) AppendProcedures(ei []entity.ProcedureItem) {
	m.appendprocedures = append(m.appendprocedures, ei...)
}

// AppendedProcedures returns the list of values that were appended to the "procedures" field in this mutation.
func (m *PatientRecordMutation) AppendedProcedures() ([]entity.ProcedureItem, bool) {
	if len(m.appendprocedures) == 0 {
		return nil, false
	}
	return m.appendprocedures, true
}

// ResetProcedures resets all changes to the "procedures" field.
func (m *PatientRecordMutation) ResetProcedures() {
	m.procedures = nil
	m.appendprocedures = nil
}

// SetTotalAmount sets the "total_amount" field.
func (m *PatientRecordMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *PatientRecordMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldTotalAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *PatientRecordMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *PatientRecordMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *PatientRecordMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
}

// SetRemarks sets the "remarks" field.
func (m *PatientRecordMutation) SetRemarks(s string) {
	m.remarks = &s
}

// Remarks returns the value of the "remarks" field in the mutation.
func (m *PatientRecordMutation) Remarks() (r string, exists bool) {
	v := m.remarks
	if v == nil {
		return
	}
	return *v, true
}

// OldRemarks returns the old "remarks" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldRemarks(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemarks: %w", err)
	}
	return oldValue.Remarks, nil
}

// ClearRemarks clears the value of the "remarks" field.
func (m *PatientRecordMutation) ClearRemarks() {
	m.remarks = nil
	m.clearedFields[patientrecord.FieldRemarks] = struct{}{}
}

// RemarksCleared returns if the "remarks" field was cleared in this mutation.
func (m *PatientRecordMutation) RemarksCleared() bool {
	_, ok := m.clearedFields[patientrecord.FieldRemarks]
	return ok
}

// ResetRemarks resets all changes to the "remarks" field.
func (m *PatientRecordMutation) ResetRemarks() {
	m.remarks = nil
	delete(m.clearedFields, patientrecord.FieldRemarks)
}

// SetSource sets the "source" field.
func (m *PatientRecordMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *PatientRecordMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *PatientRecordMutation) ResetSource() {
	m.source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PatientRecord entity.
// If the PatientRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *PatientRecordMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[patientrecord.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *PatientRecordMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *PatientRecordMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *PatientRecordMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the PatientRecordMutation builder.
func (m *PatientRecordMutation) Where(ps ...predicate.PatientRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatientRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatientRecord).
func (m *PatientRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientRecordMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.profile != nil {
		fields = append(fields, patientrecord.FieldProfileID)
	}
	if m.visit_date != nil {
		fields = append(fields, patientrecord.FieldVisitDate)
	}
	if m.patient_name != nil {
		fields = append(fields, patientrecord.FieldPatientName)
	}
	if m.file_number != nil {
		fields = append(fields, patientrecord.FieldFileNumber)
	}
	if m.age != nil {
		fields = append(fields, patientrecord.FieldAge)
	}
	if m.gender != nil {
		fields = append(fields, patientrecord.FieldGender)
	}
	if m.nationality != nil {
		fields = append(fields, patientrecord.FieldNationality)
	}
	if m.patient_type != nil {
		fields = append(fields, patientrecord.FieldPatientType)
	}
	if m.payment_type != nil {
		fields = append(fields, patientrecord.FieldPaymentType)
	}
	if m.insurance_company != nil {
		fields = append(fields, patientrecord.FieldInsuranceCompany)
	}
	if m.procedures != nil {
		fields = append(fields, patientrecord.FieldProcedures)
	}
	if m.total_amount != nil {
		fields = append(fields, patientrecord.FieldTotalAmount)
	}
	if m.remarks != nil {
		fields = append(fields, patientrecord.FieldRemarks)
	}
	if m.source != nil {
		fields = append(fields, patientrecord.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, patientrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patientrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patientrecord.FieldProfileID:
		return m.ProfileID()
	case patientrecord.FieldVisitDate:
		return m.VisitDate()
	case patientrecord.FieldPatientName:
		return m.PatientName()
	case patientrecord.FieldFileNumber:
		return m.FileNumber()
	case patientrecord.FieldAge:
		return m.Age()
	case patientrecord.FieldGender:
		return m.Gender()
	case patientrecord.FieldNationality:
		return m.Nationality()
	case patientrecord.FieldPatientType:
		return m.PatientType()
	case patientrecord.FieldPaymentType:
		return m.PaymentType()
	case patientrecord.FieldInsuranceCompany:
		return m.InsuranceCompany()
	case patientrecord.FieldProcedures:
		return m.Procedures()
	case patientrecord.FieldTotalAmount:
		return m.TotalAmount()
	case patientrecord.FieldRemarks:
		return m.Remarks()
	case patientrecord.FieldSource:
		return m.Source()
	case patientrecord.FieldCreatedAt:
		return m.CreatedAt()
	case patientrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patientrecord.FieldProfileID:
		return m.OldProfileID(ctx)
	case patientrecord.FieldVisitDate:
		return m.OldVisitDate(ctx)
	case patientrecord.FieldPatientName:
		return m.OldPatientName(ctx)
	case patientrecord.FieldFileNumber:
		return m.OldFileNumber(ctx)
	case patientrecord.FieldAge:
		return m.OldAge(ctx)
	case patientrecord.FieldGender:
		return m.OldGender(ctx)
	case patientrecord.FieldNationality:
		return m.OldNationality(ctx)
	case patientrecord.FieldPatientType:
		return m.OldPatientType(ctx)
	case patientrecord.FieldPaymentType:
		return m.OldPaymentType(ctx)
	case patientrecord.FieldInsuranceCompany:
		return m.OldInsuranceCompany(ctx)
	case patientrecord.FieldProcedures:
		return m.OldProcedures(ctx)
	case patientrecord.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case patientrecord.FieldRemarks:
		return m.OldRemarks(ctx)
	case patientrecord.FieldSource:
		return m.OldSource(ctx)
	case patientrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patientrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PatientRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patientrecord.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case patientrecord.FieldVisitDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitDate(v)
		return nil
	case patientrecord.FieldPatientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientName(v)
		return nil
	case patientrecord.FieldFileNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileNumber(v)
		return nil
	case patientrecord.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAge(v)
		return nil
	case patientrecord.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case patientrecord.FieldNationality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNationality(v)
		return nil
	case patientrecord.FieldPatientType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientType(v)
		return nil
	case patientrecord.FieldPaymentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentType(v)
		return nil
	case patientrecord.FieldInsuranceCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsuranceCompany(v)
		return nil
	case patientrecord.FieldProcedures:
		v, ok := value.([]entity.ProcedureItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcedures(v)
		return nil
	case patientrecord.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case patientrecord.FieldRemarks:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemarks(v)
		return nil
	case patientrecord.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case patientrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patientrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PatientRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientRecordMutation) AddedFields() []string {
	var fields []string
	if m.addage != nil {
		fields = append(fields, patientrecord.FieldAge)
	}
	if m.addtotal_amount != nil {
		fields = append(fields, patientrecord.FieldTotalAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patientrecord.FieldAge:
		return m.AddedAge()
	case patientrecord.FieldTotalAmount:
		return m.AddedTotalAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patientrecord.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAge(v)
		return nil
	case patientrecord.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	}
	return fmt.Errorf("unknown PatientRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patientrecord.FieldAge) {
		fields = append(fields, patientrecord.FieldAge)
	}
	if m.FieldCleared(patientrecord.FieldGender) {
		fields = append(fields, patientrecord.FieldGender)
	}
	if m.FieldCleared(patientrecord.FieldNationality) {
		fields = append(fields, patientrecord.FieldNationality)
	}
	if m.FieldCleared(patientrecord.FieldPatientType) {
		fields = append(fields, patientrecord.FieldPatientType)
	}
	if m.FieldCleared(patientrecord.FieldInsuranceCompany) {
		fields = append(fields, patientrecord.FieldInsuranceCompany)
	}
	if m.FieldCleared(patientrecord.FieldRemarks) {
		fields = append(fields, patientrecord.FieldRemarks)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientRecordMutation) ClearField(name string) error {
	switch name {
	case patientrecord.FieldAge:
		m.ClearAge()
		return nil
	case patientrecord.FieldGender:
		m.ClearGender()
		return nil
	case patientrecord.FieldNationality:
		m.ClearNationality()
		return nil
	case patientrecord.FieldPatientType:
		m.ClearPatientType()
		return nil
	case patientrecord.FieldInsuranceCompany:
		m.ClearInsuranceCompany()
		return nil
	case patientrecord.FieldRemarks:
		m.ClearRemarks()
		return nil
	}
	return fmt.Errorf("unknown PatientRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientRecordMutation) ResetField(name string) error {
	switch name {
	case patientrecord.FieldProfileID:
		m.ResetProfileID()
		return nil
	case patientrecord.FieldVisitDate:
		m.ResetVisitDate()
		return nil
	case patientrecord.FieldPatientName:
		m.ResetPatientName()
		return nil
	case patientrecord.FieldFileNumber:
		m.ResetFileNumber()
		return nil
	case patientrecord.FieldAge:
		m.ResetAge()
		return nil
	case patientrecord.FieldGender:
		m.ResetGender()
		return nil
	case patientrecord.FieldNationality:
		m.ResetNationality()
		return nil
	case patientrecord.FieldPatientType:
		m.ResetPatientType()
		return nil
	case patientrecord.FieldPaymentType:
		m.ResetPaymentType()
		return nil
	case patientrecord.FieldInsuranceCompany:
		m.ResetInsuranceCompany()
		return nil
	case patientrecord.FieldProcedures:
		m.ResetProcedures()
		return nil
	case patientrecord.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case patientrecord.FieldRemarks:
		m.ResetRemarks()
		return nil
	case patientrecord.FieldSource:
		m.ResetSource()
		return nil
	case patientrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patientrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PatientRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.profile != nil {
		edges = append(edges, patientrecord.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patientrecord.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprofile {
		edges = append(edges, patientrecord.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case patientrecord.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientRecordMutation) ClearEdge(name string) error {
	switch name {
	case patientrecord.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown PatientRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientRecordMutation) ResetEdge(name string) error {
	switch name {
	case patientrecord.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown PatientRecord edge %s", name)
}

// ProcedureTemplateMutation represents an operation that mutates the ProcedureTemplate nodes in the graph.
type ProcedureTemplateMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	cash_price         *float64
	addcash_price      *float64
	insurance_price    *float64
	addinsurance_price *float64
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	profile            *uuid.UUID
	clearedprofile     bool
	done               bool
	oldValue           func(context.Context) (*ProcedureTemplate, error)
	predicates         []predicate.ProcedureTemplate
}

var _ ent.Mutation = (*ProcedureTemplateMutation)(nil)

// proceduretemplateOption allows management of the mutation configuration using functional options.
type proceduretemplateOption func(*ProcedureTemplateMutation)

// newProcedureTemplateMutation creates new mutation for the ProcedureTemplate entity.
func newProcedureTemplateMutation(c config, op Op, opts ...proceduretemplateOption) *ProcedureTemplateMutation {
	m := &ProcedureTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeProcedureTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcedureTemplateID sets the ID field of the mutation.
func withProcedureTemplateID(id uuid.UUID) proceduretemplateOption {
	return func(m *ProcedureTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcedureTemplate
		)
		m.oldValue = func(ctx context.Context) (*ProcedureTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcedureTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcedureTemplate sets the old ProcedureTemplate of the mutation.
func withProcedureTemplate(node *ProcedureTemplate) proceduretemplateOption {
	return func(m *ProcedureTemplateMutation) {
		m.oldValue = func(context.Context) (*ProcedureTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcedureTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcedureTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcedureTemplate entities.
func (m *ProcedureTemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcedureTemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcedureTemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcedureTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *ProcedureTemplateMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *ProcedureTemplateMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the ProcedureTemplate entity.
// If the ProcedureTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureTemplateMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *ProcedureTemplateMutation) ResetProfileID() {
	m.profile = nil
}

// SetName sets the "name" field.
func (m *ProcedureTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProcedureTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ProcedureTemplate entity.
// If the ProcedureTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProcedureTemplateMutation) ResetName() {
	m.name = nil
}

// SetCashPrice sets the "cash_price" field.
func (m *ProcedureTemplateMutation) SetCashPrice(f float64) {
	m.cash_price = &f
	m.addcash_price = nil
}

// CashPrice returns the value of the "cash_price" field in the mutation.
func (m *ProcedureTemplateMutation) CashPrice() (r float64, exists bool) {
	v := m.cash_price
	if v == nil {
		return
	}
	return *v, true
}

// OldCashPrice returns the old "cash_price" field's value of the ProcedureTemplate entity.
// If the ProcedureTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureTemplateMutation) OldCashPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCashPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCashPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCashPrice: %w", err)
	}
	return oldValue.CashPrice, nil
}

// AddCashPrice adds f to the "cash_price" field.
func (m *ProcedureTemplateMutation) AddCashPrice(f float64) {
	if m.addcash_price != nil {
		*m.addcash_price += f
	} else {
		m.addcash_price = &f
	}
}

// AddedCashPrice returns the value that was added to the "cash_price" field in this mutation.
func (m *ProcedureTemplateMutation) AddedCashPrice() (r float64, exists bool) {
	v := m.addcash_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetCashPrice resets all changes to the "cash_price" field.
func (m *ProcedureTemplateMutation) ResetCashPrice() {
	m.cash_price = nil
	m.addcash_price = nil
}

// SetInsurancePrice sets the "insurance_price" field.
func (m *ProcedureTemplateMutation) SetInsurancePrice(f float64) {
	m.insurance_price = &f
	m.addinsurance_price = nil
}

// InsurancePrice returns the value of the "insurance_price" field in the mutation.
func (m *ProcedureTemplateMutation) InsurancePrice() (r float64, exists bool) {
	v := m.insurance_price
	if v == nil {
		return
	}
	return *v, true
}

// OldInsurancePrice returns the old "insurance_price" field's value of the ProcedureTemplate entity.
// If the ProcedureTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureTemplateMutation) OldInsurancePrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsurancePrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsurancePrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsurancePrice: %w", err)
	}
	return oldValue.InsurancePrice, nil
}

// AddInsurancePrice adds f to the "insurance_price" field.
func (m *ProcedureTemplateMutation) AddInsurancePrice(f float64) {
	if m.addinsurance_price != nil {
		*m.addinsurance_price += f
	} else {
		m.addinsurance_price = &f
	}
}

// AddedInsurancePrice returns the value that was added to the "insurance_price" field in this mutation.
func (m *ProcedureTemplateMutation) AddedInsurancePrice() (r float64, exists bool) {
	v := m.addinsurance_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearInsurancePrice clears the value of the "insurance_price" field.
func (m *ProcedureTemplateMutation) ClearInsurancePrice() {
	m.insurance_price = nil
	m.addinsurance_price = nil
	m.clearedFields[proceduretemplate.FieldInsurancePrice] = struct{}{}
}

// InsurancePriceCleared returns if the "insurance_price" field was cleared in this mutation.
func (m *ProcedureTemplateMutation) InsurancePriceCleared() bool {
	_, ok := m.clearedFields[proceduretemplate.FieldInsurancePrice]
	return ok
}

// ResetInsurancePrice resets all changes to the "insurance_price" field.
func (m *ProcedureTemplateMutation) ResetInsurancePrice() {
	m.insurance_price = nil
	m.addinsurance_price = nil
	delete(m.clearedFields, proceduretemplate.FieldInsurancePrice)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcedureTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcedureTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcedureTemplate entity.
// If the ProcedureTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcedureTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProcedureTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProcedureTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProcedureTemplate entity.
// If the ProcedureTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcedureTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProcedureTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *ProcedureTemplateMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[proceduretemplate.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *ProcedureTemplateMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *ProcedureTemplateMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *ProcedureTemplateMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the ProcedureTemplateMutation builder.
func (m *ProcedureTemplateMutation) Where(ps ...predicate.ProcedureTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcedureTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcedureTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcedureTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcedureTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcedureTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcedureTemplate).
func (m *ProcedureTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcedureTemplateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.profile != nil {
		fields = append(fields, proceduretemplate.FieldProfileID)
	}
	if m.name != nil {
		fields = append(fields, proceduretemplate.FieldName)
	}
	if m.cash_price != nil {
		fields = append(fields, proceduretemplate.FieldCashPrice)
	}
	if m.insurance_price != nil {
		fields = append(fields, proceduretemplate.FieldInsurancePrice)
	}
	if m.created_at != nil {
		fields = append(fields, proceduretemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, proceduretemplate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcedureTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case proceduretemplate.FieldProfileID:
		return m.ProfileID()
	case proceduretemplate.FieldName:
		return m.Name()
	case proceduretemplate.FieldCashPrice:
		return m.CashPrice()
	case proceduretemplate.FieldInsurancePrice:
		return m.InsurancePrice()
	case proceduretemplate.FieldCreatedAt:
		return m.CreatedAt()
	case proceduretemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcedureTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case proceduretemplate.FieldProfileID:
		return m.OldProfileID(ctx)
	case proceduretemplate.FieldName:
		return m.OldName(ctx)
	case proceduretemplate.FieldCashPrice:
		return m.OldCashPrice(ctx)
	case proceduretemplate.FieldInsurancePrice:
		return m.OldInsurancePrice(ctx)
	case proceduretemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case proceduretemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcedureTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcedureTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case proceduretemplate.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case proceduretemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case proceduretemplate.FieldCashPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCashPrice(v)
		return nil
	case proceduretemplate.FieldInsurancePrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsurancePrice(v)
		return nil
	case proceduretemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case proceduretemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcedureTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcedureTemplateMutation) AddedFields() []string {
	var fields []string
	if m.addcash_price != nil {
		fields = append(fields, proceduretemplate.FieldCashPrice)
	}
	if m.addinsurance_price != nil {
		fields = append(fields, proceduretemplate.FieldInsurancePrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcedureTemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case proceduretemplate.FieldCashPrice:
		return m.AddedCashPrice()
	case proceduretemplate.FieldInsurancePrice:
		return m.AddedInsurancePrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcedureTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case proceduretemplate.FieldCashPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCashPrice(v)
		return nil
	case proceduretemplate.FieldInsurancePrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInsurancePrice(v)
		return nil
	}
	return fmt.Errorf("unknown ProcedureTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcedureTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(proceduretemplate.FieldInsurancePrice) {
		fields = append(fields, proceduretemplate.FieldInsurancePrice)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcedureTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcedureTemplateMutation) ClearField(name string) error {
	switch name {
	case proceduretemplate.FieldInsurancePrice:
		m.ClearInsurancePrice()
		return nil
	}
	return fmt.Errorf("unknown ProcedureTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcedureTemplateMutation) ResetField(name string) error {
	switch name {
	case proceduretemplate.FieldProfileID:
		m.ResetProfileID()
		return nil
	case proceduretemplate.FieldName:
		m.ResetName()
		return nil
	case proceduretemplate.FieldCashPrice:
		m.ResetCashPrice()
		return nil
	case proceduretemplate.FieldInsurancePrice:
		m.ResetInsurancePrice()
		return nil
	case proceduretemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case proceduretemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcedureTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcedureTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.profile != nil {
		edges = append(edges, proceduretemplate.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcedureTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case proceduretemplate.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcedureTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcedureTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcedureTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprofile {
		edges = append(edges, proceduretemplate.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcedureTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case proceduretemplate.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcedureTemplateMutation) ClearEdge(name string) error {
	switch name {
	case proceduretemplate.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown ProcedureTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcedureTemplateMutation) ResetEdge(name string) error {
	switch name {
	case proceduretemplate.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown ProcedureTemplate edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	clinic_name      *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	records          map[uuid.UUID]struct{}
	removedrecords   map[uuid.UUID]struct{}
	clearedrecords   bool
	templates        map[uuid.UUID]struct{}
	removedtemplates map[uuid.UUID]struct{}
	clearedtemplates bool
	done             bool
	oldValue         func(context.Context) (*Profile, error)
	predicates       []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id uuid.UUID) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProfileMutation) ResetName() {
	m.name = nil
}

// SetClinicName sets the "clinic_name" field.
func (m *ProfileMutation) SetClinicName(s string) {
	m.clinic_name = &s
}

// ClinicName returns the value of the "clinic_name" field in the mutation.
func (m *ProfileMutation) ClinicName() (r string, exists bool) {
	v := m.clinic_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicName returns the old "clinic_name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldClinicName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicName: %w", err)
	}
	return oldValue.ClinicName, nil
}

// ClearClinicName clears the value of the "clinic_name" field.
func (m *ProfileMutation) ClearClinicName() {
	m.clinic_name = nil
	m.clearedFields[profile.FieldClinicName] = struct{}{}
}

// ClinicNameCleared returns if the "clinic_name" field was cleared in this mutation.
func (m *ProfileMutation) ClinicNameCleared() bool {
	_, ok := m.clearedFields[profile.FieldClinicName]
	return ok
}

// ResetClinicName resets all changes to the "clinic_name" field.
func (m *ProfileMutation) ResetClinicName() {
	m.clinic_name = nil
	delete(m.clearedFields, profile.FieldClinicName)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRecordIDs adds the "records" edge to the PatientRecord entity by ids.
func (m *ProfileMutation) AddRecordIDs(ids ...uuid.UUID) {
	if m.records == nil {
		m.records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the PatientRecord entity.
func (m *ProfileMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the PatientRecord entity was cleared.
func (m *ProfileMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the PatientRecord entity by IDs.
func (m *ProfileMutation) RemoveRecordIDs(ids ...uuid.UUID) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the PatientRecord entity.
func (m *ProfileMutation) RemovedRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *ProfileMutation) RecordsIDs() (ids []uuid.UUID) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *ProfileMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// AddTemplateIDs adds the "templates" edge to the ProcedureTemplate entity by ids.
func (m *ProfileMutation) AddTemplateIDs(ids ...uuid.UUID) {
	if m.templates == nil {
		m.templates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.templates[ids[i]] = struct{}{}
	}
}

// ClearTemplates clears the "templates" edge to the ProcedureTemplate entity.
func (m *ProfileMutation) ClearTemplates() {
	m.clearedtemplates = true
}

// TemplatesCleared reports if the "templates" edge to the ProcedureTemplate entity was cleared.
func (m *ProfileMutation) TemplatesCleared() bool {
	return m.clearedtemplates
}

// RemoveTemplateIDs removes the "templates" edge to the ProcedureTemplate entity by IDs.
func (m *ProfileMutation) RemoveTemplateIDs(ids ...uuid.UUID) {
	if m.removedtemplates == nil {
		m.removedtemplates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.templates, ids[i])
		m.removedtemplates[ids[i]] = struct{}{}
	}
}

// RemovedTemplates returns the removed IDs of the "templates" edge to the ProcedureTemplate entity.
func (m *ProfileMutation) RemovedTemplatesIDs() (ids []uuid.UUID) {
	for id := range m.removedtemplates {
		ids = append(ids, id)
	}
	return
}

// TemplatesIDs returns the "templates" edge IDs in the mutation.
func (m *ProfileMutation) TemplatesIDs() (ids []uuid.UUID) {
	for id := range m.templates {
		ids = append(ids, id)
	}
	return
}

// ResetTemplates resets all changes to the "templates" edge.
func (m *ProfileMutation) ResetTemplates() {
	m.templates = nil
	m.clearedtemplates = false
	m.removedtemplates = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, profile.FieldName)
	}
	if m.clinic_name != nil {
		fields = append(fields, profile.FieldClinicName)
	}
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldName:
		return m.Name()
	case profile.FieldClinicName:
		return m.ClinicName()
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldName:
		return m.OldName(ctx)
	case profile.FieldClinicName:
		return m.OldClinicName(ctx)
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case profile.FieldClinicName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicName(v)
		return nil
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profile.FieldClinicName) {
		fields = append(fields, profile.FieldClinicName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	switch name {
	case profile.FieldClinicName:
		m.ClearClinicName()
		return nil
	}
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldName:
		m.ResetName()
		return nil
	case profile.FieldClinicName:
		m.ResetClinicName()
		return nil
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.records != nil {
		edges = append(edges, profile.EdgeRecords)
	}
	if m.templates != nil {
		edges = append(edges, profile.EdgeTemplates)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.templates))
		for id := range m.templates {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrecords != nil {
		edges = append(edges, profile.EdgeRecords)
	}
	if m.removedtemplates != nil {
		edges = append(edges, profile.EdgeTemplates)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.removedtemplates))
		for id := range m.removedtemplates {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrecords {
		edges = append(edges, profile.EdgeRecords)
	}
	if m.clearedtemplates {
		edges = append(edges, profile.EdgeTemplates)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case profile.EdgeRecords:
		return m.clearedrecords
	case profile.EdgeTemplates:
		return m.clearedtemplates
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	switch name {
	case profile.EdgeRecords:
		m.ResetRecords()
		return nil
	case profile.EdgeTemplates:
		m.ResetTemplates()
		return nil
	}
	return fmt.Errorf("unknown Profile edge %s", name)
}
