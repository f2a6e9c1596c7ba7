// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dentistnoor/DentistFriend-V2-sub000/db/ent/schema"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/patientrecord"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/proceduretemplate"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/profile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	patientrecordFields := schema.PatientRecord{}.Fields()
	_ = patientrecordFields
	// patientrecordDescPatientName is the schema descriptor for patient_name field.
	patientrecordDescPatientName := patientrecordFields[3].Descriptor()
	// patientrecord.PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	patientrecord.PatientNameValidator = patientrecordDescPatientName.Validators[0].(func(string) error)
	// patientrecordDescFileNumber is the schema descriptor for file_number field.
	patientrecordDescFileNumber := patientrecordFields[4].Descriptor()
	// patientrecord.FileNumberValidator is a validator for the "file_number" field. It is called by the builders before save.
	patientrecord.FileNumberValidator = patientrecordDescFileNumber.Validators[0].(func(string) error)
	// patientrecordDescAge is the schema descriptor for age field.
	patientrecordDescAge := patientrecordFields[5].Descriptor()
	// patientrecord.AgeValidator is a validator for the "age" field. It is called by the builders before save.
	patientrecord.AgeValidator = patientrecordDescAge.Validators[0].(func(int) error)
	// patientrecordDescPatientType is the schema descriptor for patient_type field.
	patientrecordDescPatientType := patientrecordFields[8].Descriptor()
	// patientrecord.PatientTypeValidator is a validator for the "patient_type" field. It is called by the builders before save.
	patientrecord.PatientTypeValidator = patientrecordDescPatientType.Validators[0].(func(string) error)
	// patientrecordDescPaymentType is the schema descriptor for payment_type field.
	patientrecordDescPaymentType := patientrecordFields[9].Descriptor()
	// patientrecord.PaymentTypeValidator is a validator for the "payment_type" field. It is called by the builders before save.
	patientrecord.PaymentTypeValidator = patientrecordDescPaymentType.Validators[0].(func(string) error)
	// patientrecordDescSource is the schema descriptor for source field.
	patientrecordDescSource := patientrecordFields[14].Descriptor()
	// patientrecord.DefaultSource holds the default value on creation for the source field.
	patientrecord.DefaultSource = patientrecordDescSource.Default.(string)
	// patientrecord.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	patientrecord.SourceValidator = patientrecordDescSource.Validators[0].(func(string) error)
	// patientrecordDescCreatedAt is the schema descriptor for created_at field.
	patientrecordDescCreatedAt := patientrecordFields[15].Descriptor()
	// patientrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientrecord.DefaultCreatedAt = patientrecordDescCreatedAt.Default.(func() time.Time)
	// patientrecordDescUpdatedAt is the schema descriptor for updated_at field.
	patientrecordDescUpdatedAt := patientrecordFields[16].Descriptor()
	// patientrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patientrecord.DefaultUpdatedAt = patientrecordDescUpdatedAt.Default.(func() time.Time)
	// patientrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patientrecord.UpdateDefaultUpdatedAt = patientrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientrecordDescID is the schema descriptor for id field.
	patientrecordDescID := patientrecordFields[0].Descriptor()
	// patientrecord.DefaultID holds the default value on creation for the id field.
	patientrecord.DefaultID = patientrecordDescID.Default.(func() uuid.UUID)
	proceduretemplateFields := schema.ProcedureTemplate{}.Fields()
	_ = proceduretemplateFields
	// proceduretemplateDescName is the schema descriptor for name field.
	proceduretemplateDescName := proceduretemplateFields[2].Descriptor()
	// proceduretemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	proceduretemplate.NameValidator = proceduretemplateDescName.Validators[0].(func(string) error)
	// proceduretemplateDescCreatedAt is the schema descriptor for created_at field.
	proceduretemplateDescCreatedAt := proceduretemplateFields[5].Descriptor()
	// proceduretemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	proceduretemplate.DefaultCreatedAt = proceduretemplateDescCreatedAt.Default.(func() time.Time)
	// proceduretemplateDescUpdatedAt is the schema descriptor for updated_at field.
	proceduretemplateDescUpdatedAt := proceduretemplateFields[6].Descriptor()
	// proceduretemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	proceduretemplate.DefaultUpdatedAt = proceduretemplateDescUpdatedAt.Default.(func() time.Time)
	// proceduretemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	proceduretemplate.UpdateDefaultUpdatedAt = proceduretemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// proceduretemplateDescID is the schema descriptor for id field.
	proceduretemplateDescID := proceduretemplateFields[0].Descriptor()
	// proceduretemplate.DefaultID holds the default value on creation for the id field.
	proceduretemplate.DefaultID = proceduretemplateDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[3].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[4].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
}
