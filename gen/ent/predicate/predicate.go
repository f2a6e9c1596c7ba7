// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// PatientRecord is the predicate function for patientrecord builders.
type PatientRecord func(*sql.Selector)

// ProcedureTemplate is the predicate function for proceduretemplate builders.
type ProcedureTemplate func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
