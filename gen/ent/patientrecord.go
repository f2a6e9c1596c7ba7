// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/patientrecord"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/profile"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
	"github.com/google/uuid"
)

// PatientRecord is the model entity for the PatientRecord schema.
type PatientRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// VisitDate holds the value of the "visit_date" field.
	VisitDate time.Time `json:"visit_date,omitempty"`
	// PatientName holds the value of the "patient_name" field.
	PatientName string `json:"patient_name,omitempty"`
	// FileNumber holds the value of the "file_number" field.
	FileNumber string `json:"file_number,omitempty"`
	// Age holds the value of the "age" field.
	Age *int `json:"age,omitempty"`
	// Gender holds the value of the "gender" field.
	Gender string `json:"gender,omitempty"`
	// Nationality holds the value of the "nationality" field.
	Nationality *string `json:"nationality,omitempty"`
	// PatientType holds the value of the "patient_type" field.
	PatientType string `json:"patient_type,omitempty"`
	// PaymentType holds the value of the "payment_type" field.
	PaymentType string `json:"payment_type,omitempty"`
	// InsuranceCompany holds the value of the "insurance_company" field.
	InsuranceCompany *string `json:"insurance_company,omitempty"`
	// Procedures holds the value of the "procedures" field.
	Procedures []entity.ProcedureItem `json:"procedures,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount float64 `json:"total_amount,omitempty"`
	// Remarks holds the value of the "remarks" field.
	Remarks string `json:"remarks,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientRecordQuery when eager-loading is set.
	Edges        PatientRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientRecordEdges holds the relations/edges for other nodes in the graph.
type PatientRecordEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientRecordEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatientRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patientrecord.FieldProcedures:
			values[i] = new([]byte)
		case patientrecord.FieldTotalAmount:
			values[i] = new(sql.NullFloat64)
		case patientrecord.FieldAge:
			values[i] = new(sql.NullInt64)
		case patientrecord.FieldPatientName, patientrecord.FieldFileNumber, patientrecord.FieldGender, patientrecord.FieldNationality, patientrecord.FieldPatientType, patientrecord.FieldPaymentType, patientrecord.FieldInsuranceCompany, patientrecord.FieldRemarks, patientrecord.FieldSource:
			values[i] = new(sql.NullString)
		case patientrecord.FieldVisitDate, patientrecord.FieldCreatedAt, patientrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case patientrecord.FieldID, patientrecord.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatientRecord fields.
func (_m *PatientRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patientrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patientrecord.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case patientrecord.FieldVisitDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field visit_date", values[i])
			} else if value.Valid {
				_m.VisitDate = value.Time
			}
		case patientrecord.FieldPatientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_name", values[i])
			} else if value.Valid {
				_m.PatientName = value.String
			}
		case patientrecord.FieldFileNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_number", values[i])
			} else if value.Valid {
				_m.FileNumber = value.String
			}
		case patientrecord.FieldAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field age", values[i])
			} else if value.Valid {
				_m.Age = new(int)
				*_m.Age = int(value.Int64)
			}
		case patientrecord.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = value.String
			}
		case patientrecord.FieldNationality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nationality", values[i])
			} else if value.Valid {
				_m.Nationality = new(string)
				*_m.Nationality = value.String
			}
		case patientrecord.FieldPatientType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_type", values[i])
			} else if value.Valid {
				_m.PatientType = value.String
			}
		case patientrecord.FieldPaymentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_type", values[i])
			} else if value.Valid {
				_m.PaymentType = value.String
			}
		case patientrecord.FieldInsuranceCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_company", values[i])
			} else if value.Valid {
				_m.InsuranceCompany = new(string)
				*_m.InsuranceCompany = value.String
			}
		case patientrecord.FieldProcedures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field procedures", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Procedures); err != nil {
					return fmt.Errorf("unmarshal field procedures: %w", err)
				}
			}
		case patientrecord.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.Float64
			}
		case patientrecord.FieldRemarks:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remarks", values[i])
			} else if value.Valid {
				_m.Remarks = value.String
			}
		case patientrecord.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case patientrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patientrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PatientRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PatientRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the PatientRecord entity.
func (_m *PatientRecord) QueryProfile() *ProfileQuery {
	return NewPatientRecordClient(_m.config).QueryProfile(_m)
}

// Update returns a builder for updating this PatientRecord.
// Note that you need to call PatientRecord.Unwrap() before calling this method if this PatientRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatientRecord) Update() *PatientRecordUpdateOne {
	return NewPatientRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatientRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatientRecord) Unwrap() *PatientRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PatientRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatientRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PatientRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("visit_date=")
	builder.WriteString(_m.VisitDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_name=")
	builder.WriteString(_m.PatientName)
	builder.WriteString(", ")
	builder.WriteString("file_number=")
	builder.WriteString(_m.FileNumber)
	builder.WriteString(", ")
	if v := _m.Age; v != nil {
		builder.WriteString("age=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("gender=")
	builder.WriteString(_m.Gender)
	builder.WriteString(", ")
	if v := _m.Nationality; v != nil {
		builder.WriteString("nationality=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("patient_type=")
	builder.WriteString(_m.PatientType)
	builder.WriteString(", ")
	builder.WriteString("payment_type=")
	builder.WriteString(_m.PaymentType)
	builder.WriteString(", ")
	if v := _m.InsuranceCompany; v != nil {
		builder.WriteString("insurance_company=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("procedures=")
	builder.WriteString(fmt.Sprintf("%v", _m.Procedures))
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("remarks=")
	builder.WriteString(_m.Remarks)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PatientRecords is a parsable slice of PatientRecord.
type PatientRecords []*PatientRecord
