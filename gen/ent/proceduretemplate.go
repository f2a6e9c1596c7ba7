// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/proceduretemplate"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/profile"
	"github.com/google/uuid"
)

// ProcedureTemplate is the model entity for the ProcedureTemplate schema.
type ProcedureTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CashPrice holds the value of the "cash_price" field.
	CashPrice float64 `json:"cash_price,omitempty"`
	// InsurancePrice holds the value of the "insurance_price" field.
	InsurancePrice *float64 `json:"insurance_price,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProcedureTemplateQuery when eager-loading is set.
	Edges        ProcedureTemplateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProcedureTemplateEdges holds the relations/edges for other nodes in the graph.
type ProcedureTemplateEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProcedureTemplateEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcedureTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case proceduretemplate.FieldCashPrice, proceduretemplate.FieldInsurancePrice:
			values[i] = new(sql.NullFloat64)
		case proceduretemplate.FieldName:
			values[i] = new(sql.NullString)
		case proceduretemplate.FieldCreatedAt, proceduretemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case proceduretemplate.FieldID, proceduretemplate.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcedureTemplate fields.
func (_m *ProcedureTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case proceduretemplate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case proceduretemplate.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case proceduretemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case proceduretemplate.FieldCashPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cash_price", values[i])
			} else if value.Valid {
				_m.CashPrice = value.Float64
			}
		case proceduretemplate.FieldInsurancePrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field insurance_price", values[i])
			} else if value.Valid {
				_m.InsurancePrice = new(float64)
				*_m.InsurancePrice = value.Float64
			}
		case proceduretemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case proceduretemplate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ProcedureTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *ProcedureTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the ProcedureTemplate entity.
func (_m *ProcedureTemplate) QueryProfile() *ProfileQuery {
	return NewProcedureTemplateClient(_m.config).QueryProfile(_m)
}

// Update returns a builder for updating this ProcedureTemplate.
// Note that you need to call ProcedureTemplate.Unwrap() before calling this method if this ProcedureTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcedureTemplate) Update() *ProcedureTemplateUpdateOne {
	return NewProcedureTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcedureTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcedureTemplate) Unwrap() *ProcedureTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcedureTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcedureTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("ProcedureTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("cash_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.CashPrice))
	builder.WriteString(", ")
	if v := _m.InsurancePrice; v != nil {
		builder.WriteString("insurance_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProcedureTemplates is a parsable slice of ProcedureTemplate.
type ProcedureTemplates []*ProcedureTemplate
