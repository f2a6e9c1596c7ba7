package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the clinic owner namespace all records live under.
type Profile struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	ClinicName *string   `json:"clinic_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProcedureTemplate is a clinic-defined, priced procedure definition used to
// disambiguate free-text procedure names.
type ProcedureTemplate struct {
	ID             uuid.UUID `json:"id"`
	ProfileID      uuid.UUID `json:"profile_id"`
	Name           string    `json:"name"`
	CashPrice      float64   `json:"cash_price"`
	InsurancePrice *float64  `json:"insurance_price,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
