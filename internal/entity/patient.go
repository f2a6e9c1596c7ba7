package entity

import (
	"time"

	"github.com/google/uuid"
)

// RawPatientEntry is one patient row exactly as the vision model emitted it.
// Every field is untrusted; FileNumber and Amount may arrive as numbers,
// strings, or null.
type RawPatientEntry struct {
	Name        string `json:"name"`
	FileNumber  any    `json:"file_number"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
	Procedure   string `json:"procedure"`
	Amount      any    `json:"amount"`
}

// LedgerExtraction is the raw per-image result: one visit date read from the
// page header, echoed onto every patient row extracted from that image.
type LedgerExtraction struct {
	VisitDate string            `json:"visit_date"`
	Patients  []RawPatientEntry `json:"patients"`
}

// StagedPatientRecord is a normalized, human-reviewable, not-yet-persisted
// patient entry. VisitDate carries the DD/MM/YYYY display form; it converts
// to ISO on commit.
type StagedPatientRecord struct {
	VisitDate        string  `json:"visitDate"`
	Name             string  `json:"name"`
	FileNumber       string  `json:"file_number"`
	Age              int     `json:"age,omitempty"`
	Gender           string  `json:"gender,omitempty"`
	Nationality      string  `json:"nationality,omitempty"`
	PatientType      string  `json:"patientType,omitempty"`
	PaymentType      string  `json:"paymentType"`
	InsuranceCompany string  `json:"insuranceCompany,omitempty"`
	Procedure        string  `json:"procedure,omitempty"`
	Amount           float64 `json:"amount"`
}

// PatientRecord is the canonical persisted shape, shared with manual entry.
type PatientRecord struct {
	ID               uuid.UUID       `json:"id"`
	ProfileID        uuid.UUID       `json:"profile_id"`
	VisitDate        time.Time       `json:"visitDate"`
	PatientName      string          `json:"patientName"`
	FileNumber       string          `json:"fileNumber"`
	Age              *int            `json:"age,omitempty"`
	Gender           string          `json:"gender,omitempty"`
	Nationality      *string         `json:"nationality,omitempty"`
	PatientType      string          `json:"patientType,omitempty"`
	PaymentType      string          `json:"type"`
	InsuranceCompany *string         `json:"insuranceCompany,omitempty"`
	Procedures       []ProcedureItem `json:"procedures"`
	TotalAmount      float64         `json:"totalAmount"`
	Remarks          string          `json:"remarks"`
	Source           string          `json:"source"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ProcedureItem is one priced line on a patient record. TemplateID is set
// when the line was matched to a clinic template; OCR-derived lines leave it
// nil and keep the freehand name.
type ProcedureItem struct {
	TemplateID  *uuid.UUID `json:"templateId,omitempty"`
	Name        string     `json:"name"`
	Price       float64    `json:"price"`
	Discount    float64    `json:"discount"`
	FinalAmount float64    `json:"finalAmount"`
}
