package constants

// PatientType distinguishes first visits from followups on a record.
type PatientType string

const (
	PatientTypeNew      PatientType = "New"
	PatientTypeFollowup PatientType = "Followup"
)

// PaymentType determines whether insurance pricing applies to a record.
type PaymentType string

const (
	PaymentTypeCash      PaymentType = "Cash"
	PaymentTypeInsurance PaymentType = "Insurance"
)

// RecordSource marks how a patient record entered the store.
type RecordSource string

const (
	RecordSourceOCR    RecordSource = "OCR"
	RecordSourceManual RecordSource = "MANUAL"
)
