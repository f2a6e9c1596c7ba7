package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/patientrecord"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/common"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

// PatientRepository is the store surface for patient records. The OCR commit
// path only uses Create; the dashboard collaborators use the rest.
type PatientRepository interface {
	Create(ctx context.Context, profileID uuid.UUID, rec *entity.PatientRecord) (*entity.PatientRecord, error)
	GetByID(ctx context.Context, profileID, id uuid.UUID) (*entity.PatientRecord, error)
	List(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.PatientRecord, error)
	Update(ctx context.Context, profileID uuid.UUID, rec *entity.PatientRecord) (*entity.PatientRecord, error)
	Delete(ctx context.Context, profileID, id uuid.UUID) error
}

type patientRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPatientRepository(client *ent.Client, logger *slog.Logger) PatientRepository {
	return &patientRepository{
		client: client,
		logger: logger,
	}
}

func (r *patientRepository) Create(ctx context.Context, profileID uuid.UUID, rec *entity.PatientRecord) (*entity.PatientRecord, error) {
	builder := r.client.PatientRecord.Create().
		SetProfileID(profileID).
		SetVisitDate(rec.VisitDate).
		SetPatientName(rec.PatientName).
		SetFileNumber(rec.FileNumber).
		SetPaymentType(rec.PaymentType).
		SetProcedures(rec.Procedures).
		SetTotalAmount(rec.TotalAmount).
		SetNillableAge(rec.Age).
		SetNillableNationality(rec.Nationality).
		SetNillableInsuranceCompany(rec.InsuranceCompany)

	if rec.Gender != "" {
		builder = builder.SetGender(rec.Gender)
	}
	if rec.PatientType != "" {
		builder = builder.SetPatientType(rec.PatientType)
	}
	if rec.Remarks != "" {
		builder = builder.SetRemarks(rec.Remarks)
	}
	if rec.Source != "" {
		builder = builder.SetSource(rec.Source)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create patient record",
			"profile_id", profileID, "file_number", rec.FileNumber, "error", err)
		return nil, err
	}
	return toPatientRecord(row), nil
}

func (r *patientRepository) GetByID(ctx context.Context, profileID, id uuid.UUID) (*entity.PatientRecord, error) {
	row, err := r.client.PatientRecord.Query().
		Where(patientrecord.ID(id), patientrecord.ProfileID(profileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toPatientRecord(row), nil
}

func (r *patientRepository) List(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.PatientRecord, error) {
	q := r.client.PatientRecord.Query().Where(patientrecord.ProfileID(profileID))
	if fromDate != nil {
		q = q.Where(patientrecord.VisitDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(patientrecord.VisitDateLTE(*toDate))
	}
	rows, err := q.Order(patientrecord.ByVisitDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list patient records", "profile_id", profileID, "error", err)
		return nil, err
	}

	result := make([]*entity.PatientRecord, len(rows))
	for i, row := range rows {
		result[i] = toPatientRecord(row)
	}
	return result, nil
}

func (r *patientRepository) Update(ctx context.Context, profileID uuid.UUID, rec *entity.PatientRecord) (*entity.PatientRecord, error) {
	// ownership check before mutating
	if _, err := r.GetByID(ctx, profileID, rec.ID); err != nil {
		return nil, err
	}

	builder := r.client.PatientRecord.UpdateOneID(rec.ID).
		SetVisitDate(rec.VisitDate).
		SetPatientName(rec.PatientName).
		SetFileNumber(rec.FileNumber).
		SetPaymentType(rec.PaymentType).
		SetProcedures(rec.Procedures).
		SetTotalAmount(rec.TotalAmount).
		SetNillableAge(rec.Age).
		SetNillableNationality(rec.Nationality).
		SetNillableInsuranceCompany(rec.InsuranceCompany).
		SetGender(rec.Gender).
		SetPatientType(rec.PatientType).
		SetRemarks(rec.Remarks)

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update patient record",
			"profile_id", profileID, "record_id", rec.ID, "error", err)
		return nil, err
	}
	return toPatientRecord(row), nil
}

func (r *patientRepository) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	n, err := r.client.PatientRecord.Delete().
		Where(patientrecord.ID(id), patientrecord.ProfileID(profileID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete patient record",
			"profile_id", profileID, "record_id", id, "error", err)
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func toPatientRecord(row *ent.PatientRecord) *entity.PatientRecord {
	return &entity.PatientRecord{
		ID:               row.ID,
		ProfileID:        row.ProfileID,
		VisitDate:        row.VisitDate,
		PatientName:      row.PatientName,
		FileNumber:       row.FileNumber,
		Age:              row.Age,
		Gender:           row.Gender,
		Nationality:      row.Nationality,
		PatientType:      row.PatientType,
		PaymentType:      row.PaymentType,
		InsuranceCompany: row.InsuranceCompany,
		Procedures:       row.Procedures,
		TotalAmount:      row.TotalAmount,
		Remarks:          row.Remarks,
		Source:           row.Source,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
