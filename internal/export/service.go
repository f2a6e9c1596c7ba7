package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/repository"
)

// Service is a tiny façade over the record repository that produces XLSX
// bytes for dashboard exports.
type Service struct {
	records repository.PatientRepository
	logger  *slog.Logger
}

func NewService(records repository.PatientRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, logger: logger}
}

// ExportRecordsXLSX returns an XLSX workbook (as bytes) for the given profile
// and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all records for profile.
func (s *Service) ExportRecordsXLSX(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	recs, err := s.records.List(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Patients"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Visit Date",
		"Patient Name",
		"File Number",
		"Age",
		"Gender",
		"Patient Type",
		"Payment Type",
		"Insurance Company",
		"Procedures",
		"Total Amount",
		"Remarks",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if !r.VisitDate.IsZero() {
			write(1, r.VisitDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, r.PatientName)
		write(3, r.FileNumber)
		if r.Age != nil {
			write(4, *r.Age)
		}
		write(5, r.Gender)
		write(6, r.PatientType)
		write(7, r.PaymentType)
		if r.InsuranceCompany != nil {
			write(8, *r.InsuranceCompany)
		}
		write(9, joinProcedures(r.Procedures))
		write(10, r.TotalAmount)
		write(11, truncate(r.Remarks, 140))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 28) // name
	_ = f.SetColWidth(sheet, "C", "C", 14) // file number
	_ = f.SetColWidth(sheet, "G", "H", 18) // payment / insurance
	_ = f.SetColWidth(sheet, "I", "I", 48) // procedures
	_ = f.SetColWidth(sheet, "K", "K", 40) // remarks

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func joinProcedures(items []entity.ProcedureItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (%.2f)", it.Name, it.FinalAmount))
	}
	return strings.Join(parts, ", ")
}

// truncate cuts on rune boundaries; remarks may carry Arabic names.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
