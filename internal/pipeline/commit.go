package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dentistnoor/DentistFriend-V2-sub000/constants"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

// PatientCreator is the single store capability the commit path uses.
type PatientCreator interface {
	Create(ctx context.Context, profileID uuid.UUID, rec *entity.PatientRecord) (*entity.PatientRecord, error)
}

// TemplateFinder resolves a freehand procedure name to a clinic template, if
// one matches.
type TemplateFinder interface {
	FindByName(ctx context.Context, profileID uuid.UUID, name string) (*entity.ProcedureTemplate, error)
}

// CommitResult summarizes one commit operation.
type CommitResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Commit persists accepted staged records as patient records, one independent
// store create per record. Records missing a name or file number are skipped,
// not fatal. A store write error fails the whole operation; records already
// written stay written (no rollback).
type Commit struct {
	patients  PatientCreator
	templates TemplateFinder
	logger    *slog.Logger
}

func NewCommit(patients PatientCreator, templates TemplateFinder, logger *slog.Logger) *Commit {
	if logger == nil {
		logger = slog.Default()
	}
	return &Commit{patients: patients, templates: templates, logger: logger}
}

func (c *Commit) Run(ctx context.Context, profileID uuid.UUID, staged []entity.StagedPatientRecord) (CommitResult, error) {
	var res CommitResult

	for i, s := range staged {
		rec, ok := c.buildRecord(ctx, profileID, i, s)
		if !ok {
			res.Skipped++
			continue
		}

		if _, err := c.patients.Create(ctx, profileID, rec); err != nil {
			c.logger.Error("pipeline.commit.write_failed",
				"profile_id", profileID, "index", i, "file_number", s.FileNumber, "error", err)
			return res, fmt.Errorf("persist record %d: %w", i, err)
		}
		res.Created++
	}

	c.logger.Info("pipeline.commit.done",
		"profile_id", profileID, "created", res.Created, "skipped", res.Skipped)
	return res, nil
}

func (c *Commit) buildRecord(ctx context.Context, profileID uuid.UUID, idx int, s entity.StagedPatientRecord) (*entity.PatientRecord, bool) {
	if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.FileNumber) == "" {
		c.logger.Warn("pipeline.commit.skip_incomplete",
			"profile_id", profileID, "index", idx, "name", s.Name, "file_number", s.FileNumber)
		return nil, false
	}

	visitDate, err := DisplayDateToISO(s.VisitDate)
	if err != nil {
		c.logger.Warn("pipeline.commit.skip_bad_date",
			"profile_id", profileID, "index", idx, "visit_date", s.VisitDate, "error", err)
		return nil, false
	}

	proc := c.resolveProcedure(ctx, profileID, s.Procedure)
	item := proc.Item(s.Amount)

	rec := &entity.PatientRecord{
		VisitDate:   visitDate,
		PatientName: strings.TrimSpace(s.Name),
		FileNumber:  strings.TrimSpace(s.FileNumber),
		Gender:      s.Gender,
		PatientType: s.PatientType,
		PaymentType: s.PaymentType,
		Procedures:  []entity.ProcedureItem{item},
		TotalAmount: s.Amount,
		Source:      string(constants.RecordSourceOCR),
	}
	if s.Age > 0 {
		age := s.Age
		rec.Age = &age
	}
	if s.PaymentType == string(constants.PaymentTypeInsurance) && s.InsuranceCompany != "" {
		ic := s.InsuranceCompany
		rec.InsuranceCompany = &ic
	}
	// Nationality is extracted but intentionally not carried into the
	// persisted shape; see the review flag in DESIGN.md.
	return rec, true
}

// resolveProcedure tags the line as a template reference when the clinic has
// a priced template under the same name, and as free text otherwise. The OCR
// row amount always wins over template pricing. A blank cell stays blank;
// the extraction rules forbid fabricating values the ledger never held.
func (c *Commit) resolveProcedure(ctx context.Context, profileID uuid.UUID, name string) entity.Procedure {
	display := TitleCaseProcedure(name)
	if display != "" && c.templates != nil {
		if tpl, err := c.templates.FindByName(ctx, profileID, display); err == nil && tpl != nil {
			return entity.TemplateProcedure(tpl.ID, tpl.Name)
		}
	}
	return entity.FreeTextProcedure(display)
}
