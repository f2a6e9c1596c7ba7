package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/proceduretemplate"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/common"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

// TemplateRepository is the store surface for the clinic's priced procedure
// catalog.
type TemplateRepository interface {
	Create(ctx context.Context, profileID uuid.UUID, tpl *entity.ProcedureTemplate) (*entity.ProcedureTemplate, error)
	List(ctx context.Context, profileID uuid.UUID) ([]*entity.ProcedureTemplate, error)
	FindByName(ctx context.Context, profileID uuid.UUID, name string) (*entity.ProcedureTemplate, error)
	Update(ctx context.Context, profileID uuid.UUID, tpl *entity.ProcedureTemplate) (*entity.ProcedureTemplate, error)
	Delete(ctx context.Context, profileID, id uuid.UUID) error
}

type templateRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTemplateRepository(client *ent.Client, logger *slog.Logger) TemplateRepository {
	return &templateRepository{
		client: client,
		logger: logger,
	}
}

func (r *templateRepository) Create(ctx context.Context, profileID uuid.UUID, tpl *entity.ProcedureTemplate) (*entity.ProcedureTemplate, error) {
	row, err := r.client.ProcedureTemplate.Create().
		SetProfileID(profileID).
		SetName(tpl.Name).
		SetCashPrice(tpl.CashPrice).
		SetNillableInsurancePrice(tpl.InsurancePrice).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create procedure template",
			"profile_id", profileID, "name", tpl.Name, "error", err)
		return nil, err
	}
	return toTemplate(row), nil
}

func (r *templateRepository) List(ctx context.Context, profileID uuid.UUID) ([]*entity.ProcedureTemplate, error) {
	rows, err := r.client.ProcedureTemplate.Query().
		Where(proceduretemplate.ProfileID(profileID)).
		Order(proceduretemplate.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list procedure templates", "profile_id", profileID, "error", err)
		return nil, err
	}
	result := make([]*entity.ProcedureTemplate, len(rows))
	for i, row := range rows {
		result[i] = toTemplate(row)
	}
	return result, nil
}

// FindByName matches case-insensitively; ledger handwriting rarely agrees
// with catalog casing.
func (r *templateRepository) FindByName(ctx context.Context, profileID uuid.UUID, name string) (*entity.ProcedureTemplate, error) {
	row, err := r.client.ProcedureTemplate.Query().
		Where(
			proceduretemplate.ProfileID(profileID),
			proceduretemplate.NameEqualFold(name),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toTemplate(row), nil
}

func (r *templateRepository) Update(ctx context.Context, profileID uuid.UUID, tpl *entity.ProcedureTemplate) (*entity.ProcedureTemplate, error) {
	exists, err := r.client.ProcedureTemplate.Query().
		Where(proceduretemplate.ID(tpl.ID), proceduretemplate.ProfileID(profileID)).
		Exist(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrNotFound
	}

	row, err := r.client.ProcedureTemplate.UpdateOneID(tpl.ID).
		SetName(tpl.Name).
		SetCashPrice(tpl.CashPrice).
		SetNillableInsurancePrice(tpl.InsurancePrice).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update procedure template",
			"profile_id", profileID, "template_id", tpl.ID, "error", err)
		return nil, err
	}
	return toTemplate(row), nil
}

func (r *templateRepository) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	n, err := r.client.ProcedureTemplate.Delete().
		Where(proceduretemplate.ID(id), proceduretemplate.ProfileID(profileID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete procedure template",
			"profile_id", profileID, "template_id", id, "error", err)
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func toTemplate(row *ent.ProcedureTemplate) *entity.ProcedureTemplate {
	return &entity.ProcedureTemplate{
		ID:             row.ID,
		ProfileID:      row.ProfileID,
		Name:           row.Name,
		CashPrice:      row.CashPrice,
		InsurancePrice: row.InsurancePrice,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
