package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/profile"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/common"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	Create(ctx context.Context, p *entity.Profile) (*entity.Profile, error)
	List(ctx context.Context) ([]*entity.Profile, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type profileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(client *ent.Client, logger *slog.Logger) ProfileRepository {
	return &profileRepository{
		client: client,
		logger: logger,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	row, err := r.client.Profile.
		Query().
		Where(profile.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toProfile(row), nil
}

func (r *profileRepository) Create(ctx context.Context, p *entity.Profile) (*entity.Profile, error) {
	row, err := r.client.Profile.Create().
		SetName(p.Name).
		SetNillableClinicName(p.ClinicName).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create profile", "name", p.Name, "error", err)
		return nil, err
	}
	return toProfile(row), nil
}

func (r *profileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	rows, err := r.client.Profile.Query().Order(profile.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list profiles", "error", err)
		return nil, err
	}
	result := make([]*entity.Profile, len(rows))
	for i, row := range rows {
		result[i] = toProfile(row)
	}
	return result, nil
}

func (r *profileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Profile.Query().Where(profile.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check profile existence", "profile_id", id, "error", err)
		return false, err
	}
	return exists, nil
}

func toProfile(row *ent.Profile) *entity.Profile {
	return &entity.Profile{
		ID:         row.ID,
		Name:       row.Name,
		ClinicName: row.ClinicName,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
