package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/staylodge/guest-service/internal/domain/entity"
	errs "github.com/staylodge/guest-service/internal/domain/errors"
	"github.com/staylodge/guest-service/internal/domain/model"
	"github.com/staylodge/guest-service/internal/domain/repository"
	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// modelToEntity converts a model.Profile to entity.Profile
func (r *profileRepository) modelToEntity(m *model.Profile) *entity.Profile {
	if m == nil {
		return nil
	}
	return &entity.Profile{
		ID:        m.ID.String(),
		Email:     m.Email,
		FullName:  m.FullName,
		Phone:     m.Phone,
		UserType:  entity.UserType(m.UserType),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// entityToModel converts an entity.Profile to model.Profile
func (r *profileRepository) entityToModel(e *entity.Profile) (*model.Profile, error) {
	if e == nil {
		return nil, nil
	}

	id, err := uuid.Parse(e.ID)
	if err != nil {
		return nil, err
	}

	return &model.Profile{
		ID:        id,
		Email:     e.Email,
		FullName:  e.FullName,
		Phone:     e.Phone,
		UserType:  string(e.UserType),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}, nil
}

func (r *profileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	profileID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var profile model.Profile
	err = r.db.WithContext(ctx).Where("id = ?", profileID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.modelToEntity(&profile), nil
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).Where("email = ?", entity.NormalizeEmail(email)).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.modelToEntity(&profile), nil
}

func (r *profileRepository) SearchByEmail(ctx context.Context, email string) ([]*entity.Profile, error) {
	var profiles []model.Profile
	err := r.db.WithContext(ctx).Where("email ILIKE ?", entity.NormalizeEmail(email)).Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Profile, 0, len(profiles))
	for i := range profiles {
		result = append(result, r.modelToEntity(&profiles[i]))
	}
	return result, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	modelProfile, err := r.entityToModel(profile)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(modelProfile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrDuplicateKey
		}
		return err
	}
	return nil
}
