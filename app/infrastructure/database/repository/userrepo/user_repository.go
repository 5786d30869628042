package userrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "abled.ai/abled-api-gateway/app/domain/user"
	"abled.ai/abled-api-gateway/app/infrastructure/database/dbschema"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) domain.UserRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u *domain.User) error {
	model := dbschema.NewSchemaUser(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserGormRepository) Update(ctx context.Context, u *domain.User) error {
	model := dbschema.NewSchemaUser(u)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *UserGormRepository) FindByPublicID(ctx context.Context, publicID string) (*domain.User, error) {
	var model dbschema.User
	err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, nil
	}
	var models []dbschema.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).Find(&models).Error; err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	if len(models) != 1 {
		return nil, fmt.Errorf("duplicated user email")
	}
	return models[0].EtoD(), nil
}
