package subjectrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "abled.ai/abled-api-gateway/app/domain/subject"
	"abled.ai/abled-api-gateway/app/infrastructure/database/dbschema"
)

type SubjectGormRepository struct {
	db *gorm.DB
}

func NewSubjectGormRepository(db *gorm.DB) domain.SubjectRepository {
	return &SubjectGormRepository{db: db}
}

func (r *SubjectGormRepository) Create(ctx context.Context, s *domain.Subject) error {
	model := dbschema.NewSchemaSubject(s)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subject: %w", err)
	}
	s.ID = model.ID
	s.CreatedAt = model.CreatedAt
	s.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *SubjectGormRepository) Find(ctx context.Context, school, class string) ([]*domain.Subject, error) {
	var models []dbschema.Subject
	err := r.db.WithContext(ctx).
		Where("school = ? AND class = ?", school, class).
		Order("subject_name asc").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	subjects := make([]*domain.Subject, 0, len(models))
	for i := range models {
		subjects = append(subjects, models[i].EtoD())
	}
	return subjects, nil
}

func (r *SubjectGormRepository) Exists(ctx context.Context, school, class, subjectName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbschema.Subject{}).
		Where("school = ? AND class = ? AND subject_name = ?", school, class, subjectName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
