package noterepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "abled.ai/abled-api-gateway/app/domain/note"
	"abled.ai/abled-api-gateway/app/infrastructure/database/dbschema"
)

type NoteGormRepository struct {
	db *gorm.DB
}

func NewNoteGormRepository(db *gorm.DB) domain.NoteRepository {
	return &NoteGormRepository{db: db}
}

func (r *NoteGormRepository) Create(ctx context.Context, n *domain.Note) error {
	model := dbschema.NewSchemaNote(n)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	n.ID = model.ID
	n.CreatedAt = model.CreatedAt
	n.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *NoteGormRepository) Update(ctx context.Context, n *domain.Note) error {
	model := dbschema.NewSchemaNote(n)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	n.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *NoteGormRepository) FindOne(ctx context.Context, filter domain.NoteFilter) (*domain.Note, error) {
	var model dbschema.Note
	err := r.db.WithContext(ctx).
		Where("school = ? AND class = ? AND subject = ? AND topic = ?",
			filter.School, filter.Class, filter.Subject, filter.Topic).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *NoteGormRepository) ListTopics(ctx context.Context, school, class, subject string) ([]string, error) {
	var topics []string
	err := r.db.WithContext(ctx).
		Model(&dbschema.Note{}).
		Where("school = ? AND class = ? AND subject = ?", school, class, subject).
		Order("topic asc").
		Distinct().
		Pluck("topic", &topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}
