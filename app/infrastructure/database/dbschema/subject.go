package dbschema

import (
	"abled.ai/abled-api-gateway/app/domain/subject"
	"abled.ai/abled-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Subject{})
}

type Subject struct {
	BaseModel
	School      string `gorm:"uniqueIndex:idx_subject_key"`
	Class       string `gorm:"uniqueIndex:idx_subject_key"`
	SubjectName string `gorm:"uniqueIndex:idx_subject_key;index"`
	AddedBy     string
}

func NewSchemaSubject(s *subject.Subject) *Subject {
	return &Subject{
		BaseModel: BaseModel{
			ID: s.ID,
		},
		School:      s.School,
		Class:       s.Class,
		SubjectName: s.SubjectName,
		AddedBy:     s.AddedBy,
	}
}

func (s *Subject) EtoD() *subject.Subject {
	return &subject.Subject{
		ID:          s.ID,
		School:      s.School,
		Class:       s.Class,
		SubjectName: s.SubjectName,
		AddedBy:     s.AddedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
