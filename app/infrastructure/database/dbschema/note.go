package dbschema

import (
	"abled.ai/abled-api-gateway/app/domain/note"
	"abled.ai/abled-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Note{})
}

type Note struct {
	BaseModel
	PublicID         string `gorm:"uniqueIndex"`
	School           string `gorm:"uniqueIndex:idx_note_key"`
	Class            string `gorm:"uniqueIndex:idx_note_key"`
	Subject          string `gorm:"uniqueIndex:idx_note_key"`
	Topic            string `gorm:"uniqueIndex:idx_note_key"`
	Text             string
	DyslexieText     string
	DyslexieTips     string
	AttachmentURL    string
	SourceType       string
	OriginalFilename string
	UploadedBy       string `gorm:"index"`
}

func NewSchemaNote(n *note.Note) *Note {
	return &Note{
		BaseModel: BaseModel{
			ID: n.ID,
		},
		PublicID:         n.PublicID,
		School:           n.School,
		Class:            n.Class,
		Subject:          n.Subject,
		Topic:            n.Topic,
		Text:             n.Text,
		DyslexieText:     n.DyslexieText,
		DyslexieTips:     n.DyslexieTips,
		AttachmentURL:    n.AttachmentURL,
		SourceType:       n.SourceType,
		OriginalFilename: n.OriginalFilename,
		UploadedBy:       n.UploadedBy,
	}
}

func (n *Note) EtoD() *note.Note {
	return &note.Note{
		ID:               n.ID,
		PublicID:         n.PublicID,
		School:           n.School,
		Class:            n.Class,
		Subject:          n.Subject,
		Topic:            n.Topic,
		Text:             n.Text,
		DyslexieText:     n.DyslexieText,
		DyslexieTips:     n.DyslexieTips,
		AttachmentURL:    n.AttachmentURL,
		SourceType:       n.SourceType,
		OriginalFilename: n.OriginalFilename,
		UploadedBy:       n.UploadedBy,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
	}
}
