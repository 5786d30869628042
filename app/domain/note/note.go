package note

import (
	"time"

	"golang.org/x/net/context"
)

// Note is one uploaded lesson text, addressed by the
// school/class/subject/topic tuple.
type Note struct {
	ID               uint
	PublicID         string
	School           string
	Class            string
	Subject          string
	Topic            string
	Text             string
	DyslexieText     string
	DyslexieTips     string
	AttachmentURL    string
	SourceType       string
	OriginalFilename string
	UploadedBy       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type NoteFilter struct {
	School  string
	Class   string
	Subject string
	Topic   string
}

type NoteRepository interface {
	Create(ctx context.Context, n *Note) error
	Update(ctx context.Context, n *Note) error
	FindOne(ctx context.Context, filter NoteFilter) (*Note, error)
	ListTopics(ctx context.Context, school, class, subject string) ([]string, error)
}
