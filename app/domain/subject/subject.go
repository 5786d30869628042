package subject

import (
	"context"
	"time"
)

type Subject struct {
	ID          uint
	School      string
	Class       string
	SubjectName string
	AddedBy     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SubjectRepository interface {
	Create(ctx context.Context, s *Subject) error
	Find(ctx context.Context, school, class string) ([]*Subject, error)
	Exists(ctx context.Context, school, class, subjectName string) (bool, error)
}
