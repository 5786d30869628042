package subject

import (
	"context"
	"strings"

	"abled.ai/abled-api-gateway/app/domain/adaptation"
)

type SubjectService struct {
	repo SubjectRepository
}

func NewService(repo SubjectRepository) *SubjectService {
	return &SubjectService{repo: repo}
}

// ListForClass returns the subjects configured for a school+class pair,
// sorted by name.
func (s *SubjectService) ListForClass(ctx context.Context, school, class string) ([]*Subject, error) {
	school = strings.TrimSpace(school)
	class = strings.TrimSpace(class)
	if school == "" || class == "" {
		return []*Subject{}, nil
	}
	return s.repo.Find(ctx, school, class)
}

// Add registers a subject for a school+class pair, ignoring duplicates.
func (s *SubjectService) Add(ctx context.Context, school, class, subjectName, addedBy string) (*Subject, error) {
	school = strings.TrimSpace(school)
	class = strings.TrimSpace(class)
	subjectName = strings.TrimSpace(subjectName)
	if school == "" || class == "" || subjectName == "" {
		return nil, &adaptation.ValidationError{Field: "subject", Reason: "school, class and subjectName are required"}
	}

	exists, err := s.repo.Exists(ctx, school, class, subjectName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &adaptation.ValidationError{Field: "subjectName", Reason: "already registered for this class"}
	}

	entity := &Subject{
		School:      school,
		Class:       class,
		SubjectName: subjectName,
		AddedBy:     addedBy,
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}
