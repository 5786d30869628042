package subject

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abled.ai/abled-api-gateway/app/domain/adaptation"
)

type memoryRepo struct {
	subjects []*Subject
}

func (r *memoryRepo) Create(ctx context.Context, s *Subject) error {
	s.ID = uint(len(r.subjects) + 1)
	r.subjects = append(r.subjects, s)
	return nil
}

func (r *memoryRepo) Find(ctx context.Context, school, class string) ([]*Subject, error) {
	var out []*Subject
	for _, s := range r.subjects {
		if s.School == school && s.Class == class {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memoryRepo) Exists(ctx context.Context, school, class, subjectName string) (bool, error) {
	for _, s := range r.subjects {
		if s.School == school && s.Class == class && s.SubjectName == subjectName {
			return true, nil
		}
	}
	return false, nil
}

func TestAddAndList(t *testing.T) {
	t.Parallel()
	s := NewService(&memoryRepo{})

	created, err := s.Add(context.Background(), " Hillside ", "7B", " Science ", "usr-1")
	require.NoError(t, err)
	assert.Equal(t, "Hillside", created.School)
	assert.Equal(t, "Science", created.SubjectName)

	listed, err := s.ListForClass(context.Background(), "Hillside", "7B")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Science", listed[0].SubjectName)
}

func TestAdd_Duplicate(t *testing.T) {
	t.Parallel()
	s := NewService(&memoryRepo{})

	_, err := s.Add(context.Background(), "Hillside", "7B", "Science", "usr-1")
	require.NoError(t, err)

	_, err = s.Add(context.Background(), "Hillside", "7B", "Science", "usr-2")
	require.Error(t, err)
	assert.ErrorIs(t, err, adaptation.ErrValidation)
}

func TestAdd_RequiredFields(t *testing.T) {
	t.Parallel()
	s := NewService(&memoryRepo{})

	_, err := s.Add(context.Background(), "", "7B", "Science", "usr-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, adaptation.ErrValidation)
}

func TestListForClass_EmptyInputs(t *testing.T) {
	t.Parallel()
	s := NewService(&memoryRepo{})

	listed, err := s.ListForClass(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, listed)
}
