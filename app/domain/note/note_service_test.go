package note

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	notes []*Note
}

func (r *memoryRepo) Create(ctx context.Context, n *Note) error {
	n.ID = uint(len(r.notes) + 1)
	r.notes = append(r.notes, n)
	return nil
}

func (r *memoryRepo) Update(ctx context.Context, n *Note) error { return nil }

func (r *memoryRepo) FindOne(ctx context.Context, filter NoteFilter) (*Note, error) {
	for _, n := range r.notes {
		if n.School == filter.School && n.Class == filter.Class &&
			n.Subject == filter.Subject && n.Topic == filter.Topic {
			return n, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) ListTopics(ctx context.Context, school, class, subject string) ([]string, error) {
	var topics []string
	for _, n := range r.notes {
		if n.School == school && n.Class == class && n.Subject == subject {
			topics = append(topics, n.Topic)
		}
	}
	return topics, nil
}

func baseNote() *Note {
	return &Note{
		School:  "Hillside",
		Class:   "7B",
		Subject: "Science",
		Topic:   "Water Cycle",
		Text:    "Water evaporates, condenses and falls as rain.",
	}
}

func TestSaveNote_CreateAndUpsert(t *testing.T) {
	t.Parallel()
	repo := &memoryRepo{}
	s := NewService(repo, nil)

	saved, err := s.SaveNote(context.Background(), baseNote(), false)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.PublicID)
	assert.Len(t, repo.notes, 1)

	updated := baseNote()
	updated.Text = "Revised lesson text."
	second, err := s.SaveNote(context.Background(), updated, false)
	require.NoError(t, err)
	// Same tuple replaces, never duplicates.
	assert.Equal(t, saved.PublicID, second.PublicID)
	assert.Len(t, repo.notes, 1)
	assert.Equal(t, "Revised lesson text.", repo.notes[0].Text)
}

func TestSaveNote_TrimsKeyFields(t *testing.T) {
	t.Parallel()
	repo := &memoryRepo{}
	s := NewService(repo, nil)

	n := baseNote()
	n.School = "  Hillside  "
	n.Topic = " Water Cycle\n"
	saved, err := s.SaveNote(context.Background(), n, false)
	require.NoError(t, err)
	assert.Equal(t, "Hillside", saved.School)
	assert.Equal(t, "Water Cycle", saved.Topic)
}

func TestGetTailoredNote_DyslexieSubstitution(t *testing.T) {
	t.Parallel()
	repo := &memoryRepo{}
	s := NewService(repo, nil)

	n := baseNote()
	n.DyslexieText = "Short simple version."
	n.DyslexieTips = "Read one line at a time."
	_, err := s.SaveNote(context.Background(), n, false)
	require.NoError(t, err)

	filter := NoteFilter{School: "Hillside", Class: "7B", Subject: "Science", Topic: "Water Cycle"}

	plain, err := s.GetTailoredNote(context.Background(), filter, "vision")
	require.NoError(t, err)
	assert.Equal(t, "Water evaporates, condenses and falls as rain.", plain.Content)
	assert.Empty(t, plain.Tips)

	adapted, err := s.GetTailoredNote(context.Background(), filter, "dyslexie")
	require.NoError(t, err)
	assert.Equal(t, "Short simple version.", adapted.Content)
	assert.Equal(t, "Read one line at a time.", adapted.Tips)
}

func TestGetTailoredNote_MissingNote(t *testing.T) {
	t.Parallel()
	s := NewService(&memoryRepo{}, nil)

	got, err := s.GetTailoredNote(context.Background(), NoteFilter{School: "x", Class: "y", Subject: "z", Topic: "t"}, "vision")
	require.NoError(t, err)
	assert.Nil(t, got)
}
