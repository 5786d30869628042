package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abled.ai/abled-api-gateway/app/domain/adaptation"
)

type memoryRepo struct {
	users []*User
}

func (r *memoryRepo) Create(ctx context.Context, u *User) error {
	u.ID = uint(len(r.users) + 1)
	r.users = append(r.users, u)
	return nil
}

func (r *memoryRepo) Update(ctx context.Context, u *User) error { return nil }

func (r *memoryRepo) FindByPublicID(ctx context.Context, publicID string) (*User, error) {
	for _, u := range r.users {
		if u.PublicID == publicID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func TestRegisterStudent(t *testing.T) {
	t.Parallel()
	s := NewService(&memoryRepo{})

	u, err := s.RegisterStudent(context.Background(), "vision", "", "Hillside", "7B")
	require.NoError(t, err)
	assert.Equal(t, RoleStudent, u.Role)
	assert.Equal(t, "vision", u.StudentType)
	assert.Equal(t, "Hillside", u.School)
	assert.NotEmpty(t, u.PublicID)
	assert.NotEmpty(t, u.Name)
	assert.Empty(t, u.Email)
	assert.Empty(t, u.PasswordHash)
}

func TestRegisterStudent_LegacyTypes(t *testing.T) {
	t.Parallel()
	s := NewService(&memoryRepo{})

	cases := map[string]string{
		"blind":      "vision",
		"deaf":       "hearing",
		"cant_speak": "speech",
		"special":    "dyslexie",
		"dyslexia":   "dyslexie",
	}
	for legacy, want := range cases {
		u, err := s.RegisterStudent(context.Background(), legacy, "", "", "")
		require.NoError(t, err, legacy)
		assert.Equal(t, want, u.StudentType, legacy)
	}

	_, err := s.RegisterStudent(context.Background(), "unknown", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, adaptation.ErrValidation)
}

func TestRegisterTeacherAndVerify(t *testing.T) {
	t.Parallel()
	s := NewService(&memoryRepo{})

	u, err := s.RegisterTeacher(context.Background(), "Ms. Reyes", "reyes@example.edu", "secret-password", "Hillside")
	require.NoError(t, err)
	assert.Equal(t, RoleTeacher, u.Role)
	assert.Equal(t, "reyes@example.edu", u.Email)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "secret-password", u.PasswordHash)

	verified, err := s.VerifyTeacher(context.Background(), "Reyes@Example.edu ", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, u.PublicID, verified.PublicID)

	// Mismatches are reported as a nil user, not an error.
	mismatch, err := s.VerifyTeacher(context.Background(), "reyes@example.edu", "wrong")
	require.NoError(t, err)
	assert.Nil(t, mismatch)

	missing, err := s.VerifyTeacher(context.Background(), "nobody@example.edu", "secret-password")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRegisterTeacher_Validation(t *testing.T) {
	t.Parallel()
	repo := &memoryRepo{}
	s := NewService(repo)

	_, err := s.RegisterTeacher(context.Background(), "T", "not-an-email", "secret-password", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, adaptation.ErrValidation)

	_, err = s.RegisterTeacher(context.Background(), "T", "t@example.edu", "short", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, adaptation.ErrValidation)

	_, err = s.RegisterTeacher(context.Background(), "T", "t@example.edu", "long-enough", "")
	require.NoError(t, err)
	_, err = s.RegisterTeacher(context.Background(), "T2", "t@example.edu", "long-enough", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, adaptation.ErrValidation)
}

func TestFindOrCreateOAuthUser(t *testing.T) {
	t.Parallel()
	s := NewService(&memoryRepo{})

	created, err := s.FindOrCreateOAuthUser(context.Background(), "oauth@example.edu", "OAuth Teacher")
	require.NoError(t, err)
	assert.Equal(t, RoleTeacher, created.Role)

	again, err := s.FindOrCreateOAuthUser(context.Background(), "oauth@example.edu", "Renamed")
	require.NoError(t, err)
	assert.Equal(t, created.PublicID, again.PublicID)
}
