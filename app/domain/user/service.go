package user

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/alexedwards/argon2id"

	"abled.ai/abled-api-gateway/app/domain/adaptation"
	"abled.ai/abled-api-gateway/app/utils/idgen"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// legacyStudentTypes maps values still sent by old clients onto the
// canonical adaptation profiles.
var legacyStudentTypes = map[string]string{
	"blind":      "vision",
	"deaf":       "hearing",
	"cant_speak": "speech",
	"special":    "dyslexie",
}

type UserService struct {
	repo UserRepository
}

func NewService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterStudent creates an anonymous student account keyed by student
// type. Students have no password; their JWT is the only credential.
func (s *UserService) RegisterStudent(ctx context.Context, studentType, name, school, class string) (*User, error) {
	st := strings.ToLower(strings.TrimSpace(studentType))
	if mapped, ok := legacyStudentTypes[st]; ok {
		st = mapped
	}
	profile, err := adaptation.NormalizeProfile(st)
	if err != nil {
		return nil, err
	}

	publicID, err := idgen.GenerateSecureID("usr", 16)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = fmt.Sprintf("Student-%s", publicID[len(publicID)-8:])
	}
	u := &User{
		PublicID:    publicID,
		Role:        RoleStudent,
		Name:        name,
		StudentType: string(profile),
		School:      school,
		Class:       class,
		Enabled:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// RegisterTeacher creates a password-backed teacher account.
func (s *UserService) RegisterTeacher(ctx context.Context, name, email, password, school string) (*User, error) {
	email = NormalizeEmail(email)
	if !emailRe.MatchString(email) {
		return nil, &adaptation.ValidationError{Field: "email", Reason: "invalid email address"}
	}
	if len(password) < 6 {
		return nil, &adaptation.ValidationError{Field: "password", Reason: "must be at least 6 characters long"}
	}
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &adaptation.ValidationError{Field: "email", Reason: "already registered"}
	}

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, err
	}
	publicID, err := idgen.GenerateSecureID("usr", 16)
	if err != nil {
		return nil, err
	}
	u := &User{
		PublicID:     publicID,
		Role:         RoleTeacher,
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		School:       school,
		Enabled:      true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// VerifyTeacher checks email+password and returns the account on match.
func (s *UserService) VerifyTeacher(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if u == nil || u.Role != RoleTeacher || !u.Enabled {
		return nil, nil
	}
	match, err := argon2id.ComparePasswordAndHash(password, u.PasswordHash)
	if err != nil || !match {
		return nil, nil
	}
	return u, nil
}

// FindOrCreateOAuthUser resolves a Google-authenticated teacher account,
// creating it on first login.
func (s *UserService) FindOrCreateOAuthUser(ctx context.Context, email, name string) (*User, error) {
	email = NormalizeEmail(email)
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}
	publicID, err := idgen.GenerateSecureID("usr", 16)
	if err != nil {
		return nil, err
	}
	u = &User{
		PublicID: publicID,
		Role:     RoleTeacher,
		Name:     name,
		Email:    email,
		Enabled:  true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) FindByPublicID(ctx context.Context, publicID string) (*User, error) {
	return s.repo.FindByPublicID(ctx, publicID)
}
