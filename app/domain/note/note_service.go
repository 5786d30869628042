package note

import (
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"abled.ai/abled-api-gateway/app/domain/adaptation"
	"abled.ai/abled-api-gateway/app/utils/idgen"
	"abled.ai/abled-api-gateway/app/utils/logger"
)

type NoteService struct {
	repo              NoteRepository
	adaptationService *adaptation.AdaptationService
}

func NewService(repo NoteRepository, adaptationService *adaptation.AdaptationService) *NoteService {
	return &NoteService{
		repo:              repo,
		adaptationService: adaptationService,
	}
}

// SaveNote stores an uploaded note, replacing any previous note for the
// same school/class/subject/topic tuple. When requested, a dyslexie
// variant is generated up front so student reads stay cheap; generation
// failure is tolerated and only the base text is stored.
func (s *NoteService) SaveNote(ctx context.Context, n *Note, generateDyslexie bool) (*Note, error) {
	n.School = strings.TrimSpace(n.School)
	n.Class = strings.TrimSpace(n.Class)
	n.Subject = strings.TrimSpace(n.Subject)
	n.Topic = strings.TrimSpace(n.Topic)

	if generateDyslexie {
		result, err := s.adaptationService.GenerateAdaptiveNotes(ctx, n.Text, string(adaptation.ProfileDyslexie))
		if err != nil {
			logger.GetLogger().WithFields(logrus.Fields{
				"topic": n.Topic,
				"error": err.Error(),
			}).Warn("dyslexie variant generation failed, storing base text only")
		} else {
			n.DyslexieText = result.Content
			n.DyslexieTips = result.Tips
		}
	}

	existing, err := s.repo.FindOne(ctx, NoteFilter{
		School:  n.School,
		Class:   n.Class,
		Subject: n.Subject,
		Topic:   n.Topic,
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Text = n.Text
		existing.DyslexieText = n.DyslexieText
		existing.DyslexieTips = n.DyslexieTips
		existing.AttachmentURL = n.AttachmentURL
		existing.SourceType = n.SourceType
		existing.OriginalFilename = n.OriginalFilename
		existing.UploadedBy = n.UploadedBy
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	publicID, err := idgen.GenerateSecureID("note", 20)
	if err != nil {
		return nil, err
	}
	n.PublicID = publicID
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// TailoredNote is the student-facing projection of a note, with the
// variant substituted for the caller's student type.
type TailoredNote struct {
	PublicID      string
	School        string
	Class         string
	Subject       string
	Topic         string
	StudentType   string
	Content       string
	Tips          string
	AttachmentURL string
	UpdatedAt     string
}

// GetTailoredNote fetches a note and substitutes the stored dyslexie
// variant when the caller's profile asks for it.
func (s *NoteService) GetTailoredNote(ctx context.Context, filter NoteFilter, studentType string) (*TailoredNote, error) {
	n, err := s.repo.FindOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}

	st := strings.ToLower(strings.TrimSpace(studentType))
	content := n.Text
	tips := ""
	if st == string(adaptation.ProfileDyslexie) && n.DyslexieText != "" {
		content = n.DyslexieText
		tips = n.DyslexieTips
	}

	return &TailoredNote{
		PublicID:      n.PublicID,
		School:        n.School,
		Class:         n.Class,
		Subject:       n.Subject,
		Topic:         n.Topic,
		StudentType:   st,
		Content:       content,
		Tips:          tips,
		AttachmentURL: n.AttachmentURL,
		UpdatedAt:     n.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}, nil
}

func (s *NoteService) ListTopics(ctx context.Context, school, class, subject string) ([]string, error) {
	return s.repo.ListTopics(ctx, strings.TrimSpace(school), strings.TrimSpace(class), strings.TrimSpace(subject))
}
