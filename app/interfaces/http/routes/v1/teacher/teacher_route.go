package teacher

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"abled.ai/abled-api-gateway/app/domain/adaptation"
	"abled.ai/abled-api-gateway/app/domain/auth"
	"abled.ai/abled-api-gateway/app/domain/common"
	"abled.ai/abled-api-gateway/app/domain/note"
	"abled.ai/abled-api-gateway/app/domain/subject"
	"abled.ai/abled-api-gateway/app/domain/user"
	"abled.ai/abled-api-gateway/app/interfaces/http/responses"
	"abled.ai/abled-api-gateway/app/utils/httpclients/catbox"
	"abled.ai/abled-api-gateway/app/utils/logger"
)

// 10 MiB cap on note attachments.
const maxAttachmentSize = 10 << 20

type TeacherRoute struct {
	noteService    *note.NoteService
	subjectService *subject.SubjectService
	authService    *auth.AuthService
	catboxClient   *catbox.Client
}

func NewTeacherRoute(
	noteService *note.NoteService,
	subjectService *subject.SubjectService,
	authService *auth.AuthService,
	catboxClient *catbox.Client,
) *TeacherRoute {
	return &TeacherRoute{
		noteService:    noteService,
		subjectService: subjectService,
		authService:    authService,
		catboxClient:   catboxClient,
	}
}

func (teacherRoute *TeacherRoute) RegisterRouter(router gin.IRouter) {
	teacherRouter := router.Group("/teacher",
		teacherRoute.authService.AppUserAuthMiddleware(),
		teacherRoute.authService.RoleMiddleware(user.RoleTeacher),
	)
	teacherRouter.POST("/notes", teacherRoute.UploadNote)
}

type UploadNoteResponse struct {
	ID               string `json:"id"`
	Topic            string `json:"topic"`
	DyslexieVariant  bool   `json:"dyslexie_variant"`
	AttachmentURL    string `json:"attachment_url,omitempty"`
	OriginalFilename string `json:"original_filename,omitempty"`
}

// UploadNote godoc
// @Summary Upload lesson notes for a topic
// @Description Stores the note text under school/class/subject/topic and pre-generates the dyslexie variant. An optional attachment is pushed to the file host and its public URL stored with the note. Multipart fields: school, class, subject, topic, text, attachment (file).
// @Tags Teacher
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} responses.GeneralResponse[UploadNoteResponse]
// @Failure 400 {object} responses.ErrorResponse
// @Router /api/v1/teacher/notes [post]
func (teacherRoute *TeacherRoute) UploadNote(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	claim, ok := auth.GetClaimFromContext(reqCtx)
	if !ok {
		claim = &auth.UserClaim{}
	}

	school := strings.TrimSpace(reqCtx.PostForm("school"))
	if school == "" {
		school = claim.School
	}
	class := strings.TrimSpace(reqCtx.PostForm("class"))
	subjectName := strings.TrimSpace(reqCtx.PostForm("subject"))
	topic := strings.TrimSpace(reqCtx.PostForm("topic"))
	text := reqCtx.PostForm("text")

	if school == "" || class == "" || subjectName == "" || topic == "" || strings.TrimSpace(text) == "" {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  common.CodeValidationError,
			Error: "school, class, subject, topic and text are required",
		})
		return
	}

	n := &note.Note{
		School:     school,
		Class:      class,
		Subject:    subjectName,
		Topic:      topic,
		Text:       text,
		SourceType: "text",
		UploadedBy: claim.Subject,
	}

	if fileHeader, err := reqCtx.FormFile("attachment"); err == nil {
		if fileHeader.Size > maxAttachmentSize {
			reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
				Code:  common.CodeValidationError,
				Error: "attachment exceeds the 10MB limit",
			})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
				Code: "b9e3d7a1-2f5c-4860-9c4b-e1a8f6d2c075",
			})
			return
		}
		defer file.Close()

		url, err := teacherRoute.catboxClient.UploadFile(ctx, fileHeader.Filename, file)
		if err != nil {
			// The note is still worth storing without its attachment.
			logger.GetLogger().WithFields(logrus.Fields{
				"topic": topic,
				"error": err.Error(),
			}).Warn("attachment upload failed")
		} else {
			n.AttachmentURL = url
			n.OriginalFilename = fileHeader.Filename
		}
	}

	saved, err := teacherRoute.noteService.SaveNote(ctx, n, true)
	if err != nil {
		var validationErr *adaptation.ValidationError
		if errors.As(err, &validationErr) {
			reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
				Code:  common.CodeValidationError,
				Error: validationErr.Error(),
			})
			return
		}
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code: "1d6f8b3e-9a2c-4f57-b0e4-73c5a1d9f286",
		})
		return
	}

	// Keep the subject list in sync with uploads; duplicates are fine.
	if _, err := teacherRoute.subjectService.Add(ctx, school, class, subjectName, claim.Subject); err != nil {
		var validationErr *adaptation.ValidationError
		if !errors.As(err, &validationErr) {
			logger.GetLogger().WithFields(logrus.Fields{"error": err.Error()}).Warn("subject registration failed")
		}
	}

	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[UploadNoteResponse]{
		Status: responses.StatusOk,
		Result: UploadNoteResponse{
			ID:               saved.PublicID,
			Topic:            saved.Topic,
			DyslexieVariant:  saved.DyslexieText != "",
			AttachmentURL:    saved.AttachmentURL,
			OriginalFilename: saved.OriginalFilename,
		},
	})
}
