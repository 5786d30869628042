package students

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"abled.ai/abled-api-gateway/app/domain/auth"
	"abled.ai/abled-api-gateway/app/domain/note"
	"abled.ai/abled-api-gateway/app/interfaces/http/responses"
)

type StudentsRoute struct {
	noteService *note.NoteService
	authService *auth.AuthService
}

func NewStudentsRoute(noteService *note.NoteService, authService *auth.AuthService) *StudentsRoute {
	return &StudentsRoute{
		noteService: noteService,
		authService: authService,
	}
}

func (studentsRoute *StudentsRoute) RegisterRouter(router gin.IRouter) {
	studentsRouter := router.Group("/students",
		studentsRoute.authService.AppUserAuthMiddleware(),
	)
	studentsRouter.GET("/topics", studentsRoute.ListTopics)
	studentsRouter.GET("/notes", studentsRoute.GetNote)
}

// claimFallback takes the query value when present, otherwise the value
// stored in the session claim. Students usually carry school/class in
// their token; query parameters let teachers browse other classes.
func claimFallback(queryValue, claimValue string) string {
	if v := strings.TrimSpace(queryValue); v != "" {
		return v
	}
	return claimValue
}

// ListTopics godoc
// @Summary Topics available for a subject
// @Tags Students
// @Security BearerAuth
// @Produce json
// @Param school query string false "School (defaults to session)"
// @Param class query string false "Class (defaults to session)"
// @Param subject query string true "Subject name"
// @Success 200 {object} responses.ListResponse[string]
// @Failure 400 {object} responses.ErrorResponse
// @Router /api/v1/students/topics [get]
func (studentsRoute *StudentsRoute) ListTopics(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	claim, ok := auth.GetClaimFromContext(reqCtx)
	if !ok {
		claim = &auth.UserClaim{}
	}

	school := claimFallback(reqCtx.Query("school"), claim.School)
	class := claimFallback(reqCtx.Query("class"), claim.Class)
	subject := strings.TrimSpace(reqCtx.Query("subject"))
	if school == "" || class == "" || subject == "" {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "09b37a61-5f0e-4d2c-9a8b-7e4f1c6d2b53",
			Error: "school, class and subject are required",
		})
		return
	}

	topics, err := studentsRoute.noteService.ListTopics(ctx, school, class, subject)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code: "5e8d2c4f-1a7b-4e90-b3f6-8c2d5a9e0f14",
		})
		return
	}
	reqCtx.JSON(http.StatusOK, responses.ListResponse[string]{
		Status:  responses.StatusOk,
		Total:   int64(len(topics)),
		Results: topics,
	})
}

type NoteResponse struct {
	ID            string `json:"id"`
	School        string `json:"school"`
	Class         string `json:"class"`
	Subject       string `json:"subject"`
	Topic         string `json:"topic"`
	StudentType   string `json:"studentType"`
	Content       string `json:"content"`
	Tips          string `json:"tips,omitempty"`
	AttachmentURL string `json:"attachment_url,omitempty"`
	UpdatedAt     string `json:"updated_at"`
}

// GetNote godoc
// @Summary Note content tailored to the caller's profile
// @Description Returns the stored note for a topic. Dyslexie students receive the pre-generated adapted variant when one exists.
// @Tags Students
// @Security BearerAuth
// @Produce json
// @Param school query string false "School (defaults to session)"
// @Param class query string false "Class (defaults to session)"
// @Param subject query string true "Subject name"
// @Param topic query string true "Topic"
// @Success 200 {object} responses.GeneralResponse[NoteResponse]
// @Failure 404 {object} responses.ErrorResponse
// @Router /api/v1/students/notes [get]
func (studentsRoute *StudentsRoute) GetNote(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	claim, ok := auth.GetClaimFromContext(reqCtx)
	if !ok {
		claim = &auth.UserClaim{}
	}

	filter := note.NoteFilter{
		School:  claimFallback(reqCtx.Query("school"), claim.School),
		Class:   claimFallback(reqCtx.Query("class"), claim.Class),
		Subject: strings.TrimSpace(reqCtx.Query("subject")),
		Topic:   strings.TrimSpace(reqCtx.Query("topic")),
	}
	if filter.School == "" || filter.Class == "" || filter.Subject == "" || filter.Topic == "" {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "7c1e9a2d-4b6f-4f38-a0d5-2e8b3c7f9a46",
			Error: "school, class, subject and topic are required",
		})
		return
	}

	studentType := claimFallback(reqCtx.Query("studentType"), claim.StudentType)
	tailored, err := studentsRoute.noteService.GetTailoredNote(ctx, filter, studentType)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code: "d4a7f2e9-6c1b-4e85-9f30-b8d2a5c7e1f6",
		})
		return
	}
	if tailored == nil {
		reqCtx.JSON(http.StatusNotFound, responses.ErrorResponse{
			Code:  "2f6b8d3a-9e4c-4a71-b5f8-0c3e7d1a6b92",
			Error: "no note found for this topic",
		})
		return
	}

	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[NoteResponse]{
		Status: responses.StatusOk,
		Result: NoteResponse{
			ID:            tailored.PublicID,
			School:        tailored.School,
			Class:         tailored.Class,
			Subject:       tailored.Subject,
			Topic:         tailored.Topic,
			StudentType:   tailored.StudentType,
			Content:       tailored.Content,
			Tips:          tailored.Tips,
			AttachmentURL: tailored.AttachmentURL,
			UpdatedAt:     tailored.UpdatedAt,
		},
	})
}
