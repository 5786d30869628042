package subjects

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"abled.ai/abled-api-gateway/app/domain/adaptation"
	"abled.ai/abled-api-gateway/app/domain/auth"
	"abled.ai/abled-api-gateway/app/domain/common"
	"abled.ai/abled-api-gateway/app/domain/subject"
	"abled.ai/abled-api-gateway/app/domain/user"
	"abled.ai/abled-api-gateway/app/interfaces/http/responses"
	"abled.ai/abled-api-gateway/app/utils/functional"
)

type SubjectsRoute struct {
	subjectService *subject.SubjectService
	authService    *auth.AuthService
}

func NewSubjectsRoute(subjectService *subject.SubjectService, authService *auth.AuthService) *SubjectsRoute {
	return &SubjectsRoute{
		subjectService: subjectService,
		authService:    authService,
	}
}

func (subjectsRoute *SubjectsRoute) RegisterRouter(router gin.IRouter) {
	subjectsRouter := router.Group("/subjects",
		subjectsRoute.authService.AppUserAuthMiddleware(),
	)
	subjectsRouter.GET("", subjectsRoute.ListSubjects)
	subjectsRouter.POST("",
		subjectsRoute.authService.RoleMiddleware(user.RoleTeacher),
		subjectsRoute.AddSubject,
	)
}

type SubjectResponse struct {
	SubjectName string `json:"subject"`
	School      string `json:"school"`
	Class       string `json:"class"`
}

// ListSubjects godoc
// @Summary Subjects taught for a school and class
// @Tags Subjects
// @Security BearerAuth
// @Produce json
// @Param school query string false "School (defaults to session)"
// @Param class query string false "Class (defaults to session)"
// @Success 200 {object} responses.ListResponse[SubjectResponse]
// @Router /api/v1/subjects [get]
func (subjectsRoute *SubjectsRoute) ListSubjects(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	claim, ok := auth.GetClaimFromContext(reqCtx)
	if !ok {
		claim = &auth.UserClaim{}
	}

	school := strings.TrimSpace(reqCtx.Query("school"))
	if school == "" {
		school = claim.School
	}
	class := strings.TrimSpace(reqCtx.Query("class"))
	if class == "" {
		class = claim.Class
	}

	found, err := subjectsRoute.subjectService.ListForClass(ctx, school, class)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code: "3b8e1d7c-5f2a-4c96-a4e0-9d6b2f8c1a75",
		})
		return
	}

	results := functional.Map(found, func(s *subject.Subject) SubjectResponse {
		return SubjectResponse{
			SubjectName: s.SubjectName,
			School:      s.School,
			Class:       s.Class,
		}
	})
	reqCtx.JSON(http.StatusOK, responses.ListResponse[SubjectResponse]{
		Status:  responses.StatusOk,
		Total:   int64(len(results)),
		Results: results,
	})
}

type AddSubjectRequest struct {
	Subject string `json:"subject" binding:"required"`
	School  string `json:"school"`
	Class   string `json:"class"`
}

// AddSubject godoc
// @Summary Register a subject for a class
// @Tags Subjects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AddSubjectRequest true "Subject to add"
// @Success 200 {object} responses.GeneralResponse[SubjectResponse]
// @Failure 400 {object} responses.ErrorResponse
// @Router /api/v1/subjects [post]
func (subjectsRoute *SubjectsRoute) AddSubject(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	claim, ok := auth.GetClaimFromContext(reqCtx)
	if !ok {
		claim = &auth.UserClaim{}
	}

	var req AddSubjectRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "9f4c2a8e-7d1b-4f63-b0a9-5e8d3c6f2b17",
		})
		return
	}

	school := strings.TrimSpace(req.School)
	if school == "" {
		school = claim.School
	}
	class := strings.TrimSpace(req.Class)
	if class == "" {
		class = claim.Class
	}

	created, err := subjectsRoute.subjectService.Add(ctx, school, class, req.Subject, claim.Subject)
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
			Code: "6a2d9f3b-8c5e-4a07-9b41-e7f0c3d8a2b6",
		})
		return
	}

	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[SubjectResponse]{
		Status: responses.StatusOk,
		Result: SubjectResponse{
			SubjectName: created.SubjectName,
			School:      created.School,
			Class:       created.Class,
		},
	})
}
