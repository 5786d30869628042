package ai

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"abled.ai/abled-api-gateway/app/domain/adaptation"
	"abled.ai/abled-api-gateway/app/domain/common"
	"abled.ai/abled-api-gateway/app/interfaces/http/responses"
)

type AdaptationAPI struct {
	adaptationService *adaptation.AdaptationService
}

func NewAdaptationAPI(adaptationService *adaptation.AdaptationService) *AdaptationAPI {
	return &AdaptationAPI{
		adaptationService: adaptationService,
	}
}

func (api *AdaptationAPI) RegisterRouter(router gin.IRouter) {
	aiRouter := router.Group("/ai")
	aiRouter.POST("", api.Generate)
	aiRouter.GET("/health", api.Health)
	aiRouter.GET("/stats", api.Stats)
}

type GenerateRequest struct {
	Mode        string `json:"mode"`
	StudentType string `json:"studentType"`
	Text        string `json:"text"`
	Notes       string `json:"notes"`
	Question    string `json:"question"`
}

// Generate godoc
// @Summary Generate adapted study content
// @Description Adapts lesson text for a student's accessibility profile, or answers a question grounded in the supplied notes. Mode selects the operation.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Generation request"
// @Success 200 {object} adaptation.GenerationResult
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 503 {object} responses.ErrorResponse "All upstream credentials exhausted"
// @Router /api/v1/ai [post]
func (api *AdaptationAPI) Generate(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req GenerateRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  common.CodeInvalidJSON,
			Error: "request body must be a JSON object",
		})
		return
	}

	if strings.TrimSpace(req.StudentType) == "" {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  common.CodeMissingStudentType,
			Error: "studentType is required",
		})
		return
	}

	var (
		result *adaptation.GenerationResult
		err    error
	)
	switch strings.ToLower(strings.TrimSpace(req.Mode)) {
	case "notes":
		text := req.Text
		if text == "" {
			text = req.Notes
		}
		result, err = api.adaptationService.GenerateAdaptiveNotes(ctx, text, req.StudentType)
	case "qna":
		result, err = api.adaptationService.GenerateAdaptiveQnA(ctx, req.Notes, req.StudentType, req.Question)
	default:
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  common.CodeInvalidMode,
			Error: "mode must be one of: notes, qna",
		})
		return
	}
	if err != nil {
		api.writeGenerationError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, result)
}

func (api *AdaptationAPI) writeGenerationError(reqCtx *gin.Context, err error) {
	var validationErr *adaptation.ValidationError
	switch {
	case errors.As(err, &validationErr):
		code := common.CodeValidationError
		if validationErr.Field == "studentType" {
			code = common.CodeInvalidStudentType
		}
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  code,
			Error: validationErr.Error(),
		})
	case errors.Is(err, adaptation.ErrUpstreamExhausted):
		reqCtx.JSON(http.StatusServiceUnavailable, responses.ErrorResponse{
			Code:  common.CodeServiceUnavailable,
			Error: "content generation is temporarily unavailable",
		})
	default:
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  common.CodeInternalError,
			Error: "unexpected error",
		})
	}
}

// Health godoc
// @Summary Generation service health
// @Description Reports configured credentials and transport readiness. Never makes a network call.
// @Tags AI
// @Produce json
// @Success 200 {object} adaptation.HealthStatus
// @Failure 503 {object} adaptation.HealthStatus
// @Router /api/v1/ai/health [get]
func (api *AdaptationAPI) Health(reqCtx *gin.Context) {
	health := api.adaptationService.Health()
	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	reqCtx.JSON(status, health)
}

// Stats godoc
// @Summary Generation service counters
// @Tags AI
// @Produce json
// @Success 200 {object} adaptation.ServiceStats
// @Router /api/v1/ai/stats [get]
func (api *AdaptationAPI) Stats(reqCtx *gin.Context) {
	reqCtx.JSON(http.StatusOK, api.adaptationService.Stats())
}
