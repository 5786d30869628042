package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"abled.ai/abled-api-gateway/app/domain/adaptation"
	"abled.ai/abled-api-gateway/app/domain/auth"
	"abled.ai/abled-api-gateway/app/domain/common"
	"abled.ai/abled-api-gateway/app/domain/user"
	"abled.ai/abled-api-gateway/app/interfaces/http/responses"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes/v1/auth/google"
)

type AuthRoute struct {
	google      *google.GoogleAuthAPI
	userService *user.UserService
	authService *auth.AuthService
}

func NewAuthRoute(google *google.GoogleAuthAPI, userService *user.UserService, authService *auth.AuthService) *AuthRoute {
	return &AuthRoute{
		google:      google,
		userService: userService,
		authService: authService,
	}
}

func (authRoute *AuthRoute) RegisterRouter(router gin.IRouter) {
	authRouter := router.Group("/auth")
	authRouter.POST("/student-login", authRoute.StudentLogin)
	authRouter.POST("/teacher/register", authRoute.TeacherRegister)
	authRouter.POST("/teacher/login", authRoute.TeacherLogin)
	authRouter.GET("/me",
		authRoute.authService.AppUserAuthMiddleware(),
		authRoute.GetMe,
	)
	authRouter.POST("/logout",
		authRoute.authService.AppUserAuthMiddleware(),
		authRoute.Logout,
	)
	authRoute.google.RegisterRouter(authRouter)
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	StudentType string `json:"studentType,omitempty"`
}

type StudentLoginRequest struct {
	StudentType string `json:"studentType" binding:"required"`
	Name        string `json:"name"`
	School      string `json:"school"`
	Class       string `json:"class"`
}

// StudentLogin godoc
// @Summary Anonymous student session
// @Description Creates an anonymous student account for the given accessibility profile and returns a session JWT. Legacy profile names (blind, deaf, cant_speak, special) are accepted.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body StudentLoginRequest true "Student profile"
// @Success 200 {object} AccessTokenResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /api/v1/auth/student-login [post]
func (authRoute *AuthRoute) StudentLogin(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	var req StudentLoginRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "3c3f4e4e-5ad0-4e2a-b4b8-2f35b4a0c9f1",
		})
		return
	}

	u, err := authRoute.userService.RegisterStudent(ctx, req.StudentType, req.Name, req.School, req.Class)
	if err != nil {
		authRoute.writeUserError(reqCtx, err, "b25f9f6b-0dc1-4f7e-b1c4-7a2f0dcd7f02")
		return
	}
	authRoute.writeToken(reqCtx, u)
}

type TeacherRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	School   string `json:"school"`
}

// TeacherRegister godoc
// @Summary Register a teacher account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body TeacherRegisterRequest true "Account details"
// @Success 200 {object} AccessTokenResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /api/v1/auth/teacher/register [post]
func (authRoute *AuthRoute) TeacherRegister(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	var req TeacherRegisterRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "8d96b5a7-9c0f-4d7e-8f11-3a7d8bb7a6e4",
		})
		return
	}

	u, err := authRoute.userService.RegisterTeacher(ctx, req.Name, req.Email, req.Password, req.School)
	if err != nil {
		authRoute.writeUserError(reqCtx, err, "fd3a1f70-7b6f-4f8e-b53c-1e2a4f5f0b88")
		return
	}
	authRoute.writeToken(reqCtx, u)
}

type TeacherLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TeacherLogin godoc
// @Summary Teacher password login
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body TeacherLoginRequest true "Credentials"
// @Success 200 {object} AccessTokenResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /api/v1/auth/teacher/login [post]
func (authRoute *AuthRoute) TeacherLogin(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	var req TeacherLoginRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "0f7a4cf6-5a1f-47cf-bd4e-9a63b7f2d0c5",
		})
		return
	}

	u, err := authRoute.userService.VerifyTeacher(ctx, req.Email, req.Password)
	if err != nil || u == nil {
		reqCtx.JSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "a6f2b9f4-3c8e-4f0a-8d27-6b1e9c4a7d52",
		})
		return
	}
	authRoute.writeToken(reqCtx, u)
}

type GetMeResponse struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	StudentType string `json:"studentType,omitempty"`
	School      string `json:"school,omitempty"`
	Class       string `json:"class,omitempty"`
}

// GetMe godoc
// @Summary Current session profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} GetMeResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /api/v1/auth/me [get]
func (authRoute *AuthRoute) GetMe(reqCtx *gin.Context) {
	claim, ok := auth.GetClaimFromContext(reqCtx)
	if !ok {
		reqCtx.JSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "4e6a8892-1b3b-4a6f-b7f2-0c9d6e5a3f18",
		})
		return
	}
	reqCtx.JSON(http.StatusOK, GetMeResponse{
		ID:          claim.Subject,
		Role:        claim.Role,
		Name:        claim.Name,
		Email:       claim.Email,
		StudentType: claim.StudentType,
		School:      claim.School,
		Class:       claim.Class,
	})
}

// Logout godoc
// @Summary Revoke the current session token
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} responses.GeneralResponse[string]
// @Router /api/v1/auth/logout [post]
func (authRoute *AuthRoute) Logout(reqCtx *gin.Context) {
	claim, ok := auth.GetClaimFromContext(reqCtx)
	if ok {
		if err := authRoute.authService.RevokeToken(reqCtx.Request.Context(), claim); err != nil {
			reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
				Code:  "62a5b087-6f1f-4f3e-8b0a-4d9c2e7f5a31",
				Error: err.Error(),
			})
			return
		}
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[string]{
		Status: responses.StatusOk,
		Result: "logged out",
	})
}

func (authRoute *AuthRoute) writeToken(reqCtx *gin.Context, u *user.User) {
	accessToken, expiresIn, err := authRoute.authService.IssueToken(u)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "1fb7e5d3-2c4a-4b8f-9e60-7a5d3c2b1f09",
			Error: err.Error(),
		})
		return
	}
	reqCtx.JSON(http.StatusOK, AccessTokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
		UserID:      u.PublicID,
		Role:        string(u.Role),
		StudentType: u.StudentType,
	})
}

func (authRoute *AuthRoute) writeUserError(reqCtx *gin.Context, err error, internalCode string) {
	var validationErr *adaptation.ValidationError
	if errors.As(err, &validationErr) {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  common.CodeValidationError,
			Error: validationErr.Error(),
		})
		return
	}
	reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
		Code: internalCode,
	})
}
