package google

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"

	oidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"abled.ai/abled-api-gateway/app/domain/auth"
	"abled.ai/abled-api-gateway/app/domain/user"
	"abled.ai/abled-api-gateway/app/interfaces/http/responses"
	"abled.ai/abled-api-gateway/app/utils/logger"
	"abled.ai/abled-api-gateway/config/environment_variables"
)

// GoogleAuthAPI signs teachers in through Google OIDC. Students never
// reach this flow; their sessions are anonymous.
type GoogleAuthAPI struct {
	oAuth2Config *oauth2.Config
	oidcProvider *oidc.Provider
	userService  *user.UserService
	authService  *auth.AuthService
}

func NewGoogleAuthAPI(userService *user.UserService, authService *auth.AuthService) *GoogleAuthAPI {
	oauth2Config := &oauth2.Config{
		ClientID:     environment_variables.EnvironmentVariables.OAUTH2_GOOGLE_CLIENT_ID,
		ClientSecret: environment_variables.EnvironmentVariables.OAUTH2_GOOGLE_CLIENT_SECRET,
		RedirectURL:  environment_variables.EnvironmentVariables.OAUTH2_GOOGLE_REDIRECT_URL,
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		Endpoint:     google.Endpoint,
	}

	var provider *oidc.Provider
	if oauth2Config.ClientID != "" {
		p, err := oidc.NewProvider(context.Background(), "https://accounts.google.com")
		if err != nil {
			logger.GetLogger().WithFields(logrus.Fields{"error": err.Error()}).Warn("google oidc discovery failed, google login disabled")
		} else {
			provider = p
		}
	}
	return &GoogleAuthAPI{
		oAuth2Config: oauth2Config,
		oidcProvider: provider,
		userService:  userService,
		authService:  authService,
	}
}

func (googleAuthAPI *GoogleAuthAPI) RegisterRouter(router gin.IRouter) {
	googleRouter := router.Group("/google")
	googleRouter.GET("/login", googleAuthAPI.GetGoogleLogin)
	googleRouter.POST("/callback", googleAuthAPI.HandleGoogleCallback)
}

func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// GetGoogleLogin godoc
// @Summary Start Google login
// @Description Redirects to Google's consent screen with a state cookie for CSRF protection.
// @Tags Authentication
// @Success 307
// @Router /api/v1/auth/google/login [get]
func (googleAuthAPI *GoogleAuthAPI) GetGoogleLogin(reqCtx *gin.Context) {
	if googleAuthAPI.oidcProvider == nil {
		reqCtx.JSON(http.StatusServiceUnavailable, responses.ErrorResponse{
			Code: "4f1f7c53-9a6e-4f37-9e3d-1d2f43a6b970",
		})
		return
	}
	state, err := generateState()
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "c56a7a42-3c9e-4a86-b6f8-5c7d3e21aa09",
			Error: err.Error(),
		})
		return
	}
	reqCtx.SetCookie(auth.OAuthStateKey, state, 300, "/", "", false, true)
	reqCtx.Redirect(http.StatusTemporaryRedirect, googleAuthAPI.oAuth2Config.AuthCodeURL(state))
}

type GoogleCallbackRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state"`
}

type GoogleCallbackResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Email       string `json:"email"`
	Name        string `json:"name"`
}

// HandleGoogleCallback godoc
// @Summary Complete Google login
// @Description Exchanges the authorization code, verifies the ID token and returns a session JWT for the matching teacher account.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body GoogleCallbackRequest true "Authorization code and state"
// @Success 200 {object} GoogleCallbackResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /api/v1/auth/google/callback [post]
func (googleAuthAPI *GoogleAuthAPI) HandleGoogleCallback(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	if googleAuthAPI.oidcProvider == nil {
		reqCtx.JSON(http.StatusServiceUnavailable, responses.ErrorResponse{
			Code: "a30b46a3-43ad-4f70-b5f9-61fb5f99a9d4",
		})
		return
	}

	var req GoogleCallbackRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "e3b5aa6e-b6d5-4b0e-a1af-2f80bb7f46a1",
		})
		return
	}

	storedState, err := reqCtx.Cookie(auth.OAuthStateKey)
	if err != nil || storedState != req.State {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "897e5f0a-d3f0-4cf5-a77e-6c25c3b7b1c4",
		})
		return
	}

	token, err := googleAuthAPI.oAuth2Config.Exchange(ctx, req.Code)
	if err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "2a9cdcbb-77e8-44bd-b9e2-07a28a2e1f74",
		})
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code: "0b00b8a6-25fd-4b63-9f7e-d7a1ec0e07a3",
		})
		return
	}
	verifier := googleAuthAPI.oidcProvider.Verifier(&oidc.Config{ClientID: googleAuthAPI.oAuth2Config.ClientID})
	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		reqCtx.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "9d2f27ab-44b0-4b1f-9c11-1ec7f9c2a260",
			Error: err.Error(),
		})
		return
	}

	var claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "75fb0d9a-6a27-4f7b-9b8e-cb2f8e91d504",
			Error: err.Error(),
		})
		return
	}

	u, err := googleAuthAPI.userService.FindOrCreateOAuthUser(ctx, claims.Email, claims.Name)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "d1c4f5b2-8a09-4f41-b0ae-64e7b1e8a733",
			Error: err.Error(),
		})
		return
	}

	accessToken, expiresIn, err := googleAuthAPI.authService.IssueToken(u)
	if err != nil {
		reqCtx.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "6f03c1ff-31cd-4f5e-8f7a-256bb84dd6a1",
			Error: err.Error(),
		})
		return
	}

	reqCtx.JSON(http.StatusOK, GoogleCallbackResponse{
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
		Email:       u.Email,
		Name:        u.Name,
	})
}
