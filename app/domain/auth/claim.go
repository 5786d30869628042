package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"abled.ai/abled-api-gateway/config/environment_variables"
)

const OAuthStateKey = "abled_oauth_state"
const ContextUserClaim = "context_user_claim"

type UserClaim struct {
	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
	Role        string `json:"role"`
	StudentType string `json:"studentType,omitempty"`
	School      string `json:"school,omitempty"`
	Class       string `json:"class,omitempty"`
	jwt.RegisteredClaims
}

func CreateJwtSignedString(u UserClaim) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, u)
	return token.SignedString(environment_variables.EnvironmentVariables.JWT_SECRET)
}
