package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"abled.ai/abled-api-gateway/app/domain/user"
	"abled.ai/abled-api-gateway/app/infrastructure/cache"
	"abled.ai/abled-api-gateway/app/interfaces/http/responses"
	"abled.ai/abled-api-gateway/config/environment_variables"
)

const TokenTTL = 12 * time.Hour

type AuthService struct {
	userService  *user.UserService
	cacheService cache.CacheService
}

func NewAuthService(userService *user.UserService, cacheService cache.CacheService) *AuthService {
	return &AuthService{
		userService:  userService,
		cacheService: cacheService,
	}
}

// IssueToken signs a JWT for the user. The jti enables later revocation.
func (s *AuthService) IssueToken(u *user.User) (string, int, error) {
	now := time.Now()
	claim := UserClaim{
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		StudentType: u.StudentType,
		School:      u.School,
		Class:       u.Class,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.PublicID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	signed, err := CreateJwtSignedString(claim)
	if err != nil {
		return "", 0, err
	}
	return signed, int(TokenTTL.Seconds()), nil
}

// RevokeToken blacklists the token's jti until its natural expiry.
func (s *AuthService) RevokeToken(ctx context.Context, claim *UserClaim) error {
	if claim.ID == "" || claim.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claim.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	key := fmt.Sprintf(cache.RevokedTokenKeyPattern, claim.ID)
	return s.cacheService.Set(ctx, key, "1", ttl)
}

func (s *AuthService) isRevoked(ctx context.Context, jti string) bool {
	if jti == "" {
		return false
	}
	revoked, err := s.cacheService.Exists(ctx, fmt.Sprintf(cache.RevokedTokenKeyPattern, jti))
	return err == nil && revoked
}

// AppUserAuthMiddleware validates the bearer token and stores the claim
// in the request context.
func (s *AuthService) AppUserAuthMiddleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		claim, ok := s.parseClaimFromHeader(reqCtx)
		if !ok {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "0a4d12bd-6a3f-4f0e-9d0c-61b6f7e5f0c2",
			})
			return
		}
		if s.isRevoked(reqCtx.Request.Context(), claim.ID) {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "5dc9f3a1-0a95-4f58-bb2e-9ba3f3a7b011",
			})
			return
		}
		reqCtx.Set(ContextUserClaim, claim)
		reqCtx.Next()
	}
}

// RoleMiddleware rejects callers whose role is not in the allowed set.
// Must run after AppUserAuthMiddleware.
func (s *AuthService) RoleMiddleware(roles ...user.Role) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[string(role)] = true
	}
	return func(reqCtx *gin.Context) {
		claim, ok := GetClaimFromContext(reqCtx)
		if !ok || !allowed[claim.Role] {
			reqCtx.AbortWithStatusJSON(http.StatusForbidden, responses.ErrorResponse{
				Code: "74c7a2eb-8a3d-4f86-a2be-0a44cf2a9ed4",
			})
			return
		}
		reqCtx.Next()
	}
}

func (s *AuthService) parseClaimFromHeader(reqCtx *gin.Context) (*UserClaim, bool) {
	authHeader := reqCtx.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, false
	}
	token, err := jwt.ParseWithClaims(parts[1], &UserClaim{}, func(token *jwt.Token) (interface{}, error) {
		return environment_variables.EnvironmentVariables.JWT_SECRET, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claim, ok := token.Claims.(*UserClaim)
	if !ok {
		return nil, false
	}
	return claim, true
}

func GetClaimFromContext(reqCtx *gin.Context) (*UserClaim, bool) {
	value, exists := reqCtx.Get(ContextUserClaim)
	if !exists {
		return nil, false
	}
	claim, ok := value.(*UserClaim)
	return claim, ok
}
