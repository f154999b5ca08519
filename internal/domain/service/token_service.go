package service

import (
	"github.com/golang-jwt/jwt/v5"

	"influencerhub/internal/domain/entity"
)

// Claims defines the identity assertion carried by both token kinds.
type Claims struct {
	UserID string      `json:"userId"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating the signed,
// time-limited identity tokens. Validation fails closed: any parse, signature
// or expiry problem surfaces as an error and the caller treats the bearer as
// unauthenticated. The service asserts identity only; role-specific
// authorization is each caller's responsibility.
type TokenService interface {
	// GenerateTokens creates an access token and a refresh token for the
	// given identity.
	GenerateTokens(userID, email string, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)
}
