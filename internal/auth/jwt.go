// internal/auth/jwt.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"banktransfer/internal/util"
)

// Claims carries the authenticated user's identity inside the token.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HMAC-signed JWTs.
type TokenService struct {
	signingKey []byte
	issuer     string
	expiry     time.Duration
}

// NewTokenService creates a TokenService for the given signing key.
func NewTokenService(signingKey []byte, issuer string, expiry time.Duration) (*TokenService, error) {
	if len(signingKey) == 0 {
		return nil, fmt.Errorf("%w: signing key is required", util.ErrInvalidInput)
	}
	return &TokenService{
		signingKey: signingKey,
		issuer:     issuer,
		expiry:     expiry,
	}, nil
}

// CreateToken signs a token for the user.
func (s *TokenService) CreateToken(userID uuid.UUID, username string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   userID.String(),
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", util.ErrUnauthorized)
	}
	return claims, nil
}

// ExtractUserID parses the user id out of validated claims.
func (c *Claims) ExtractUserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed user id in token", util.ErrUnauthorized)
	}
	return id, nil
}
