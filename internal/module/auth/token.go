package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/digimenu/digimenu/internal/domain"
)

// CookieName is the HTTP-only cookie carrying the session token. When both
// the cookie and an Authorization header are present, the cookie wins.
const CookieName = "auth-token"

// Claims is the verified identity carried by a session token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens. Verification is
// pure: it never touches the data store.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a TokenService. The secret must already be
// validated by config loading; an unset secret never reaches this point.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: expiry}
}

// Generate signs a token for the given user and returns it with its expiry.
func (s *TokenService) Generate(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, domain.NewAppError(domain.CodeInternal, "failed to sign token", err)
	}
	return token, expiresAt, nil
}

// Verify parses and validates a raw token string. A bad signature, an
// unexpected signing method, and an expired token all map to unauthorized.
func (s *TokenService) Verify(raw string) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.NewAppError(domain.CodeUnauthorized, "missing token", nil)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, domain.NewAppError(domain.CodeUnauthorized, "invalid token", err)
	}
	if claims.UserID == 0 {
		return nil, domain.NewAppError(domain.CodeUnauthorized, "invalid token", nil)
	}
	return claims, nil
}

// ExtractToken pulls the raw token from the auth-token cookie or, failing
// that, from an "Authorization: Bearer <token>" header. Returns "" when
// neither is present.
func ExtractToken(cookie string, authorization string) string {
	if strings.TrimSpace(cookie) != "" {
		return strings.TrimSpace(cookie)
	}
	const prefix = "Bearer "
	if len(authorization) > len(prefix) && strings.EqualFold(authorization[:len(prefix)], prefix) {
		return strings.TrimSpace(authorization[len(prefix):])
	}
	return ""
}
