package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/scribehq/scribe/internal/domain"
)

// Claims holds the signed identity token payload. The tenant name, slug, and
// plan are snapshots captured at issue time; they exist for display and must
// never feed an authorization decision.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string      `json:"uid"`
	TenantID   string      `json:"tid"`
	Role       domain.Role `json:"role"`
	TenantName string      `json:"tname"`
	TenantSlug string      `json:"tslug"`
	TenantPlan domain.Plan `json:"tplan"`
}

// Sentinel errors for token decoding. Callers treat both as an authentication
// failure; the split exists so logs can tell a tampered token from a stale one.
var (
	ErrInvalidToken = errors.New("auth: invalid token")
	ErrExpiredToken = errors.New("auth: expired token")
)

// IssueToken creates a signed identity token for the given user and tenant.
func IssueToken(secret string, user *domain.User, tenant *domain.Tenant, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "scribe",
		},
		UserID:     user.ID.String(),
		TenantID:   user.TenantID.String(),
		Role:       user.Role,
		TenantName: tenant.Name,
		TenantSlug: tenant.Slug,
		TenantPlan: tenant.Plan,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("auth.IssueToken: %w", err)
	}

	return signed, nil
}

// DecodeToken parses and validates a signed identity token. Any payload
// mutation invalidates the signature. No side effects.
func DecodeToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("auth.DecodeToken: %w", ErrExpiredToken)
		}
		return nil, fmt.Errorf("auth.DecodeToken: %w", ErrInvalidToken)
	}

	if !token.Valid {
		return nil, fmt.Errorf("auth.DecodeToken: %w", ErrInvalidToken)
	}

	return claims, nil
}

// SubjectIDs parses the user and tenant IDs embedded in the claims.
func (c *Claims) SubjectIDs() (userID, tenantID uuid.UUID, err error) {
	userID, err = uuid.Parse(c.UserID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("auth.Claims.SubjectIDs: user id: %w", ErrInvalidToken)
	}

	tenantID, err = uuid.Parse(c.TenantID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("auth.Claims.SubjectIDs: tenant id: %w", ErrInvalidToken)
	}

	return userID, tenantID, nil
}
