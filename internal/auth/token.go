package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"grain-market/internal/markerrors"
	model "grain-market/internal/models"
)

// DefaultTokenTTL matches the original 30-day session length
const DefaultTokenTTL = 43200 * time.Minute

// Principal is the authenticated identity extracted from a validated
// token. It is passed by value through the request chain; no handler
// re-reads the user record for authorization decisions.
type Principal struct {
	ID            string
	Email         string
	Role          model.Role
	Accreditation model.AccreditationStatus
}

// IsAdmin reports whether the principal holds the admin role
func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

// IsApprovedBuyer reports whether the principal may participate in auctions
func (p Principal) IsApprovedBuyer() bool {
	return p.Accreditation == model.AccreditationApproved
}

type sessionClaims struct {
	Email         string `json:"email"`
	Role          string `json:"role"`
	Accreditation string `json:"accreditation_status"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 session tokens
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager. A non-positive ttl falls back
// to DefaultTokenTTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a session token for the user
func (m *TokenManager) Issue(user model.User) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		Email:         user.Email,
		Role:          string(user.Role),
		Accreditation: string(user.AccreditationStatus),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token for user %s: %w", user.ID, err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded principal.
// Any failure maps to ErrInvalidToken; callers never learn why a token
// was rejected.
func (m *TokenManager) Verify(tokenString string) (Principal, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", markerrors.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return Principal{}, markerrors.ErrInvalidToken
	}

	return Principal{
		ID:            claims.Subject,
		Email:         claims.Email,
		Role:          model.Role(claims.Role),
		Accreditation: model.AccreditationStatus(claims.Accreditation),
	}, nil
}
