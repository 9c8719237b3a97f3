package token

import (
	"errors"
	"time"

	domain "powerhack/backend/internal/domain/auth"
	usecase "powerhack/backend/internal/usecase/auth"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager issues and validates HS256-signed JWT tokens.
type JWTManager struct {
	secret     []byte
	expiration time.Duration
	issuer     string
	nowFunc    func() time.Time
}

// NewJWTManager constructs a manager with the provided secret and expiration.
func NewJWTManager(secret string, expiration time.Duration, issuer string) *JWTManager {
	return &JWTManager{
		secret:     []byte(secret),
		expiration: expiration,
		issuer:     issuer,
		nowFunc:    time.Now,
	}
}

// Ensure JWTManager implements the TokenManager interface.
var _ usecase.TokenManager = (*JWTManager)(nil)

// Claims represents token claims. The payload asserts the email the bearer
// authenticated as; tokens are not persisted server-side and cannot be
// revoked before expiry.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Generate creates a signed JWT asserting the email, expiring after the
// configured duration.
func (m *JWTManager) Generate(email string) (string, error) {
	now := m.nowFunc().UTC()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses and validates the token, returning the asserted email.
// A correctly signed token past its expiry yields domain.ErrTokenExpired;
// every other failure yields domain.ErrTokenInvalid.
func (m *JWTManager) Validate(tokenString string) (string, error) {
	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !token.Valid || claims.Email == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Email, nil
}
