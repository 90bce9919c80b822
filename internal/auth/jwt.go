package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mmynk/tripledger/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

const issuer = "tripledger"

var signingMethod = jwt.SigningMethodHS256

// Claims identify the trip owner behind a session token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 session tokens for trip owners.
type JWTManager struct {
	key    []byte
	ttl    time.Duration
	parser *jwt.Parser
	now    func() time.Time
}

func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	m := &JWTManager{
		key: []byte(secretKey),
		ttl: tokenDuration,
		now: time.Now,
	}
	m.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	return m
}

// Generate issues a token for user that expires after the configured TTL.
func (m *JWTManager) Generate(user *models.User) (string, error) {
	issued := m.now()
	signed, err := jwt.NewWithClaims(signingMethod, m.claimsFor(user, issued)).SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("sign token for user %s: %w", user.ID, err)
	}
	return signed, nil
}

func (m *JWTManager) claimsFor(user *models.User, issued time.Time) *Claims {
	return &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(m.ttl)),
		},
	}
}

// Validate returns the claims of a well-formed, unexpired token.
// Every failure wraps ErrInvalidToken.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	var claims Claims
	token, err := m.parser.ParseWithClaims(tokenString, &claims, m.keyFunc)
	switch {
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	case !token.Valid, claims.UserID == "":
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func (m *JWTManager) keyFunc(*jwt.Token) (any, error) {
	return m.key, nil
}
