package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const (
	SessionTokenName = "session_token"

	defaultExpiry = 24 * time.Hour
)

// Claims carries the identity claims embedded in a session token.
type Claims struct {
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	jwt.RegisteredClaims
}

// Service issues and parses session tokens signed with HS256.
type Service struct {
	secret   string
	issuer   string
	audience string
	expiry   time.Duration
}

// Option customizes a token Service.
type Option func(*Service)

// WithExpiry overrides the default token lifetime.
func WithExpiry(d time.Duration) Option {
	return func(s *Service) {
		s.expiry = d
	}
}

// WithIssuer sets the iss claim on issued tokens.
func WithIssuer(issuer string) Option {
	return func(s *Service) {
		s.issuer = issuer
	}
}

// WithAudience sets the aud claim on issued tokens.
func WithAudience(audience string) Option {
	return func(s *Service) {
		s.audience = audience
	}
}

// NewService creates a token Service with the given signing secret.
func NewService(secret string, opts ...Option) *Service {
	s := &Service{
		secret:   secret,
		issuer:   "purevote",
		audience: "purevote",
		expiry:   defaultExpiry,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateToken creates a signed session token for the given user.
func (s *Service) GenerateToken(userID uuid.UUID, email, displayName string) (string, time.Time, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email:       email,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Minute)),
			Issuer:    s.issuer,
			Subject:   userID.String(),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{s.audience},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString([]byte(s.secret))
	if err != nil {
		slog.Error("Failed sign JWT Claim string!", "err", err)
		return "", time.Time{}, err
	}
	return ss, claims.ExpiresAt.Time, nil
}

// ParseToken parses and validates a session token string.
func (s *Service) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		slog.Error("Failed parse JWT string!", "err", err)
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// UserID returns the subject claim as a uuid.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}
