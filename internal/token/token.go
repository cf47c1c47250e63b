// Package token issues and verifies the stateless HS256 session tokens.
// Validity is determined entirely by signature and expiration; nothing is
// stored server side.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gamevault/game-store/internal/apperr"
)

type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

type Service struct {
	Secret []byte
	TTL    time.Duration
}

func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{Secret: secret, TTL: ttl}
}

// Generate signs a token for the given subject with the service TTL.
func (s *Service) Generate(subject string, userID uint) (string, error) {
	return s.GenerateWithTTL(subject, userID, s.TTL)
}

func (s *Service) GenerateWithTTL(subject string, userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.Secret)
}

func (s *Service) parse(raw string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !t.Valid {
		return nil, fmt.Errorf("parse token: %v: %w", err, apperr.ErrMalformedToken)
	}
	return claims, nil
}

// Verify fails closed: any malformed, tampered or expired token is false.
// True only when the signature checks out, the token is unexpired and the
// subject matches the expected one.
func (s *Service) Verify(raw, expectedSubject string) bool {
	claims, err := s.parse(raw)
	if err != nil {
		return false
	}
	return claims.Subject == expectedSubject
}

func (s *Service) ExtractSubject(raw string) (string, error) {
	claims, err := s.parse(raw)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *Service) ExtractUserID(raw string) (uint, error) {
	claims, err := s.parse(raw)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func (s *Service) ExtractExpiration(raw string) (time.Time, error) {
	claims, err := s.parse(raw)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("token has no expiration: %w", apperr.ErrMalformedToken)
	}
	return claims.ExpiresAt.Time, nil
}
