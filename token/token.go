// Package token issues and verifies the signed access and refresh tokens
// tied to a user identity.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TypeRefresh is the type claim carried by refresh tokens. Access tokens
// carry no type claim.
const TypeRefresh = "refresh"

var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload of both token kinds: the user id plus the standard
// registered claims (expiry).
type Claims struct {
	UserID int    `json:"id"`
	Type   string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// Service signs and parses tokens with a shared HMAC secret.
type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// AccessTTL is the lifetime of issued access tokens, which doubles as the
// blacklist retention window.
func (s *Service) AccessTTL() time.Duration {
	return s.accessTTL
}

// GeneratePair issues a fresh access/refresh token pair for the user.
func (s *Service) GeneratePair(userID int) (access, refresh string, err error) {
	access, err = s.sign(userID, "", s.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.sign(userID, TypeRefresh, s.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *Service) sign(userID int, tokenType string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies the signature and expiry of tokenStr and returns its
// claims. Expired tokens surface as an error matching jwt.ErrTokenExpired.
func (s *Service) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
