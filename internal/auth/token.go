package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is the single failure returned by Validate. Bad signature,
// expiry, missing claims and malformed ids are deliberately indistinguishable.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated subject carried by a validated token.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

type tokenClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed bearer tokens. The secret and TTL
// are fixed at construction and never change for the process lifetime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue builds a signed token with claims {sub: username, id: userID, exp: now+ttl}.
func (s *TokenService) Issue(username string, userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// Validate verifies the signature and claims of a raw token string. Any single
// failed check rejects the whole token with ErrInvalidToken.
func (s *TokenService) Validate(raw string) (Identity, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		UserID:   userID,
		Username: claims.Subject,
	}, nil
}
