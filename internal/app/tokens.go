package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or claim checks.
var ErrInvalidToken = errors.New("invalid session token")

// DefaultTokenTTL is how long a session token stays valid.
const DefaultTokenTTL = time.Hour

// SessionClaims are the fields a session token vouches for.
type SessionClaims struct {
	SessionID string
	UserID    string
	ExpiresAt time.Time
}

// TokenService signs and verifies HS256 engine session tokens.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret, issuer string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue mints a token binding sessionID to userID.
func (s *TokenService) Issue(sessionID, userID string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("token service is nil")
	}
	if len(s.secret) == 0 {
		return "", fmt.Errorf("token secret is required")
	}
	if sessionID == "" || userID == "" {
		return "", fmt.Errorf("session and user are required")
	}

	now := s.now()
	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": userID,
		"sid": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks a token's signature, expiry and issuer and returns its claims.
func (s *TokenService) Verify(raw string) (SessionClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return SessionClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, ErrInvalidToken
	}
	if iss, _ := claims["iss"].(string); iss != s.issuer {
		return SessionClaims{}, fmt.Errorf("%w: issuer %q", ErrInvalidToken, iss)
	}
	sid, _ := claims["sid"].(string)
	sub, _ := claims["sub"].(string)
	if sid == "" || sub == "" {
		return SessionClaims{}, fmt.Errorf("%w: missing claims", ErrInvalidToken)
	}
	var expiresAt time.Time
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}
	return SessionClaims{SessionID: sid, UserID: sub, ExpiresAt: expiresAt}, nil
}
