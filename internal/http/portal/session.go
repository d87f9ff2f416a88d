package portal

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTTL bounds a portal session minted from a magic link. The
// magic link itself stays valid for 30 days; the JWT is deliberately
// short so a leaked session token ages out fast.
const SessionTTL = 24 * time.Hour

var ErrInvalidSession = errors.New("invalid portal session")

type sessionClaims struct {
	CompanyID uuid.UUID `json:"company_id"`
	ClientID  uuid.UUID `json:"client_id"`
	jwt.RegisteredClaims
}

// Sessions mints and verifies portal session tokens.
type Sessions struct {
	secret []byte
	now    func() time.Time
}

func NewSessions(secret []byte) *Sessions {
	return &Sessions{secret: secret, now: time.Now}
}

// Mint issues a signed session token for the client.
func (s *Sessions) Mint(companyID, clientID uuid.UUID) (string, error) {
	now := s.now()

	claims := sessionClaims{
		CompanyID: companyID,
		ClientID:  clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	return token, nil
}

// Verify parses a session token and returns the company and client it
// was minted for.
func (s *Sessions) Verify(token string) (companyID, clientID uuid.UUID, err error) {
	var claims sessionClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return uuid.Nil, uuid.Nil, ErrInvalidSession
	}

	return claims.CompanyID, claims.ClientID, nil
}
