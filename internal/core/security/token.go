package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/explora/travel-system/internal/core/domain"
)

// TokenTTL is how long an issued session token remains valid.
const TokenTTL = 4 * time.Hour

// Claims are the session facts embedded in a signed token. They are never
// persisted; every request reconstructs them from the token itself.
type Claims struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HS256-signed session tokens. Both services
// hold the same signing secret, so the resource API validates tokens locally
// without calling back to the auth service.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: TokenTTL, now: time.Now}
}

// Issue signs a token for the user with expiry fixed at issuance time.
func (c *TokenCodec) Issue(user *domain.User) (string, error) {
	now := c.now().UTC()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies signature and expiry and returns the embedded claims.
// Every failure collapses to domain.ErrInvalidToken: callers must not be able
// to distinguish a forged token from an expired or malformed one.
func (c *TokenCodec) Decode(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
