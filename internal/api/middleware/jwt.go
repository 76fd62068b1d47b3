package middleware

import (
	"time"

	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/pkg/types"
	"github.com/golang-jwt/jwt/v5"
)

// JWT signs and validates session tokens. The signing key comes from the
// injected config, never from the environment directly.
type JWT struct {
	key    []byte
	issuer string
	ttl    time.Duration
}

func NewJWT(cfg *config.Config) *JWT {
	return &JWT{
		key:    []byte(cfg.JwtSecret),
		issuer: cfg.Issuer,
		ttl:    cfg.TokenTTL,
	}
}

// GenerateToken issues a signed token carrying the user id and role.
func (j *JWT) GenerateToken(userID uint, role string) (string, error) {
	claims := &types.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    j.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.key)
}

// ParseToken validates and extracts claims.
func (j *JWT) ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	// Explicitly enforce expiration to avoid lax parser behavior
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, jwt.ErrTokenExpired
	}

	return claims, nil
}
