package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload carried by every session token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
