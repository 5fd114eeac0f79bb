package api

import "github.com/golang-jwt/jwt/v5"

// JwtCustomClaims is the claims shape issued by the user service.
type JwtCustomClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}
