package model

import "github.com/golang-jwt/jwt"

// UserClaims are the claims we read from the auth provider's bearer token.
// The user id is the standard subject claim.
type UserClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.StandardClaims
}
