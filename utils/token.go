package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned by CheckTokenFreshness for tokens past their exp claim.
var ErrTokenExpired = errors.New("auth token expired")

// CheckTokenFreshness inspects the exp claim of a backend-issued JWT
// without verifying its signature. The client only needs to know
// whether a stored token is worth presenting again; the backend
// remains the authority on validity.
func CheckTokenFreshness(tokenString string) error {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return errors.New("malformed auth token")
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		// No exp claim: treat as non-expiring.
		return nil
	}
	if time.Now().After(exp.Time) {
		return ErrTokenExpired
	}
	return nil
}

// ExtractSubject returns the sub claim of a backend-issued JWT, if present.
func ExtractSubject(tokenString string) (string, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", errors.New("malformed auth token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
