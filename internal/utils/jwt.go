// Package utils provides general-purpose helpers shared by the client
// packages: the resty HTTP client wrapper, token inspection and id
// generation.
package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned when a token carries no "exp" claim.
var ErrNoExpiry = errors.New("token has no expiry claim")

// TokenExpiry returns the expiry time recorded in the "exp" claim of a JWT.
//
// The signature is not verified: Direct Line tokens are signed by the
// service and the client only needs the expiry to schedule a refresh.
// Returns an error if tokenString is not a JWT or has no "exp" claim.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// RefreshInterval returns how long to wait before refreshing tokenString:
// half of the lifetime left at now. If the expiry cannot be read, or the
// token is already past its expiry, fallback is returned.
func RefreshInterval(tokenString string, now time.Time, fallback time.Duration) time.Duration {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return fallback
	}

	left := exp.Sub(now)
	if left <= 0 {
		return fallback
	}

	return left / 2
}
