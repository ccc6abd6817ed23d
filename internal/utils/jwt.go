package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoUserInToken is returned when a token carries neither a subject nor a
// user id claim.
var ErrNoUserInToken = errors.New("token has no user identifier")

// ParseBearerToken strips an optional "Bearer " scheme from an authorization
// value. A bare token is returned unchanged.
func ParseBearerToken(authorization string) (string, error) {
	value := strings.TrimSpace(authorization)
	if value == "" {
		return "", errors.New("empty authorization value")
	}

	parts := strings.Fields(value)
	switch {
	case len(parts) == 1:
		return parts[0], nil
	case len(parts) == 2 && strings.EqualFold(parts[0], "bearer"):
		return parts[1], nil
	default:
		return "", errors.New("invalid authorization value")
	}
}

// ParseUserIDFromJWT extracts the user id from a JWT without verifying its
// signature. The signature is checked by the cloud on every request; the
// client only needs the identity to address the user's locker.
//
// The subject claim is preferred; "user_id" and "uid" are accepted as
// fallbacks (string or numeric).
func ParseUserIDFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("error occurred parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub, nil
	}

	for _, key := range []string{"user_id", "uid"} {
		switch v := claims[key].(type) {
		case string:
			if v != "" {
				return v, nil
			}
		case float64:
			return strconv.FormatInt(int64(v), 10), nil
		}
	}

	return "", ErrNoUserInToken
}
