// Package tokeninfo decodes the claims of a bearer token for display.
//
// Signatures are not verified: the API gateway does that. The claims are only
// used to tell the user who the token belongs to and whether it has expired.
package tokeninfo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrNotJWT is returned for credentials that are not three-part JWTs.
var ErrNotJWT = errors.New("token is not a JWT")

// Claims is the subset of Cognito claims the CLI shows.
type Claims struct {
	Subject   string
	Username  string
	Email     string
	Issuer    string
	TokenUse  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Inspect decodes token without verifying its signature.
func Inspect(token string) (Claims, error) {
	var c Claims
	if strings.Count(token, ".") != 2 {
		return c, ErrNotJWT
	}

	mc := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, mc); err != nil {
		return c, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}

	c.Subject = str(mc, "sub")
	c.Username = firstStr(mc, "username", "cognito:username")
	c.Email = str(mc, "email")
	c.Issuer = str(mc, "iss")
	c.TokenUse = str(mc, "token_use")
	c.IssuedAt = unix(mc, "iat")
	c.ExpiresAt = unix(mc, "exp")
	return c, nil
}

// Identity returns the most readable identifier available.
func (c Claims) Identity() string {
	for _, v := range []string{c.Email, c.Username, c.Subject} {
		if v != "" {
			return v
		}
	}
	return "unknown"
}

// Expired reports whether the token carries an exp claim at or before now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

func str(mc jwt.MapClaims, key string) string {
	if v, ok := mc[key].(string); ok {
		return v
	}
	return ""
}

func firstStr(mc jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v := str(mc, k); v != "" {
			return v
		}
	}
	return ""
}

// unix reads a NumericDate claim; the JSON decoder yields float64.
func unix(mc jwt.MapClaims, key string) time.Time {
	switch v := mc[key].(type) {
	case float64:
		return time.Unix(int64(v), 0)
	case int64:
		return time.Unix(v, 0)
	}
	return time.Time{}
}
