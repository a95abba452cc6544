// Package credentials resolves the bearer token used to call the API.
//
// Tokens are never compiled in or written to config files. They come from the
// EVIDENCIJA_TOKEN environment variable (which a .env file may populate) or
// from the OS keychain entry written by `evidencija login`.
package credentials

import (
	"errors"
	"fmt"
	"strings"

	"evidencija/cli/internal/keychain"
)

// EnvToken names the environment variable holding the bearer token.
const EnvToken = "EVIDENCIJA_TOKEN"

// ErrNoToken is returned when no source provides a token.
var ErrNoToken = errors.New("no API token found: set " + EnvToken + " or run 'evidencija login'")

// Source names where a token came from.
type Source string

const (
	SourceEnv      Source = "environment"
	SourceKeychain Source = "keychain"
)

// Store is the secret store consulted after the environment.
type Store interface {
	LoadAccessToken() (string, error)
}

// Token holds a resolved credential. Release zeroes it; callers defer Release
// right after resolving.
type Token struct {
	value  []byte
	Source Source
}

// Bearer returns the token text, or "" once released.
func (t *Token) Bearer() string {
	return string(t.value)
}

// Release wipes the token bytes.
func (t *Token) Release() {
	for i := range t.value {
		t.value[i] = 0
	}
	t.value = nil
}

// Resolve looks up the token in the environment, then in store.
// store may be nil when no keychain is available.
func Resolve(getenv func(string) string, store Store) (*Token, error) {
	if v := Normalize(getenv(EnvToken)); v != "" {
		return &Token{value: []byte(v), Source: SourceEnv}, nil
	}
	if store == nil {
		return nil, ErrNoToken
	}
	v, err := store.LoadAccessToken()
	if err != nil {
		if errors.Is(err, keychain.ErrNotFound) {
			return nil, ErrNoToken
		}
		return nil, fmt.Errorf("read keychain: %w", err)
	}
	if v = Normalize(v); v == "" {
		return nil, ErrNoToken
	}
	return &Token{value: []byte(v), Source: SourceKeychain}, nil
}

// With resolves a token, passes it to fn and releases it when fn returns.
func With(getenv func(string) string, store Store, fn func(*Token) error) error {
	tok, err := Resolve(getenv, store)
	if err != nil {
		return err
	}
	defer tok.Release()
	return fn(tok)
}

// Normalize trims whitespace and an optional "Bearer " prefix, matched
// case-insensitively, so pasted Authorization header values work.
func Normalize(value string) string {
	v := strings.TrimSpace(value)
	if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
		v = strings.TrimSpace(v[7:])
	}
	return v
}
