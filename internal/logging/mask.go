// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the diagnostic logger and utilities for secure output.
// It includes functions for masking bearer tokens and other credentials in
// messages and headers, and for formatting errors for user-friendly display.
//
// The package helps ensure that tokens are not accidentally exposed in logs,
// request dumps, or error messages shown to users.
package logging

import (
	"net/http"
	"regexp"
	"sort"
	"strings"
)

var (
	reBearer = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._~+/=-]+)`)
	reToken  = regexp.MustCompile(`(?i)(token=|access_token=|id_token=)([^\s&;"']+)`)
	reJWT    = regexp.MustCompile(`eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`)
	reAPIKey = regexp.MustCompile(`(?i)(apikey=|api_key=|x-api-key:\s*)([^\s;&]+)`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	out = reJWT.ReplaceAllString(out, "***")
	return out
}

// MaskHeaders flattens h into a single-valued map with credentials masked.
// Keys keep their canonical form.
func MaskHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vals := range h {
		v := strings.Join(vals, ", ")
		switch http.CanonicalHeaderKey(k) {
		case "Authorization", "Cookie", "X-Api-Key":
			v = maskCredential(v)
		default:
			v = Mask(v)
		}
		out[http.CanonicalHeaderKey(k)] = v
	}
	return out
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// maskCredential keeps the auth scheme and hides the credential itself.
func maskCredential(v string) string {
	scheme, _, found := strings.Cut(strings.TrimSpace(v), " ")
	if found && scheme != "" {
		return scheme + " ***"
	}
	return "***"
}
