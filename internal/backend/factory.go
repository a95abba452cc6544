// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"net/http"
	"time"

	"evidencija/cli/internal/config"

	"go.uber.org/zap"
)

// Options configures the HTTP backend.
type Options struct {
	// BaseURL and Endpoints locate the API (e.g., "https://...amazonaws.com" + "/prod/update").
	BaseURL   string
	Endpoints config.Endpoints
	// Token is the bearer credential sent on every request.
	Token string
	// Timeout bounds a single exchange; zero leaves it to the transport.
	Timeout time.Duration
	// Client overrides the underlying HTTP client (tests inject transports here).
	Client *http.Client
	Logger *zap.Logger
}

// New creates a backend API implementation.
// Returns HTTP client (real backend).
func New(opts Options) API {
	return newHTTP(opts)
}
