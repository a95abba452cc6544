// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the transport used to talk to the evidencija REST API.
// It builds immutable request descriptors for the update and query endpoints and
// executes exactly one HTTP exchange per call. Interpreting status codes is left
// to callers; the only error Do returns on its own is a transport failure.
package backend

import (
	"context"

	"evidencija/cli/internal/record"
)

// API defines backend operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
type API interface {
	// UpdateRequest builds the authenticated PUT descriptor for p.
	UpdateRequest(p record.Payload) (*Request, error)
	// QueryRequest builds the authenticated GET descriptor for r.
	QueryRequest(r record.DateRange) (*Request, error)
	// Do sends req once and returns the response record. Any failure to
	// complete the exchange is a TransportFailed error.
	Do(ctx context.Context, req *Request) (*Response, error)
}
