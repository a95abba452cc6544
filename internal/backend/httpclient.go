package backend

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"evidencija/cli/internal/config"
	"evidencija/cli/internal/errors"
	"evidencija/cli/internal/logging"
	"evidencija/cli/internal/record"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HTTP implements API over the REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests, without trailing slash
	baseURL string
	// endpoints contains the URL paths of the update and query endpoints
	endpoints config.Endpoints
	// token is the bearer credential
	token string
	// client is the underlying HTTP client
	client *http.Client
	logger *zap.Logger
}

// newHTTP creates a new HTTP client from opts.
// Without an explicit client, a fresh one is built with opts.Timeout (zero means no timeout).
func newHTTP(opts Options) *HTTP {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTP{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		endpoints: opts.Endpoints,
		token:     opts.Token,
		client:    client,
		logger:    logger.With(zap.String("component", "backend")),
	}
}

// UpdateRequest builds PUT <base>/prod/update with p as the JSON body.
func (h *HTTP) UpdateRequest(p record.Payload) (*Request, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(errors.InvalidInput, "invalid payload", err)
	}
	return newUpdateRequest(h.baseURL+h.endpoints.Update, h.token, p)
}

// QueryRequest builds GET <base>/prod/evidencija?dateFrom=..&dateTo=..
func (h *HTTP) QueryRequest(r record.DateRange) (*Request, error) {
	if err := r.Validate(); err != nil {
		return nil, errors.Wrap(errors.InvalidInput, "invalid date range", err)
	}
	return newQueryRequest(h.baseURL+h.endpoints.Query, h.token, r)
}

// Do sends req and reads the full body. Non-success statuses are returned as
// ordinary responses.
func (h *HTTP) Do(ctx context.Context, req *Request) (*Response, error) {
	logger := h.logger.With(
		zap.String("request_id", uuid.New().String()),
		zap.String("method", req.Method()),
		zap.String("url", logging.Mask(req.URL())),
	)

	httpReq, err := req.build(ctx)
	if err != nil {
		logger.Error("could not create request", zap.Error(err))
		return nil, errors.Wrap(errors.TransportFailed, "could not create request", err)
	}

	logger.Debug("sending request", zap.Int("body_bytes", len(req.body)))
	start := time.Now()
	resp, err := h.client.Do(httpReq)
	if err != nil {
		logger.Warn("request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, errors.Wrap(errors.TransportFailed, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn("unable to read response body", zap.Int("status_code", resp.StatusCode), zap.Error(err))
		return nil, errors.Wrap(errors.TransportFailed, "unable to read response body", err)
	}

	logger.Debug("received response",
		zap.Int("status_code", resp.StatusCode),
		zap.Int("body_bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header.Clone(),
		Body:       body,
	}, nil
}
