package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"evidencija/cli/internal/errors"
	"evidencija/cli/internal/record"
)

// Request is an immutable description of one API call. Accessors return copies.
type Request struct {
	method string
	url    string
	header http.Header
	body   []byte
	query  url.Values
}

func newUpdateRequest(endpoint, token string, p record.Payload) (*Request, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(errors.InvalidInput, "could not encode payload", err)
	}
	h := authHeader(token)
	h.Set("Content-Type", "application/json")
	return &Request{
		method: http.MethodPut,
		url:    endpoint,
		header: h,
		body:   body,
	}, nil
}

func newQueryRequest(endpoint, token string, r record.DateRange) (*Request, error) {
	if _, err := url.Parse(endpoint); err != nil {
		return nil, errors.Wrap(errors.InvalidInput, "invalid query endpoint", err)
	}
	h := authHeader(token)
	h.Set("Content-Type", "application/json")
	return &Request{
		method: http.MethodGet,
		url:    endpoint,
		header: h,
		query: url.Values{
			"dateFrom": {r.From},
			"dateTo":   {r.To},
		},
	}, nil
}

func authHeader(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	h.Set("Accept", "application/json")
	return h
}

// Method returns the HTTP method.
func (r *Request) Method() string { return r.method }

// URL returns the absolute URL including the encoded query string.
func (r *Request) URL() string {
	if len(r.query) == 0 {
		return r.url
	}
	u, err := url.Parse(r.url)
	if err != nil {
		return r.url
	}
	q := u.Query()
	for k, vs := range r.query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Header returns a copy of the request headers, credentials included.
func (r *Request) Header() http.Header { return r.header.Clone() }

// Body returns a copy of the encoded body; nil for GET.
func (r *Request) Body() []byte {
	if r.body == nil {
		return nil
	}
	return append([]byte(nil), r.body...)
}

// Query returns a copy of the query parameters.
func (r *Request) Query() url.Values {
	out := make(url.Values, len(r.query))
	for k, vs := range r.query {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

// build materializes the descriptor as a *http.Request bound to ctx.
func (r *Request) build(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, r.URL(), body)
	if err != nil {
		return nil, err
	}
	req.Header = r.header.Clone()
	return req, nil
}
