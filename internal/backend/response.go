package backend

import (
	"bytes"
	"encoding/json"
	"net/http"

	"evidencija/cli/internal/errors"
)

// Response is the record of one completed exchange.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// Text returns the body as text.
func (r *Response) Text() string { return string(r.Body) }

// JSON returns the body as raw JSON, or an InvalidJSON error when it does not parse.
func (r *Response) JSON() (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(r.Body)
	var raw json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, errors.Wrap(errors.InvalidJSON, "response is not JSON", err)
	}
	return raw, nil
}

// StatusIn reports whether the status code is one of accepted.
func (r *Response) StatusIn(accepted ...int) bool {
	for _, c := range accepted {
		if r.StatusCode == c {
			return true
		}
	}
	return false
}
