// Package report renders what the update and query clients do to the console:
// the outgoing request, the response status, the returned data and failures.
package report

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"

	"evidencija/cli/internal/artifact"
	"evidencija/cli/internal/backend"
	"evidencija/cli/internal/errors"
	"evidencija/cli/internal/httperrors"
	"evidencija/cli/internal/logging"

	"github.com/pterm/pterm"
)

// Presenter writes human-readable progress to an io.Writer.
type Presenter struct {
	w io.Writer
}

// New returns a Presenter writing to w.
func New(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

func (p *Presenter) println(a ...any) { pterm.Fprintln(p.w, a...) }

func (p *Presenter) printf(format string, a ...any) {
	pterm.Fprintln(p.w, fmt.Sprintf(format, a...))
}

// Sending prints the request about to go out: method, URL, headers with the
// credential masked, and the body when there is one.
func (p *Presenter) Sending(req *backend.Request) {
	p.printf("Sending %s request to %s", req.Method(), req.URL())

	headers := logging.MaskHeaders(req.Header())
	p.println("Headers:")
	for _, k := range logging.SortedKeys(headers) {
		p.printf("  %s: %s", k, headers[k])
	}

	if body := req.Body(); len(body) > 0 {
		p.println("Payload:")
		p.println(pretty(body))
	}
}

// Status prints the response status line.
func (p *Presenter) Status(code int) {
	p.println()
	p.printf("Response status code: %d", code)
}

// Success announces an accepted response.
func (p *Presenter) Success() {
	pterm.Success.WithWriter(p.w).Println("Request successful!")
}

// Data prints a JSON document under a heading.
func (p *Presenter) Data(heading string, raw json.RawMessage) {
	p.println()
	p.println(heading)
	p.println(pretty(raw))
}

// NotJSON prints a success body that could not be parsed.
func (p *Presenter) NotJSON(text string) {
	pterm.Warning.WithWriter(p.w).Println("Response is not JSON format:")
	p.println(text)
}

// RecordCount prints how many records a query returned.
func (p *Presenter) RecordCount(n int) {
	p.printf("Records returned: %d", n)
}

// Saved confirms where the response was persisted.
func (p *Presenter) Saved(path string) {
	pterm.Info.WithWriter(p.w).Println("Full response saved to " + path)
}

// Failure prints err in the shape matching its kind.
func (p *Presenter) Failure(err error, action string) {
	var e *errors.E
	if !stderrors.As(err, &e) {
		pterm.Error.WithWriter(p.w).Println("An error occurred: " + logging.Mask(err.Error()))
		return
	}

	switch e.Kind {
	case errors.UnexpectedStatus:
		pterm.Error.WithWriter(p.w).Println(fmt.Sprintf("Request failed with status code: %d", e.StatusCode))
		p.println("Response: " + e.Body)
	case errors.TransportFailed:
		pterm.Error.WithWriter(p.w).Println("An error occurred: " + logging.Mask(err.Error()))
		httperrors.Render(p.w, httperrors.Describe(err, action))
	case errors.InvalidInput:
		pterm.Error.WithWriter(p.w).Println("Invalid input: " + logging.Mask(errorsCause(e)))
	default:
		pterm.Error.WithWriter(p.w).Println("An error occurred: " + logging.Mask(err.Error()))
	}
}

// pretty indents raw JSON the same way the saved artifact is indented.
// Invalid JSON is returned as-is.
func pretty(raw []byte) string {
	out, err := artifact.Pretty(raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}

func errorsCause(e *errors.E) string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}
