package report

import (
	"bytes"
	stderrors "errors"
	"net/url"
	"os"
	"strings"
	"testing"

	"evidencija/cli/internal/backend"
	"evidencija/cli/internal/config"
	"evidencija/cli/internal/errors"
	"evidencija/cli/internal/record"

	"github.com/pterm/pterm"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func TestSendingMasksToken(t *testing.T) {
	api := backend.New(backend.Options{
		BaseURL:   "https://api.example.test",
		Endpoints: config.Endpoints{Update: "/prod/update", Query: "/prod/evidencija"},
		Token:     "secret-token-value",
	})
	req, err := api.UpdateRequest(record.Payload{ID: "abc", Date: "1.2.2025"})
	if err != nil {
		t.Fatalf("UpdateRequest() error = %v", err)
	}

	var buf bytes.Buffer
	New(&buf).Sending(req)
	out := buf.String()

	if strings.Contains(out, "secret-token-value") {
		t.Fatalf("token leaked:\n%s", out)
	}
	for _, want := range []string{
		"Sending PUT request to https://api.example.test/prod/update",
		"Authorization: Bearer ***",
		"Payload:",
		"  \"_id\": \"abc\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSendingQueryHasNoPayload(t *testing.T) {
	api := backend.New(backend.Options{
		BaseURL:   "https://api.example.test",
		Endpoints: config.Endpoints{Update: "/prod/update", Query: "/prod/evidencija"},
		Token:     "t",
	})
	req, err := api.QueryRequest(record.DateRange{From: "2025-03-20", To: "2025-03-21"})
	if err != nil {
		t.Fatalf("QueryRequest() error = %v", err)
	}
	var buf bytes.Buffer
	New(&buf).Sending(req)
	if strings.Contains(buf.String(), "Payload:") {
		t.Errorf("GET request printed a payload:\n%s", buf.String())
	}
}

func TestFailureShapes(t *testing.T) {
	transport := errors.Wrap(errors.TransportFailed, "request failed", &url.Error{
		Op:  "Put",
		URL: "https://api.example.test/prod/update",
		Err: stderrors.New("dial tcp: connect: connection refused"),
	})

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "status",
			err:  errors.Status(404, `{"message":"Not Found"}`),
			want: []string{"Request failed with status code: 404", `Response: {"message":"Not Found"}`},
		},
		{
			name: "transport",
			err:  transport,
			want: []string{"An error occurred:", "connection refused", "Please check:"},
		},
		{
			name: "invalid input",
			err:  errors.Wrap(errors.InvalidInput, "invalid payload", stderrors.New("_id is required")),
			want: []string{"Invalid input: _id is required"},
		},
		{
			name: "plain error",
			err:  stderrors.New("disk full"),
			want: []string{"An error occurred: disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf).Failure(tt.err, "sending the update")
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestDataAndNotJSON(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	p.Data("Response data:", []byte(`{"a":1}`))
	p.NotJSON("plain text")
	p.RecordCount(3)

	out := buf.String()
	for _, want := range []string{"Response data:", "{\n  \"a\": 1\n}", "Response is not JSON format:", "plain text", "Records returned: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
