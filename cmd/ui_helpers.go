package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"evidencija/cli/internal/backend"
	"evidencija/cli/internal/terminal"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// startInlineSpinner draws frames followed by text on a single line of w until
// the returned function is called, which clears the line and waits for the
// drawing goroutine to exit.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], text)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}

// spinningAPI shows a spinner while a request is in flight.
type spinningAPI struct {
	backend.API
	w    io.Writer
	text string
}

func (s spinningAPI) Do(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	stop := startInlineSpinner(s.w, s.text, spinnerFrames, 120*time.Millisecond)
	defer stop()
	return s.API.Do(ctx, req)
}

// withSpinner wraps api with a spinner when stdout is a terminal.
func withSpinner(api backend.API, text string) backend.API {
	if !terminal.IsTerminal(os.Stdout) {
		return api
	}
	return spinningAPI{API: api, w: os.Stdout, text: text}
}
