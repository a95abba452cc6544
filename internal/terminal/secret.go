package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadSecret prompts on out and reads one line from in. When in is a terminal
// the input is not echoed and the prompt is cleared afterwards; otherwise the
// first line of in is returned, which lets secrets be piped.
func ReadSecret(in *os.File, out io.Writer, prompt string) (string, error) {
	if !IsTerminal(in) {
		return readLine(in)
	}

	fmt.Fprint(out, prompt)
	b, err := term.ReadPassword(int(in.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	ClearPreviousLines(out, len(prompt), Width(int(in.Fd())))
	return strings.TrimSpace(string(b)), nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
