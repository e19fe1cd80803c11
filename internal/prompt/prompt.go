// Package prompt reads answers to console prompts.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Reader prints a prompt and reads one line of input for it. Once the input
// is exhausted every call returns io.EOF.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	r := &Reader{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.fd = int(f.Fd())
		r.tty = true
	}
	return r
}

// Ask prints prompt and returns the line typed, without the line ending.
// A final line without a newline is still returned.
func (r *Reader) Ask(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskSecret is Ask without echo when reading from a terminal.
func (r *Reader) AskSecret(prompt string) (string, error) {
	if !r.tty {
		return r.Ask(prompt)
	}

	fmt.Fprint(r.out, prompt)
	b, err := term.ReadPassword(r.fd)
	fmt.Fprintln(r.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AskValid repeats the prompt until check accepts the answer. Every rejected
// answer prints the error returned by check.
func (r *Reader) AskValid(prompt string, check func(string) error) (string, error) {
	return r.askValid(prompt, check, r.Ask)
}

// AskSecretValid is AskValid without echo.
func (r *Reader) AskSecretValid(prompt string, check func(string) error) (string, error) {
	return r.askValid(prompt, check, r.AskSecret)
}

func (r *Reader) askValid(prompt string, check func(string) error, ask func(string) (string, error)) (string, error) {
	for {
		answer, err := ask(prompt)
		if err != nil {
			return "", err
		}
		if err := check(answer); err != nil {
			fmt.Fprintln(r.out, err.Error())
			continue
		}
		return answer, nil
	}
}

// ErrNotANumber is returned by AskID for input that is not a positive integer.
var ErrNotANumber = errors.New("Please enter a valid numeric ID.")

// AskID reads a positive integer identifier.
func (r *Reader) AskID(prompt string) (uint, error) {
	answer, err := r.Ask(prompt)
	if err != nil {
		return 0, err
	}
	return ParseID(answer)
}

// ParseID parses a positive integer identifier.
func ParseID(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, ErrNotANumber
	}
	return uint(n), nil
}
