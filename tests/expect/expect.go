// Package expect drives the pickline binary inside a pseudo-terminal.
//
// It wraps the Netflix go-expect library: records are fed on stdin, the
// picker draws on the console's tty, and the selection is collected from
// stdout.
package expect

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	expect "github.com/Netflix/go-expect"
)

// BinaryEnv names the pickline binary to test. When unset, pickline is
// looked up on PATH.
const BinaryEnv = "PICKLINE_BIN"

// Key constants for special keys (ANSI escape sequences)
const (
	KeyUp        = "\x1b[A"
	KeyDown      = "\x1b[B"
	KeyEscape    = "\x1b"
	KeyEnter     = "\r"
	KeyBackspace = "\x7f"
	KeyCtrlC     = "\x03"
	KeyCtrlSpace = "\x00"
)

// PickerSession is one pickline process attached to a pseudo-terminal.
type PickerSession struct {
	Console *expect.Console
	Timeout time.Duration

	cmd    *exec.Cmd
	stdout bytes.Buffer
	done   chan error
}

// SessionOption configures a PickerSession.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	timeout    time.Duration
	env        []string
	showOutput bool
}

// WithTimeout sets the default timeout for expect operations.
func WithTimeout(d time.Duration) SessionOption {
	return func(c *sessionConfig) {
		c.timeout = d
	}
}

// WithEnv adds environment variables to the picker process.
func WithEnv(env ...string) SessionOption {
	return func(c *sessionConfig) {
		c.env = append(c.env, env...)
	}
}

// WithOutput mirrors the terminal output to stdout for debugging.
func WithOutput(show bool) SessionOption {
	return func(c *sessionConfig) {
		c.showOutput = show
	}
}

// Binary returns the pickline binary under test, or "" when none is found.
func Binary() string {
	if bin := os.Getenv(BinaryEnv); bin != "" {
		return bin
	}
	bin, err := exec.LookPath("pickline")
	if err != nil {
		return ""
	}
	return bin
}

// NewSession starts pickline with lines on stdin and args on the command
// line. The picker draws on the console's tty.
func NewSession(t testing.TB, lines []string, args []string, opts ...SessionOption) (*PickerSession, error) {
	cfg := &sessionConfig{
		timeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	bin := Binary()
	if bin == "" {
		return nil, errors.New("pickline binary not found")
	}

	var consoleOpts []expect.ConsoleOpt
	consoleOpts = append(consoleOpts, expect.WithDefaultTimeout(cfg.timeout))
	if cfg.showOutput {
		consoleOpts = append(consoleOpts, expect.WithStdout(os.Stdout))
	}

	console, err := expect.NewConsole(consoleOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create console: %w", err)
	}

	home := t.TempDir()
	args = append([]string{"--tty", console.Tty().Name()}, args...)

	s := &PickerSession{
		Console: console,
		Timeout: cfg.timeout,
		done:    make(chan error, 1),
	}

	cmd := exec.Command(bin, args...) //nolint:gosec // G204: bin is the binary under test
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n") + "\n")
	cmd.Stdout = &s.stdout
	cmd.Stderr = console.Tty()
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"HOME="+home,
		"XDG_CONFIG_HOME="+home+"/config",
		"XDG_DATA_HOME="+home+"/data",
		"PICKLINE_OPTS=",
	)
	cmd.Env = append(cmd.Env, cfg.env...)

	if err := cmd.Start(); err != nil {
		console.Close()
		return nil, fmt.Errorf("failed to start pickline: %w", err)
	}
	s.cmd = cmd
	go func() { s.done <- cmd.Wait() }()

	return s, nil
}

// Send sends text to the picker.
func (s *PickerSession) Send(text string) error {
	_, err := s.Console.Send(text)
	return err
}

// SendKey sends a special key (use Key* constants).
func (s *PickerSession) SendKey(key string) error {
	return s.Send(key)
}

// Expect waits for an exact string match in the terminal output.
func (s *PickerSession) Expect(str string) (string, error) {
	return s.Console.ExpectString(str)
}

// ExpectRegex waits for a regex pattern match in the terminal output.
func (s *PickerSession) ExpectRegex(pattern string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid regex: %w", err)
	}
	return s.Console.Expect(expect.Regexp(re))
}

// Wait waits for the process to exit and returns its exit code and stdout.
func (s *PickerSession) Wait() (int, string, error) {
	select {
	case err := <-s.done:
		var exitErr *exec.ExitError
		switch {
		case err == nil:
			return 0, s.stdout.String(), nil
		case errors.As(err, &exitErr):
			return exitErr.ExitCode(), s.stdout.String(), nil
		default:
			return -1, s.stdout.String(), err
		}
	case <-time.After(s.Timeout):
		return -1, s.stdout.String(), errors.New("pickline did not exit")
	}
}

// Close kills the process if it is still running and closes the console.
func (s *PickerSession) Close() error {
	if s.cmd != nil && s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	return s.Console.Close()
}

// SkipIfPicklineMissing skips the test if no pickline binary is available.
func SkipIfPicklineMissing(t interface{ Skip(args ...interface{}) }) {
	if Binary() == "" {
		t.Skip("pickline not available, set " + BinaryEnv + " or add it to PATH")
	}
}

// SkipIfShort skips the test if running in short mode.
func SkipIfShort(t interface {
	Skip(args ...interface{})
}, reason string) {
	if testing.Short() {
		t.Skip("skipping in short mode: " + reason)
	}
}
