package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/bethropolis/tide-astyle/internal/logger"
)

const (
	// DefaultBinary is the astyle executable looked up on PATH.
	DefaultBinary  = "astyle"
	DefaultTimeout = 10 * time.Second
)

// Exec runs the astyle command-line program as a filter: source on stdin,
// formatted text on stdout.
type Exec struct {
	binary  string
	timeout time.Duration
	// fixed precedes the caller's options on every run.
	fixed []string
}

// NewExec resolves cfg.Binary on PATH.
func NewExec(cfg Config) (*Exec, error) {
	bin := cfg.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("astyle executable '%s' not found: %w", bin, err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger.DebugTagf("engine", "Using astyle executable at %s (timeout %v)", path, timeout)
	e := &Exec{binary: path, timeout: timeout}
	e.fixed = isolationArgs(e.Version())
	return e, nil
}

// isolationArgs keeps the program from merging ~/.astylerc,
// ARTISTIC_STYLE_OPTIONS and project option files into a run. --project
// exists from 3.2 on.
func isolationArgs(version string) []string {
	args := []string{"--options=none"}
	if versionAtLeast(version, 3, 2) {
		args = append(args, "--project=none")
	}
	return args
}

func versionAtLeast(version string, major, minor int) bool {
	var gotMajor, gotMinor int
	if n, _ := fmt.Sscanf(version, "%d.%d", &gotMajor, &gotMinor); n < 1 {
		return false
	}
	if gotMajor != major {
		return gotMajor > major
	}
	return gotMinor >= minor
}

// Args returns the argv passed to the program for options.
func (e *Exec) Args(options string) []string {
	args := make([]string, 0, len(e.fixed)+4)
	args = append(args, e.fixed...)
	return append(args, strings.Fields(options)...)
}

// Format implements Engine.
func (e *Exec) Format(source, options string, onError ErrorHandler, alloc Allocator) []byte {
	if onError == nil {
		onError = func(int, string) {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.binary, e.Args(options)...)
	cmd.Stdin = strings.NewReader(source)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if err != nil {
		code = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
	}
	for _, line := range strings.Split(strings.TrimSpace(stderr.String()), "\n") {
		if line != "" {
			onError(code, line)
		}
	}
	if err != nil {
		if ctx.Err() != nil {
			onError(code, fmt.Sprintf("astyle timed out after %v", e.timeout))
		} else if stderr.Len() == 0 {
			onError(code, err.Error())
		}
		return nil
	}

	out := alloc(stdout.Len())
	if len(out) < stdout.Len() {
		onError(0, fmt.Sprintf("allocation of %d bytes failed", stdout.Len()))
		return nil
	}
	copy(out, stdout.Bytes())
	return out
}

// Version implements Engine. It returns an empty string if the program
// cannot report one.
func (e *Exec) Version() string {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, e.binary, "--version").Output()
	if err != nil {
		logger.Warnf("astyle --version failed: %v", err)
		return ""
	}
	return strings.TrimPrefix(strings.TrimSpace(string(out)), "Artistic Style Version ")
}
