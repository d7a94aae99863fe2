package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAstyle echoes its arguments in brackets followed by stdin.
const fakeAstyle = `#!/bin/sh
if [ "$1" = "--version" ]; then echo "Artistic Style Version 3.4.10"; exit 0; fi
fixed=""
while [ "$1" = "--options=none" ] || [ "$1" = "--project=none" ]; do fixed="$fixed$1 "; shift; done
if [ "$1" = "--fail" ]; then echo "Invalid Artistic Style options: --fail" >&2; exit 3; fi
if [ "$1" = "--warn" ]; then echo "warning: deprecated option" >&2; shift; fi
printf '[%s%s]' "$fixed" "$*"
cat
`

func newFakeExec(t *testing.T) *Exec {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script engine requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "astyle")
	require.NoError(t, os.WriteFile(path, []byte(fakeAstyle), 0o755))
	e, err := NewExec(Config{Binary: path, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return e
}

type diagnostic struct {
	code    int
	message string
}

func TestExecFormat(t *testing.T) {
	e := newFakeExec(t)
	a := NewArena()
	var diags []diagnostic

	out := e.Format("int x;", " --mode=c  --style=gnu", func(code int, msg string) {
		diags = append(diags, diagnostic{code, msg})
	}, a.Alloc)

	buf, ok := a.Claim(out)
	require.True(t, ok)
	defer buf.Release()
	assert.Equal(t, "[--options=none --project=none --mode=c --style=gnu]int x;", buf.String())
	assert.Empty(t, diags)
	a.Close()
}

func TestExecFormatReportsWarningsWithoutFailing(t *testing.T) {
	e := newFakeExec(t)
	a := NewArena()
	var diags []diagnostic

	out := e.Format("x", "--warn -s4", func(code int, msg string) {
		diags = append(diags, diagnostic{code, msg})
	}, a.Alloc)

	require.NotNil(t, out)
	assert.Equal(t, "[--options=none --project=none -s4]x", string(out))
	assert.Equal(t, []diagnostic{{0, "warning: deprecated option"}}, diags)
	a.Close()
	assert.Equal(t, Stats{Allocated: 1, Released: 1}, a.Stats())
}

func TestExecFormatFailure(t *testing.T) {
	e := newFakeExec(t)
	a := NewArena()
	var diags []diagnostic

	out := e.Format("x", "--fail", func(code int, msg string) {
		diags = append(diags, diagnostic{code, msg})
	}, a.Alloc)

	assert.Nil(t, out)
	assert.Equal(t, []diagnostic{{3, "Invalid Artistic Style options: --fail"}}, diags)
	assert.Equal(t, 0, a.Stats().Allocated)
}

func TestExecVersion(t *testing.T) {
	e := newFakeExec(t)
	assert.Equal(t, "3.4.10", e.Version())
}

func TestNewExecMissingBinary(t *testing.T) {
	_, err := NewExec(Config{Binary: filepath.Join(t.TempDir(), "missing-astyle")})
	assert.Error(t, err)
}

func TestExecArgsIgnoreOptionFiles(t *testing.T) {
	e := newFakeExec(t)
	assert.Equal(t, []string{"--options=none", "--project=none", "--mode=c", "--style=gnu"}, e.Args("--mode=c --style=gnu"))
	assert.Equal(t, []string{"--options=none", "--project=none", "--style=gnu"}, e.Args(" --style=gnu"))
}

func TestIsolationArgs(t *testing.T) {
	tests := []struct {
		version string
		want    []string
	}{
		{"3.4.10", []string{"--options=none", "--project=none"}},
		{"3.2", []string{"--options=none", "--project=none"}},
		{"4.0", []string{"--options=none", "--project=none"}},
		{"3.1", []string{"--options=none"}},
		{"2.06", []string{"--options=none"}},
		{"", []string{"--options=none"}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, isolationArgs(tc.version), tc.version)
	}
}
