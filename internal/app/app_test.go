package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tide-astyle/internal/engine"
	"github.com/bethropolis/tide-astyle/internal/formatter"
	"github.com/bethropolis/tide-astyle/internal/host"
)

// upperEngine upper-cases the source, or fails when options contain --fail.
type upperEngine struct{ lastOptions string }

func (u *upperEngine) Format(source, options string, onError engine.ErrorHandler, alloc engine.Allocator) []byte {
	u.lastOptions = options
	if strings.Contains(options, "--fail") {
		onError(2, "bad option")
		return nil
	}
	out := alloc(len(source))
	copy(out, strings.ToUpper(source))
	return out
}

func (u *upperEngine) Version() string { return "test" }

func newApp(t *testing.T, save bool) (*App, *upperEngine, *[]string) {
	t.Helper()
	var notices []string
	eng := &upperEngine{}
	a, err := New(Options{
		ConfigDir:     t.TempDir(),
		LocaleSignal:  "en_US",
		Engine:        eng,
		SaveFormatted: save,
		Notifier:      func(m string) { notices = append(notices, m) },
	})
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a, eng, &notices
}

func TestFormatFileWritesBack(t *testing.T) {
	a, eng, _ := newApp(t, true)
	path := filepath.Join(t.TempDir(), "Main.java")
	require.NoError(t, os.WriteFile(path, []byte("class a {}\n"), 0o600))

	res, err := a.FormatFile(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "Java", res.TypeName)
	assert.True(t, res.Changed())
	assert.Equal(t, "--mode=java --style=gnu", eng.lastOptions)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "CLASS A {}\n", string(got))

	_, ok := a.Session().CurrentDocumentText()
	assert.False(t, ok, "document is closed after formatting")
}

func TestFormatFileWithoutSaveLeavesFile(t *testing.T) {
	a, _, _ := newApp(t, false)
	path := filepath.Join(t.TempDir(), "x.c")
	require.NoError(t, os.WriteFile(path, []byte("int x;"), 0o600))

	res, err := a.FormatFile(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "INT X;", res.After)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "int x;", string(got))
}

func TestFormatFileMissingPath(t *testing.T) {
	a, eng, notices := newApp(t, true)
	path := filepath.Join(t.TempDir(), "typo.c")

	_, err := a.FormatFile(context.Background(), path, "")
	require.ErrorIs(t, err, host.ErrDocumentNotFound)
	assert.NotErrorIs(t, err, formatter.ErrEngineFailure)
	assert.Empty(t, eng.lastOptions, "engine must not run")
	assert.Empty(t, *notices)
	assert.NoFileExists(t, path)
}

func TestFormatFailureKeepsText(t *testing.T) {
	a, _, notices := newApp(t, true)
	require.NoError(t, a.Settings().Commit("--fail"))

	res, err := a.FormatText(context.Background(), "x=1", "Python")
	require.ErrorIs(t, err, formatter.ErrEngineFailure)
	assert.Equal(t, "x=1", res.After)
	assert.False(t, res.Changed())
	require.Len(t, *notices, 1)
	assert.Contains(t, (*notices)[0], "bad option")
}
