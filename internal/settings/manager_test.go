package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tide-astyle/internal/i18n"
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string) {
	r.messages = append(r.messages, message)
}

func newTestManager(t *testing.T, path, signal string) (*Manager, *recordingNotifier) {
	t.Helper()
	notes := &recordingNotifier{}
	return NewManager(path, signal, i18n.Default(), notes), notes
}

func TestManagerLoadMissingFileKeepsDefaults(t *testing.T) {
	m, notes := newTestManager(t, filepath.Join(t.TempDir(), "astyle-plugin.conf"), "de_DE.UTF-8")

	require.NoError(t, m.Load())
	assert.Equal(t, Settings{OptionString: "--style=gnu", Language: i18n.LocaleDE}, m.Settings())
	assert.Empty(t, notes.messages)
}

func TestManagerLoadInvalidLanguageNotifiesOnce(t *testing.T) {
	path := writeFile(t, "[General]\nlanguage = 5\n")
	m, notes := newTestManager(t, path, "de_DE")

	require.NoError(t, m.Load())
	assert.Equal(t, i18n.LocaleEN, m.Settings().Language)
	require.Len(t, notes.messages, 1)
	assert.Equal(t, "Ungültige oder unbekannte Sprache: 5", notes.messages[0])
}

func TestManagerLoadStringLanguageNotifiesAndKeepsOptions(t *testing.T) {
	path := writeFile(t, "[General]\nlanguage = \"de\"\n[AStyle]\noptStr = \"--style=kr\"\n")
	m, notes := newTestManager(t, path, "")

	require.NoError(t, m.Load())
	assert.Equal(t, Settings{OptionString: "--style=kr", Language: i18n.LocaleEN}, m.Settings())
	assert.Equal(t, []string{"Invalid or unknown language: de"}, notes.messages)
}

func TestManagerLoadMalformedFile(t *testing.T) {
	path := writeFile(t, "not toml [")
	m, notes := newTestManager(t, path, "")

	assert.Error(t, m.Load())
	assert.Equal(t, Defaults(""), m.Settings())
	assert.Empty(t, notes.messages)
}

func TestManagerCommitPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astyle-plugin.conf")
	m, notes := newTestManager(t, path, "")

	require.NoError(t, m.Commit("--style=kr"))
	require.NoError(t, m.CommitLanguage(i18n.LocaleDE))
	assert.Empty(t, notes.messages)

	other, _ := newTestManager(t, path, "")
	require.NoError(t, other.Load())
	assert.Equal(t, Settings{OptionString: "--style=kr", Language: i18n.LocaleDE}, other.Settings())

	assert.ErrorIs(t, m.CommitLanguage(i18n.Locale(3)), ErrInvalidLocale)
}

func TestManagerCommitFailureNotifies(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	m, notes := newTestManager(t, filepath.Join(blocker, "astyle-plugin.conf"), "")

	err := m.Commit("--style=kr")
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.Equal(t, "--style=kr", m.Settings().OptionString)
	require.Len(t, notes.messages, 1)
	assert.Contains(t, notes.messages[0], "Could not save AStyle settings")
}

func TestManagerReset(t *testing.T) {
	m, _ := newTestManager(t, filepath.Join(t.TempDir(), "x.conf"), "")
	m.Store().Set(Settings{OptionString: "-A2", Language: i18n.LocaleDE})

	got := m.Reset()
	assert.Equal(t, "--style=gnu", got.OptionString)
	assert.Equal(t, i18n.LocaleEN, got.Language)
	assert.Equal(t, got, m.Settings())
}
