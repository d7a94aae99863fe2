package astyle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tide-astyle/internal/buffer"
	"github.com/bethropolis/tide-astyle/internal/config"
	"github.com/bethropolis/tide-astyle/internal/engine"
	"github.com/bethropolis/tide-astyle/internal/event"
	"github.com/bethropolis/tide-astyle/internal/formatter"
	"github.com/bethropolis/tide-astyle/internal/host"
	"github.com/bethropolis/tide-astyle/internal/i18n"
	"github.com/bethropolis/tide-astyle/internal/settings"
	"github.com/bethropolis/tide-astyle/internal/types"
)

type fakeEngine struct {
	calls   int
	options string
	out     string
	fail    bool
}

func (f *fakeEngine) Format(source, options string, onError engine.ErrorHandler, alloc engine.Allocator) []byte {
	f.calls++
	f.options = options
	if f.fail {
		onError(7, "unknown option --bogus")
		return nil
	}
	buf := alloc(len(f.out))
	copy(buf, f.out)
	return buf
}

func (f *fakeEngine) Version() string { return "3.1" }

type fixture struct {
	session *host.Session
	plugin  *AStyle
	engine  *fakeEngine
	dir     string
	events  []event.Event
}

func newFixture(t *testing.T, lang string) *fixture {
	t.Helper()
	f := &fixture{engine: &fakeEngine{out: "int x;\n"}, dir: t.TempDir()}
	f.session = host.NewSession(host.Config{ConfigDir: f.dir, LocaleSignal: lang})
	for _, et := range []event.Type{event.TypeDocumentFormatted, event.TypeFormatFailed, event.TypeSettingsLoaded, event.TypeSettingsSaved} {
		f.session.SubscribeEvent(et, func(e event.Event) bool {
			f.events = append(f.events, e)
			return false
		})
	}
	f.plugin = New(formatter.NewInvoker(f.engine))
	require.NoError(t, f.session.Start(f.plugin))
	return f
}

func (f *fixture) open(text, typeName string, cursor types.Position) *host.Document {
	doc := host.NewDocument(buffer.NewSliceBufferFromBytes([]byte(text)), typeName)
	doc.SetCursor(cursor)
	f.session.Open(doc)
	return doc
}

func (f *fixture) eventTypes() []event.Type {
	var out []event.Type
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

func TestInitializeRegistersCommands(t *testing.T) {
	f := newFixture(t, "en_US.UTF-8")
	assert.Equal(t, []string{CmdFormat, CmdLanguage, CmdOptions, CmdReset, CmdVersion}, f.session.Commands())
	assert.Equal(t, filepath.Join(f.dir, config.SettingsFileName), f.plugin.Settings().Path())
	assert.Equal(t, settings.Defaults("en_US.UTF-8"), f.plugin.Settings().Settings())
	assert.Equal(t, []event.Type{event.TypeSettingsLoaded}, f.eventTypes())
	assert.Equal(t, "0.2", f.plugin.Info().Version)
}

func TestFormatWithoutDocumentIsSkipped(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.session.ExecuteCommand(CmdFormat, nil))
	assert.Zero(t, f.engine.calls)
	assert.Empty(t, f.session.Notices())
}

func TestFormatReplacesDocument(t *testing.T) {
	f := newFixture(t, "en_US")
	doc := f.open("int   x;\nint y;", "C", types.Position{Line: 1, Col: 3})

	require.NoError(t, f.session.ExecuteCommand(CmdFormat, nil))

	assert.Equal(t, "--mode=c --style=gnu", f.engine.options)
	assert.Equal(t, "int x;\n", doc.Text())
	assert.Equal(t, types.Position{Line: 1}, doc.Cursor())
	require.Len(t, f.events, 2)
	assert.Equal(t, event.DocumentFormattedData{
		TypeName: "C",
		Options:  "--mode=c --style=gnu",
		Changed:  true,
	}, f.events[1].Data)
	assert.Equal(t, "Document formatted", f.session.StatusBar().Message())
}

func TestFormatOtherTypeHasNoMode(t *testing.T) {
	f := newFixture(t, "")
	f.engine.out = "x=1"
	f.open("x=1", "Python", types.Position{})

	require.NoError(t, f.session.ExecuteCommand(CmdFormat, nil))
	assert.Equal(t, " --style=gnu", f.engine.options)
}

func TestEngineFailureLeavesDocumentUnchanged(t *testing.T) {
	f := newFixture(t, "de_DE.UTF-8")
	f.engine.fail = true
	doc := f.open("int   x;", "Java", types.Position{Col: 2})

	err := f.session.ExecuteCommand(CmdFormat, nil)
	require.ErrorIs(t, err, formatter.ErrEngineFailure)

	assert.Equal(t, "int   x;", doc.Text())
	assert.False(t, doc.Buffer().IsModified())
	assert.Equal(t, types.Position{Col: 2}, doc.Cursor())
	assert.Equal(t, []string{"AStyle konnte das Dokument nicht formatieren: astyle error 7: unknown option --bogus"}, f.session.Notices())
	assert.Equal(t, []event.Type{event.TypeSettingsLoaded, event.TypeFormatFailed}, f.eventTypes())
}

func TestOptionsCommandPersists(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.session.ExecuteCommand(CmdOptions, []string{"--style=kr", "-s4"}))

	loaded, err := settings.Load(f.plugin.Settings().Path(), settings.Settings{})
	require.NoError(t, err)
	assert.Equal(t, "--style=kr -s4", loaded.OptionString)
	assert.Equal(t, "AStyle settings saved", f.session.StatusBar().Message())

	require.NoError(t, f.session.ExecuteCommand(CmdOptions, nil))
	assert.Equal(t, "AStyle options: --style=kr -s4", f.session.StatusBar().Message())

	f.open("int x;", "C#", types.Position{})
	require.NoError(t, f.session.ExecuteCommand(CmdFormat, nil))
	assert.Equal(t, "--mode=cs --style=kr -s4", f.engine.options)
}

func TestLanguageCommand(t *testing.T) {
	f := newFixture(t, "en_GB")
	require.NoError(t, f.session.ExecuteCommand(CmdLanguage, []string{"de"}))
	assert.Equal(t, i18n.LocaleDE, f.plugin.Settings().Settings().Language)
	assert.Equal(t, "AStyle Einstellungen gespeichert", f.session.StatusBar().Message())

	require.Error(t, f.session.ExecuteCommand(CmdLanguage, []string{"fr"}))
	assert.Equal(t, []string{"Ungültige oder unbekannte Sprache: fr"}, f.session.Notices())
	assert.Equal(t, i18n.LocaleDE, f.plugin.Settings().Settings().Language)
}

func TestInvalidPersistedLanguageNotifiesOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("[General]\nlanguage = 7\n[AStyle]\noptStr = \"-A1\"\n"), 0o600))

	session := host.NewSession(host.Config{ConfigDir: dir, LocaleSignal: "en_US"})
	p := New(formatter.NewInvoker(&fakeEngine{}))
	require.NoError(t, session.Start(p))

	assert.Equal(t, []string{"Invalid or unknown language: 7"}, session.Notices())
	assert.Equal(t, settings.Settings{OptionString: "-A1", Language: i18n.LocaleEN}, p.Settings().Settings())
}

func TestNonIntegerPersistedLanguageKeepsOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("[General]\nlanguage = \"de\"\n[AStyle]\noptStr = \"--style=kr\"\n"), 0o600))

	session := host.NewSession(host.Config{ConfigDir: dir, LocaleSignal: "de_DE"})
	p := New(formatter.NewInvoker(&fakeEngine{}))
	require.NoError(t, session.Start(p))

	assert.Equal(t, []string{"Ungültige oder unbekannte Sprache: de"}, session.Notices())
	assert.Equal(t, settings.Settings{OptionString: "--style=kr", Language: i18n.LocaleEN}, p.Settings().Settings())
}

func TestResetAndVersion(t *testing.T) {
	f := newFixture(t, "de_AT")
	require.NoError(t, f.session.ExecuteCommand(CmdOptions, []string{"-A2"}))
	require.NoError(t, f.session.ExecuteCommand(CmdReset, nil))
	assert.Equal(t, settings.Defaults("de_AT"), f.plugin.Settings().Settings())

	loaded, err := settings.Load(f.plugin.Settings().Path(), settings.Settings{})
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultOptionString, loaded.OptionString)

	require.NoError(t, f.session.ExecuteCommand(CmdVersion, nil))
	assert.Equal(t, "AStyle 0.2 (Artistic Style 3.1)", f.session.StatusBar().Message())
}

func TestCommitFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	session := host.NewSession(host.Config{LocaleSignal: "en"})
	p := New(formatter.NewInvoker(&fakeEngine{}), WithSettingsPath(filepath.Join(blocker, "astyle-plugin.conf")))
	require.NoError(t, session.Start(p))

	err := session.ExecuteCommand(CmdOptions, []string{"-A3"})
	require.ErrorIs(t, err, settings.ErrWriteFailed)
	require.Len(t, session.Notices(), 1)
	assert.Contains(t, session.Notices()[0], "Could not save AStyle settings")
}
