package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bethropolis/tide-astyle/internal/engine"
	"github.com/bethropolis/tide-astyle/internal/logger"
	"github.com/bethropolis/tide-astyle/internal/settings"
)

var (
	// ErrEngineFailure means the engine returned no usable buffer.
	ErrEngineFailure = errors.New("formatting engine failed")
	// ErrNoActiveDocument means the host had no document to format.
	ErrNoActiveDocument = errors.New("no active document")
)

// Diagnostic is one report from the engine's error callback.
type Diagnostic struct {
	Code    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("astyle error %d: %s", d.Code, d.Message)
}

// EngineError carries the diagnostics of a failed call.
type EngineError struct {
	Diagnostics []Diagnostic
}

func (e *EngineError) Error() string {
	if len(e.Diagnostics) == 0 {
		return ErrEngineFailure.Error()
	}
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.String()
	}
	return fmt.Sprintf("%v: %s", ErrEngineFailure, strings.Join(msgs, "; "))
}

func (e *EngineError) Unwrap() error { return ErrEngineFailure }

// Request is the engine input derived for one invocation.
type Request struct {
	Source       string
	ModeFlag     string
	OptionString string
}

// NewRequest derives the request for a document of the given type name.
func NewRequest(s settings.Settings, documentTypeName, documentText string) Request {
	return Request{
		Source:       documentText,
		ModeFlag:     ParseDocumentType(documentTypeName).ModeFlag(),
		OptionString: s.OptionString,
	}
}

// Options is the complete option argument passed to the engine.
func (r Request) Options() string {
	return ComposeOptions(r.ModeFlag, r.OptionString)
}

// Invoker runs format requests against an engine.
type Invoker struct {
	engine   engine.Engine
	newArena func() *engine.Arena
}

// NewInvoker creates an invoker for e.
func NewInvoker(e engine.Engine) *Invoker {
	return &Invoker{engine: e, newArena: engine.NewArena}
}

// Format formats documentText as documentTypeName with the given settings
// and returns the engine's output. Engine diagnostics alone do not fail the
// call; only a missing or empty result does.
func (inv *Invoker) Format(documentText, documentTypeName string, s settings.Settings) (string, error) {
	req := NewRequest(s, documentTypeName, documentText)
	buf, diags, err := inv.Invoke(req)
	if err != nil {
		return "", err
	}
	defer buf.Release()
	if len(diags) > 0 {
		logger.WarnTagf("engine", "astyle reported %d diagnostic(s) on a successful run", len(diags))
	}
	return buf.String(), nil
}

// Invoke runs req and hands the output buffer to the caller, who must
// release it. Every other allocation made during the call is released
// before Invoke returns.
func (inv *Invoker) Invoke(req Request) (*engine.Buffer, []Diagnostic, error) {
	options := req.Options()
	logger.DebugTagf("engine", "Invoking astyle with options %q on %d bytes", options, len(req.Source))

	arena := inv.newArena()
	defer arena.Close()

	var diags []Diagnostic
	onError := func(code int, message string) {
		logger.WarnTagf("engine", "astyle error %d\n%s", code, message)
		diags = append(diags, Diagnostic{Code: code, Message: message})
	}

	out := inv.engine.Format(req.Source, options, onError, arena.Alloc)
	buf, ok := arena.Claim(out)
	if !ok {
		return nil, diags, &EngineError{Diagnostics: diags}
	}
	return buf, diags, nil
}

// Version reports the engine version.
func (inv *Invoker) Version() string {
	return inv.engine.Version()
}
