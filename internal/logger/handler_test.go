package logger

import (
	"bytes"
	"context"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(msg, tag string) slog.Record {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	r := slog.NewRecord(time.Now(), slog.LevelInfo, msg, pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	return r
}

func handleWith(t *testing.T, cfg Config, r slog.Record) string {
	t.Helper()
	cfg.process()
	var out bytes.Buffer
	h := newFilteringHandler(slog.NewTextHandler(&out, nil), &cfg)
	require.NoError(t, h.Handle(context.Background(), r))
	return out.String()
}

func TestFilteringHandler(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		tag     string
		written bool
	}{
		{name: "no filters", cfg: Config{}, written: true},
		{name: "disabled tag", cfg: Config{DisabledTags: []string{"Engine"}}, tag: "engine", written: false},
		{name: "enabled tag matches", cfg: Config{EnabledTags: []string{"engine"}}, tag: "ENGINE", written: true},
		{name: "enabled tag drops untagged", cfg: Config{EnabledTags: []string{"engine"}}, written: false},
		{name: "enabled tag drops other", cfg: Config{EnabledTags: []string{"engine"}}, tag: "settings", written: false},
		{name: "disabled package", cfg: Config{DisabledPackages: []string{"logger"}}, written: false},
		{name: "enabled other package", cfg: Config{EnabledPackages: []string{"settings"}}, written: false},
		{name: "enabled own package", cfg: Config{EnabledPackages: []string{"logger"}}, written: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := handleWith(t, tc.cfg, newTestRecord("hello", tc.tag))
			if tc.written {
				assert.Contains(t, out, "hello")
			} else {
				assert.Empty(t, out)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel("WARNING")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)

	level, ok = ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, level)
}
