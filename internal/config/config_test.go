package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/tmux-popup-select/internal/app"
	"github.com/atomicstack/tmux-popup-select/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadArgsDefaults(t *testing.T) {
	isolateConfigDir(t)
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "stdin", cfg.App.Source)
	assert.Equal(t, search.MatchContains, cfg.App.Match)
	assert.True(t, cfg.App.Search.Empty(), "nothing supplied locally")
	assert.Nil(t, cfg.App.Injected)
	assert.Equal(t, "true", cfg.Flags["sticky"])
	assert.NoError(t, Validate(cfg))

	resolved := search.ResolveConfig(cfg.App.Search, cfg.App.Injected)
	assert.Equal(t, search.DefaultConfig(), resolved)
}

func TestLoadArgsLocalOverridesFromFlagsAndEnv(t *testing.T) {
	isolateConfigDir(t)
	cfg, err := LoadArgs(
		[]string{"-placeholder", "", "-sticky=false"},
		[]string{"TMUX_POPUP_SELECT_LABEL=Pick one", "TMUX_POPUP_SELECT_TRACE=1"},
	)
	require.NoError(t, err)

	require.NotNil(t, cfg.App.Search.Placeholder)
	assert.Equal(t, "", *cfg.App.Search.Placeholder)
	require.NotNil(t, cfg.App.Search.Label)
	assert.Equal(t, "Pick one", *cfg.App.Search.Label)
	require.NotNil(t, cfg.App.Search.Sticky)
	assert.False(t, *cfg.App.Search.Sticky)
	assert.Nil(t, cfg.App.Search.NotFoundLabel)
	assert.True(t, cfg.Logging.Trace)
}

func TestLoadArgsPositionalSelectsArgsSource(t *testing.T) {
	isolateConfigDir(t)
	cfg, err := LoadArgs([]string{"-multi", "one", "two"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "args", cfg.App.Source)
	assert.Equal(t, []string{"one", "two"}, cfg.App.Entries)
	assert.True(t, cfg.App.Multiple)
	assert.NoError(t, Validate(cfg))
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	isolateConfigDir(t)
	_, err := LoadArgs([]string{"-width", "-1"}, nil)
	assert.ErrorContains(t, err, "width must be >= 0")
	_, err = LoadArgs([]string{"-height=-3"}, nil)
	assert.ErrorContains(t, err, "height must be >= 0")
	_, err = LoadArgs([]string{"-nope"}, nil)
	assert.Error(t, err)
}

func TestLoadArgsRefresh(t *testing.T) {
	isolateConfigDir(t)
	cfg, err := LoadArgs([]string{"-source", "sessions"}, []string{"TMUX_POPUP_SELECT_REFRESH=2s"})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.App.Refresh)
	assert.Equal(t, "2s", cfg.Flags["refresh"])

	_, err = LoadArgs([]string{"-refresh=-1s"}, nil)
	assert.ErrorContains(t, err, "refresh must be >= 0")
}

func TestLoadArgsInjectedOverridesFromFile(t *testing.T) {
	dir := isolateConfigDir(t)
	path := filepath.Join(dir, "tmux-popup-select", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[search]\nplaceholder = \"from file\"\nsticky = false\n"), 0o644))

	cfg, err := LoadArgs([]string{"-sticky"}, nil)
	require.NoError(t, err)
	require.NotNil(t, cfg.App.Injected)

	resolved := search.ResolveConfig(cfg.App.Search, cfg.App.Injected)
	assert.Equal(t, "from file", resolved.Placeholder)
	assert.True(t, resolved.Sticky, "local flag beats file")
	assert.Equal(t, search.DefaultNotFoundLabel, resolved.NotFoundLabel)
}

func TestLoadOverridesErrors(t *testing.T) {
	isolateConfigDir(t)
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[search\n"), 0o644))
	_, err = LoadOverrides(bad)
	assert.ErrorContains(t, err, "parse config")

	empty := filepath.Join(t.TempDir(), "empty.toml")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n"), 0o644))
	got, err := LoadOverrides(empty)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  app.Config
		ok   bool
	}{
		{"stdin", app.Config{Source: "stdin"}, true},
		{"unknown source", app.Config{Source: "socket"}, false},
		{"file without input", app.Config{Source: "file"}, false},
		{"file", app.Config{Source: "file", InputPath: "opts.txt"}, true},
		{"args without entries", app.Config{Source: "args"}, false},
		{"switch outside sessions", app.Config{Source: "stdin", Switch: true}, false},
		{"sessions switch", app.Config{Source: "sessions", Switch: true}, true},
		{"bad match", app.Config{Source: "stdin", Match: "regex"}, false},
		{"refresh stdin", app.Config{Source: "stdin", Refresh: time.Second}, false},
		{"refresh sessions", app.Config{Source: "sessions", Refresh: time.Second}, true},
	}
	for _, tc := range cases {
		err := Validate(Config{App: tc.cfg})
		if tc.ok {
			assert.NoError(t, err, tc.name)
		} else {
			assert.Error(t, err, tc.name)
		}
	}
}
