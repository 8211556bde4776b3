package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-popup-select/internal/app"
	"github.com/atomicstack/tmux-popup-select/internal/search"
	"github.com/atomicstack/tmux-popup-select/internal/source"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPlaceholder = "TMUX_POPUP_SELECT_PLACEHOLDER"
	envLabel       = "TMUX_POPUP_SELECT_LABEL"
	envNotFound    = "TMUX_POPUP_SELECT_NOT_FOUND"
	envSticky      = "TMUX_POPUP_SELECT_STICKY"
	envMulti       = "TMUX_POPUP_SELECT_MULTI"
	envMatch       = "TMUX_POPUP_SELECT_MATCH"
	envSource      = "TMUX_POPUP_SELECT_SOURCE"
	envInput       = "TMUX_POPUP_SELECT_INPUT"
	envDelimiter   = "TMUX_POPUP_SELECT_DELIMITER"
	envPrintQuery  = "TMUX_POPUP_SELECT_PRINT_QUERY"
	envSwitch      = "TMUX_POPUP_SELECT_SWITCH"
	envSocketPath  = "TMUX_POPUP_SELECT_SOCKET"
	envWidth       = "TMUX_POPUP_SELECT_WIDTH"
	envHeight      = "TMUX_POPUP_SELECT_HEIGHT"
	envShowFooter  = "TMUX_POPUP_SELECT_FOOTER"
	envConfigFile  = "TMUX_POPUP_SELECT_CONFIG"
	envTrace       = "TMUX_POPUP_SELECT_TRACE"
	envLogFile     = "TMUX_POPUP_SELECT_LOG_FILE"
	envRefresh     = "TMUX_POPUP_SELECT_REFRESH"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-popup-select", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	placeholder := fs.String("placeholder", envOrDefault(env, envPlaceholder, search.DefaultPlaceholder), "placeholder shown in the empty search field")
	label := fs.String("label", envOrDefault(env, envLabel, search.DefaultLabel), "label rendered above the search field")
	notFound := fs.String("not-found", envOrDefault(env, envNotFound, search.DefaultNotFoundLabel), "text shown when no option matches")
	sticky := fs.Bool("sticky", envOrBool(env, envSticky, search.DefaultSticky), "keep the search field pinned above the list while scrolling")
	multi := fs.Bool("multi", envOrBool(env, envMulti, false), "allow committing several options")
	match := fs.String("match", envOrDefault(env, envMatch, search.MatchContains), "match mode: contains, fold or fuzzy")
	src := fs.String("source", envOrDefault(env, envSource, ""), "option source: stdin, file, args or sessions")
	input := fs.String("input", envOrDefault(env, envInput, ""), "options file for the file source")
	delimiter := fs.String("delimiter", envOrDefault(env, envDelimiter, ""), "split each entry into value<delimiter>text")
	printQuery := fs.Bool("print-query", envOrBool(env, envPrintQuery, false), "print the last reported query before the selection")
	switchClient := fs.Bool("switch", envOrBool(env, envSwitch, false), "switch the tmux client to the selected session")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	refresh := fs.Duration("refresh", envOrDuration(env, envRefresh, 0), "reload file or sessions options at this interval (0 disables)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer key help")
	configFile := fs.String("config", envOrDefault(env, envConfigFile, ""), "path to a TOML file with search field overrides")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *refresh < 0 {
		return Config{}, fmt.Errorf("refresh must be >= 0 (got %s)", *refresh)
	}

	visited := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { visited[f.Name] = true })
	supplied := func(name, envKey string) bool {
		if visited[name] {
			return true
		}
		_, ok := env[envKey]
		return ok
	}
	var local search.Overrides
	if supplied("placeholder", envPlaceholder) {
		local.Placeholder = placeholder
	}
	if supplied("label", envLabel) {
		local.Label = label
	}
	if supplied("not-found", envNotFound) {
		local.NotFoundLabel = notFound
	}
	if supplied("sticky", envSticky) {
		local.Sticky = sticky
	}

	injected, err := LoadOverrides(*configFile)
	if err != nil {
		return Config{}, err
	}

	positional := append([]string(nil), fs.Args()...)
	sourceKind := *src
	if strings.TrimSpace(sourceKind) == "" {
		sourceKind = string(source.KindStdin)
		if len(positional) > 0 {
			sourceKind = string(source.KindArgs)
		}
	}

	cfg := Config{
		App: app.Config{
			Source:     sourceKind,
			InputPath:  *input,
			Entries:    positional,
			Delimiter:  *delimiter,
			Multiple:   *multi,
			Match:      *match,
			PrintQuery: *printQuery,
			Switch:     *switchClient,
			SocketPath: *socket,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Refresh:    *refresh,
			Search:     local,
			Injected:   injected,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"placeholder": *placeholder,
			"label":       *label,
			"not-found":   *notFound,
			"sticky":      strconv.FormatBool(*sticky),
			"multi":       strconv.FormatBool(*multi),
			"match":       *match,
			"source":      sourceKind,
			"input":       *input,
			"delimiter":   *delimiter,
			"print-query": strconv.FormatBool(*printQuery),
			"switch":      strconv.FormatBool(*switchClient),
			"socket":      *socket,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"refresh":     refresh.String(),
			"config":      *configFile,
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks option values that the flag parser cannot.
func Validate(cfg Config) error {
	kind, err := source.ParseKind(cfg.App.Source)
	if err != nil {
		return err
	}
	if kind == source.KindFile && strings.TrimSpace(cfg.App.InputPath) == "" {
		return fmt.Errorf("source %q requires -input", kind)
	}
	if kind == source.KindArgs && len(cfg.App.Entries) == 0 {
		return fmt.Errorf("source %q requires positional options", kind)
	}
	if cfg.App.Switch && kind != source.KindSessions {
		return fmt.Errorf("-switch only applies to the %q source", source.KindSessions)
	}
	if cfg.App.Refresh > 0 && kind != source.KindFile && kind != source.KindSessions {
		return fmt.Errorf("-refresh only applies to the %q and %q sources", source.KindFile, source.KindSessions)
	}
	if _, err := search.MatcherByName(cfg.App.Match); err != nil {
		return err
	}
	return nil
}
