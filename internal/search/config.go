package search

// Default display settings.
const (
	DefaultPlaceholder   = "Search"
	DefaultLabel         = ""
	DefaultNotFoundLabel = "Nothing is found"
	DefaultSticky        = true
)

// Config holds the resolved display settings of the search field.
type Config struct {
	Placeholder   string
	Label         string
	NotFoundLabel string
	Sticky        bool
}

// Overrides carries optionally supplied settings. A nil field is "not
// supplied"; a non-nil field wins even when it points to a zero value.
type Overrides struct {
	Placeholder   *string `toml:"placeholder"`
	Label         *string `toml:"label"`
	NotFoundLabel *string `toml:"not_found_label"`
	Sticky        *bool   `toml:"sticky"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Placeholder:   DefaultPlaceholder,
		Label:         DefaultLabel,
		NotFoundLabel: DefaultNotFoundLabel,
		Sticky:        DefaultSticky,
	}
}

// ResolveConfig merges settings with local values taking precedence over the
// injected override, which takes precedence over the defaults. injected may
// be nil.
func ResolveConfig(local Overrides, injected *Overrides) Config {
	var inj Overrides
	if injected != nil {
		inj = *injected
	}
	def := DefaultConfig()
	return Config{
		Placeholder:   pick(local.Placeholder, inj.Placeholder, def.Placeholder),
		Label:         pick(local.Label, inj.Label, def.Label),
		NotFoundLabel: pick(local.NotFoundLabel, inj.NotFoundLabel, def.NotFoundLabel),
		Sticky:        pick(local.Sticky, inj.Sticky, def.Sticky),
	}
}

// Empty reports whether no setting is supplied.
func (o Overrides) Empty() bool {
	return o.Placeholder == nil && o.Label == nil && o.NotFoundLabel == nil && o.Sticky == nil
}

func pick[T any](local, injected *T, fallback T) T {
	if local != nil {
		return *local
	}
	if injected != nil {
		return *injected
	}
	return fallback
}
