package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestResolveConfigDefaults(t *testing.T) {
	cfg := ResolveConfig(Overrides{}, nil)
	assert.Equal(t, Config{
		Placeholder:   "Search",
		Label:         "",
		NotFoundLabel: "Nothing is found",
		Sticky:        true,
	}, cfg)
}

func TestResolveConfigPrecedence(t *testing.T) {
	injected := &Overrides{
		Placeholder:   ptr("injected placeholder"),
		Label:         ptr("injected label"),
		NotFoundLabel: ptr("injected not found"),
		Sticky:        ptr(false),
	}
	local := Overrides{
		Label:  ptr("local label"),
		Sticky: ptr(true),
	}
	cfg := ResolveConfig(local, injected)
	assert.Equal(t, "injected placeholder", cfg.Placeholder)
	assert.Equal(t, "local label", cfg.Label)
	assert.Equal(t, "injected not found", cfg.NotFoundLabel)
	assert.True(t, cfg.Sticky)
}

func TestResolveConfigSuppliedZeroValuesWin(t *testing.T) {
	cfg := ResolveConfig(Overrides{Placeholder: ptr(""), Sticky: ptr(false)}, nil)
	assert.Equal(t, "", cfg.Placeholder)
	assert.False(t, cfg.Sticky)
	assert.True(t, Overrides{}.Empty())
	assert.False(t, Overrides{Sticky: ptr(false)}.Empty())
}

func TestMatcherByName(t *testing.T) {
	for name, text := range map[string]string{"": "abc", "contains": "abc", "FOLD": "ABC", " fuzzy ": "aXbXc"} {
		m, err := MatcherByName(name)
		require.NoError(t, err, name)
		assert.True(t, m(text, "abc"), name)
	}
	assert.False(t, Contains("ABC", "abc"))
	assert.True(t, Fold("Straße", "STRASSE"))
	_, err := MatcherByName("regex")
	assert.ErrorContains(t, err, "unknown match mode")
}
