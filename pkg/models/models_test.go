package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptcraft/llm-output-kit/pkg/tokenizer"
)

// Metadata must satisfy the tokenizer selection hook.
var _ tokenizer.Encoder = (*Metadata)(nil)

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	meta := &Metadata{DisplayName: "Test Model", Encoding: "cl100k_base"}

	r.Register("test-model", meta)

	assert.Same(t, meta, r.Lookup("test-model"))
	assert.Nil(t, r.Lookup("other-model"))
}

func TestRegistryPrefixLookup(t *testing.T) {
	r := NewRegistry()
	family := &Metadata{DisplayName: "Family", Encoding: "o200k_base"}
	variant := &Metadata{DisplayName: "Variant", Encoding: "o200k_base"}
	r.Register("gpt-4o", family)
	r.Register("gpt-4o-mini", variant)

	tests := []struct {
		name     string
		modelID  string
		expected *Metadata
	}{
		{"exact match", "gpt-4o", family},
		{"versioned match", "gpt-4o-2024-08-06", family},
		{"longest prefix wins", "gpt-4o-mini-2024-07-18", variant},
		{"no match", "claude-instant", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.expected, r.Lookup(tt.modelID))
		})
	}
}

func TestRegistryModelIDsAndClear(t *testing.T) {
	r := NewRegistry()
	r.RegisterBulk(map[string]*Metadata{
		"b-model": {},
		"a-model": {},
	})

	assert.Equal(t, []string{"a-model", "b-model"}, r.ModelIDs())

	r.Clear()
	assert.Empty(t, r.ModelIDs())
}

func TestDefaultsDataset(t *testing.T) {
	defaults := Defaults()

	gpt4o := defaults.Lookup("gpt-4o")
	require.NotNil(t, gpt4o)
	assert.Equal(t, "o200k_base", gpt4o.Encoding)
	assert.Equal(t, 128000, gpt4o.ContextWindow)

	gpt4 := defaults.Lookup("gpt-4-0613")
	require.NotNil(t, gpt4, "versioned identifiers resolve via prefix match")
	assert.Equal(t, "cl100k_base", gpt4.Encoding)

	davinci := defaults.Lookup("text-davinci-003")
	require.NotNil(t, davinci)
	assert.Equal(t, "p50k_base", davinci.Encoding)
}

func TestMetadataDrivesTokenizerSelection(t *testing.T) {
	meta := Defaults().Lookup("gpt-3.5-turbo")
	require.NotNil(t, meta)

	tok, err := tokenizer.For(meta)
	require.NoError(t, err)
	assert.Equal(t, []string{"This", " is", " a", " test"}, tok.Tokenize("This is a test"))
}

func TestTemperatureFor(t *testing.T) {
	meta := &Metadata{TemperatureMin: 0, TemperatureMax: 2}

	tests := []struct {
		name     string
		percent  int
		expected float64
	}{
		{"zero percent is range minimum", 0, 0.0},
		{"half creativity", 50, 1.0},
		{"full creativity", 100, 2.0},
		{"over 100 clamps to maximum", 250, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, meta.TemperatureFor(tt.percent))
		})
	}
}

func TestTemperatureForFixedRangeModel(t *testing.T) {
	// Reasoning models pin temperature; the degenerate range always
	// returns the pinned value.
	meta := Defaults().Lookup("o1")
	require.NotNil(t, meta)
	assert.False(t, meta.SupportsTemperature)
	assert.Equal(t, 1.0, meta.TemperatureFor(0))
	assert.Equal(t, 1.0, meta.TemperatureFor(100))
}
