package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// namedEncoder implements Encoder for tests.
type namedEncoder string

func (n namedEncoder) EncodingName() string { return string(n) }

func TestForModelKnownModel(t *testing.T) {
	tok, err := ForModel("gpt-4-32k")
	require.NoError(t, err)

	tokens := tok.Tokenize("This is a test         with a lot of spaces")
	assert.Equal(t,
		[]string{"This", " is", " a", " test", "        ", " with", " a", " lot", " of", " spaces"},
		tokens,
	)
	assert.Equal(t, 10, tok.CountTokens("This is a test         with a lot of spaces"))
}

func TestForModelUnknownModelFallsBack(t *testing.T) {
	unknown, err := ForModel("definitely-not-a-model")
	require.NoError(t, err, "unknown identifiers must fall back, not fail")

	fallback, err := ForModel("gpt-4")
	require.NoError(t, err)

	const text = "The quick brown fox jumps over the lazy dog."
	assert.Equal(t, fallback.Tokenize(text), unknown.Tokenize(text),
		"fallback tokenizer must behave like the default chat encoding")
	assert.Equal(t, fallback.CountTokens(text), unknown.CountTokens(text))
}

func TestForEncoder(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
	}{
		{"explicit default encoding", DefaultEncoding},
		{"unknown encoding falls back", "not-an-encoding"},
		{"empty encoding falls back", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := For(namedEncoder(tt.encoding))
			require.NoError(t, err)

			tokens := tok.Tokenize("This is a test")
			assert.Equal(t, []string{"This", " is", " a", " test"}, tokens)
		})
	}
}

func TestForEncoderDistinctEncoding(t *testing.T) {
	o200k, err := For(namedEncoder("o200k_base"))
	require.NoError(t, err)

	cl100k, err := For(namedEncoder(DefaultEncoding))
	require.NoError(t, err)

	// Both must produce a usable tokenizer; counts may differ between
	// encodings but are always positive for non-empty text.
	const text = "structured output beats string parsing"
	assert.Positive(t, o200k.CountTokens(text))
	assert.Positive(t, cl100k.CountTokens(text))
}

func TestTokenizeRoundTrip(t *testing.T) {
	tok, err := ForModel("gpt-3.5-turbo")
	require.NoError(t, err)

	const text = "Hello, 世界! Tokens should reassemble losslessly."
	tokens := tok.Tokenize(text)

	joined := ""
	for _, piece := range tokens {
		joined += piece
	}
	assert.Equal(t, text, joined)
	assert.Equal(t, len(tokens), tok.CountTokens(text))
}

func TestEstimateTokensFromBytes(t *testing.T) {
	tests := []struct {
		name      string
		byteCount int
		expected  int
	}{
		{"zero bytes", 0, 0},
		{"negative bytes", -100, 0},
		{"one ratio unit", 47, 10},
		{"hundred bytes", 100, 21},
		{"thousand bytes", 1000, 212},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateTokensFromBytes(tt.byteCount))
		})
	}
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, EstimateTokensFromBytes(13), EstimateTokens("Hello, world!"))
}
