package models

import (
	"github.com/promptcraft/llm-output-kit/pkg/sampling"
)

// Metadata describes a model's tokenization and sampling characteristics
type Metadata struct {
	// DisplayName is the human-readable model name
	DisplayName string `yaml:"name"`

	// Encoding is the canonical BPE encoding name (e.g. "cl100k_base")
	Encoding string `yaml:"encoding"`

	// ContextWindow is the maximum context size in tokens
	ContextWindow int `yaml:"context"`

	// MaxOutputTokens is the maximum completion size in tokens
	MaxOutputTokens int `yaml:"output"`

	// SupportsTemperature reports whether the model accepts a temperature
	// parameter at all
	SupportsTemperature bool `yaml:"temperature"`

	// TemperatureMin and TemperatureMax bound the model's accepted
	// temperature values
	TemperatureMin int `yaml:"temperature_min"`
	TemperatureMax int `yaml:"temperature_max"`

	// Cost holds pricing per million tokens, when known
	Cost *Cost `yaml:"cost,omitempty"`
}

// Cost contains pricing information per million tokens
type Cost struct {
	Input  float64 `yaml:"input"`
	Output float64 `yaml:"output"`
}

// EncodingName returns the canonical BPE encoding name. It satisfies the
// tokenizer package's Encoder interface, so metadata can drive tokenizer
// selection directly.
func (m *Metadata) EncodingName() string {
	return m.Encoding
}

// TemperatureFor maps a 0-100 creativity percentage onto the model's allowed
// temperature range. Percentages above 100 are clamped to the range maximum.
func (m *Metadata) TemperatureFor(percent int) float64 {
	return sampling.MapToRange(m.TemperatureMin, m.TemperatureMax, percent)
}
