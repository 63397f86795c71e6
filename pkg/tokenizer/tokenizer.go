package tokenizer

import (
	tiktoken "github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the encoding used by the general-purpose chat model
// family. Unknown model identifiers fall back to it.
const DefaultEncoding = "cl100k_base"

// Tokenizer splits text into BPE subword tokens and counts them.
type Tokenizer interface {
	// Tokenize splits text into an ordered sequence of token strings.
	Tokenize(text string) []string

	// CountTokens returns the number of tokens in text.
	CountTokens(text string) int
}

// Encoder is implemented by any model type that can name its canonical BPE
// encoding. The models package's metadata types implement it.
type Encoder interface {
	EncodingName() string
}

// ForModel returns a tokenizer for the model's native encoding. Unrecognized
// identifiers get the DefaultEncoding tokenizer instead of an error: a
// plausible count beats a hard failure for every caller of this path. It
// fails only when the fallback encoding itself cannot be constructed.
func ForModel(modelID string) (Tokenizer, error) {
	enc, err := tiktoken.EncodingForModel(modelID)
	if err != nil {
		return forDefault()
	}
	return &bpeTokenizer{enc: enc}, nil
}

// For returns a tokenizer for the encoding the model names, with the same
// fallback policy as ForModel.
func For(model Encoder) (Tokenizer, error) {
	name := model.EncodingName()
	if name == "" {
		return forDefault()
	}
	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		return forDefault()
	}
	return &bpeTokenizer{enc: enc}, nil
}

func forDefault() (Tokenizer, error) {
	enc, err := tiktoken.GetEncoding(DefaultEncoding)
	if err != nil {
		return nil, &Error{
			Code:    ErrCodeUnavailable,
			Message: "fallback encoding " + DefaultEncoding + " could not be constructed",
			Err:     err,
		}
	}
	return &bpeTokenizer{enc: enc}, nil
}

// bpeTokenizer adapts a tiktoken encoding to the Tokenizer interface.
type bpeTokenizer struct {
	enc *tiktoken.Tiktoken
}

func (t *bpeTokenizer) Tokenize(text string) []string {
	ids := t.enc.Encode(text, nil, nil)
	tokens := make([]string, len(ids))
	for i, id := range ids {
		tokens[i] = t.enc.Decode([]int{id})
	}
	return tokens
}

func (t *bpeTokenizer) CountTokens(text string) int {
	return len(t.enc.Encode(text, nil, nil))
}
