// Package tokenizer selects a byte-pair-encoding tokenizer for a model
// identifier, falling back to the default chat encoding when the model is
// unknown. Selection never hard-fails on an unrecognized identifier; it only
// fails when the fallback encoding itself cannot be constructed.
//
// Tokenizers are built fresh on every call and hold no shared state, so
// selection is safe from any number of goroutines. Construction loads a
// non-trivial encoding table; callers that tokenize repeatedly should hold on
// to the returned Tokenizer themselves.
package tokenizer
