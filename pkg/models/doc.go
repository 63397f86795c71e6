// Package models provides model metadata for the output-kit utilities:
// canonical BPE encoding names for tokenizer selection and allowed sampling
// ranges for temperature mapping, backed by an embedded defaults dataset and
// a registry for caller-supplied overrides.
package models
