// Package schema derives JSON Schema documents from structural type
// descriptors. The resulting documents are intended to be embedded verbatim
// into a prompt's "respond in this schema" instruction, so they are kept
// minimal: no $schema or title metadata, opaque "any JSON" fields lowered to
// concrete object constraints, and deterministic pretty-printed output.
package schema
