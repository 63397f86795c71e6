package models

import (
	"sort"
	"strings"
	"sync"
)

// Registry stores model metadata keyed by model identifier. Lookups try an
// exact match first, then a prefix match so versioned identifiers like
// "gpt-4o-2024-08-06" resolve to their family entry.
type Registry struct {
	metadata map[string]*Metadata
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		metadata: make(map[string]*Metadata),
	}
}

// Register registers metadata for a model identifier, replacing any
// previous entry
func (r *Registry) Register(modelID string, metadata *Metadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadata[modelID] = metadata
}

// RegisterBulk registers multiple metadata entries at once
func (r *Registry) RegisterBulk(entries map[string]*Metadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for modelID, metadata := range entries {
		r.metadata[modelID] = metadata
	}
}

// Lookup retrieves metadata for a model identifier.
// Returns nil if nothing matches.
func (r *Registry) Lookup(modelID string) *Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if metadata, exists := r.metadata[modelID]; exists {
		return metadata
	}

	// Prefix match for versioned models; prefer the longest registered
	// prefix so "gpt-4o-mini-2024" resolves to gpt-4o-mini, not gpt-4o.
	var best *Metadata
	bestLen := -1
	for key, metadata := range r.metadata {
		if strings.HasPrefix(modelID, key) && len(key) > bestLen {
			best = metadata
			bestLen = len(key)
		}
	}
	return best
}

// ModelIDs returns all registered model identifiers, sorted
func (r *Registry) ModelIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.metadata))
	for id := range r.metadata {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clear removes all registered metadata
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadata = make(map[string]*Metadata)
}
