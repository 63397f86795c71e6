package models

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Defaults returns the singleton registry preloaded with the embedded
// model-defaults dataset. The registry is shared; callers that register
// overrides affect every consumer of Defaults.
func Defaults() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		loadDefaults(defaultRegistry)
	})
	return defaultRegistry
}

// loadDefaults parses the embedded dataset into the registry
func loadDefaults(r *Registry) {
	var families map[string]map[string]*Metadata
	if err := yaml.Unmarshal(defaultsYAML, &families); err != nil {
		// Silent fail - defaults are optional
		return
	}

	for _, family := range families {
		r.RegisterBulk(family)
	}
}
