package domain

import (
	"sort"
)

// Layer is one named source of configuration values.
type Layer struct {
	Name   string
	Values map[string]any
}

// LayeredConfig is an ordered list of layers; later layers override earlier ones.
type LayeredConfig struct {
	layers []Layer
}

// NewLayeredConfig builds a LayeredConfig from layers in override order.
func NewLayeredConfig(layers ...Layer) LayeredConfig {
	return LayeredConfig{layers: append([]Layer(nil), layers...)}
}

// With returns a copy with layer appended on top.
func (c LayeredConfig) With(layer Layer) LayeredConfig {
	return NewLayeredConfig(append(append([]Layer(nil), c.layers...), layer)...)
}

// Merge flattens the layers into one ConfigValues.
func (c LayeredConfig) Merge() ConfigValues {
	values := ConfigValues{
		values:  map[string]any{},
		sources: map[string]string{},
	}

	for _, layer := range c.layers {
		for key, value := range layer.Values {
			values.values[key] = value
			values.sources[key] = layer.Name
		}
	}

	return values
}

// ConfigValues is the read-only result of merging layers.
type ConfigValues struct {
	values  map[string]any
	sources map[string]string
}

// Lookup returns the merged value for key.
func (v ConfigValues) Lookup(key string) (any, bool) {
	value, ok := v.values[key]
	return value, ok
}

// Source names the layer that supplied key.
func (v ConfigValues) Source(key string) string {
	return v.sources[key]
}

// Keys returns every merged key in sorted order.
func (v ConfigValues) Keys() []string {
	keys := make([]string, 0, len(v.values))
	for key := range v.values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// WithDefaults returns values where missing keys are filled from defaults.
func (v ConfigValues) WithDefaults(defaults map[string]any) ConfigValues {
	out := ConfigValues{
		values:  make(map[string]any, len(v.values)+len(defaults)),
		sources: make(map[string]string, len(v.sources)+len(defaults)),
	}

	for key, value := range defaults {
		out.values[key] = value
		out.sources[key] = "defaults"
	}

	for key, value := range v.values {
		out.values[key] = value
		out.sources[key] = v.sources[key]
	}

	return out
}
