package entities

import "fmt"

// KeyMapping maps a physical key name to a named input
type KeyMapping struct {
	Key   string  `json:"key" yaml:"key"`
	Input InputID `json:"input" yaml:"input"`
}

// MappingContext is a prioritized group of key mappings. When several active
// contexts map the same key, the one with the highest Priority wins.
type MappingContext struct {
	Name     string       `json:"name" yaml:"name"`
	Priority int          `json:"priority" yaml:"priority"`
	Mappings []KeyMapping `json:"keys" yaml:"keys"`
}

// Validate checks the context name and its mappings
func (m *MappingContext) Validate() error {
	if m == nil {
		return fmt.Errorf("mapping context cannot be nil")
	}
	if m.Name == "" {
		return fmt.Errorf("mapping context name cannot be empty")
	}
	for i, km := range m.Mappings {
		if km.Key == "" {
			return fmt.Errorf("mapping %d in context %q has no key", i, m.Name)
		}
		if km.Input == "" {
			return fmt.Errorf("key %q in context %q has no input", km.Key, m.Name)
		}
	}
	return nil
}

// Resolve returns the input mapped to key in this context
func (m *MappingContext) Resolve(key string) (InputID, bool) {
	for _, km := range m.Mappings {
		if km.Key == key {
			return km.Input, true
		}
	}
	return "", false
}
