package entities

import (
	"fmt"
	"time"
)

// InputID names an abstract input signal (e.g. "jump"). It is assigned when
// the binding asset is loaded and never depends on object identity.
type InputID string

// AbilityID identifies an ability implementation known to an ability system.
type AbilityID string

// BindingEntry declares that triggering Input should activate Ability
type BindingEntry struct {
	Input   InputID   `json:"input" yaml:"input"`
	Ability AbilityID `json:"ability" yaml:"ability"`
}

// Validate checks that both sides of the binding are present
func (b BindingEntry) Validate() error {
	if b.Input == "" {
		return fmt.Errorf("binding input cannot be empty")
	}
	if b.Ability == "" {
		return fmt.Errorf("binding for input %q has no ability", b.Input)
	}
	return nil
}

// BindingSet is a named, ordered list of bindings loaded from a data asset
type BindingSet struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Bindings  []BindingEntry `json:"bindings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Validate checks the set id and every binding entry
func (s *BindingSet) Validate() error {
	if s == nil {
		return fmt.Errorf("binding set cannot be nil")
	}
	if s.ID == "" {
		return fmt.Errorf("binding set ID cannot be empty")
	}
	for i, entry := range s.Bindings {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("binding %d: %w", i, err)
		}
	}
	return nil
}

// Inputs returns the unique inputs of the set in first-seen order
func (s *BindingSet) Inputs() []InputID {
	if s == nil {
		return nil
	}

	seen := make(map[InputID]struct{}, len(s.Bindings))
	inputs := make([]InputID, 0, len(s.Bindings))
	for _, entry := range s.Bindings {
		if _, ok := seen[entry.Input]; ok {
			continue
		}
		seen[entry.Input] = struct{}{}
		inputs = append(inputs, entry.Input)
	}
	return inputs
}

// Clone returns a deep copy so stored sets cannot be mutated by callers
func (s *BindingSet) Clone() *BindingSet {
	if s == nil {
		return nil
	}

	c := *s
	if s.Bindings != nil {
		c.Bindings = make([]BindingEntry, len(s.Bindings))
		copy(c.Bindings, s.Bindings)
	}
	return &c
}
