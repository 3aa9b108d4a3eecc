package testutils

import (
	"github.com/KirkDiggler/ability-dispatch/internal/entities"
)

// CreateTestBindingSet creates a binding set from alternating input/ability pairs
func CreateTestBindingSet(id string, pairs ...string) *entities.BindingSet {
	set := &entities.BindingSet{
		ID:   id,
		Name: id,
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		set.Bindings = append(set.Bindings, entities.BindingEntry{
			Input:   entities.InputID(pairs[i]),
			Ability: entities.AbilityID(pairs[i+1]),
		})
	}
	return set
}

// CreateHeroBindingSet returns the two-binding set used across tests
func CreateHeroBindingSet() *entities.BindingSet {
	return CreateTestBindingSet("hero",
		"move_forward", "ability.dash",
		"jump", "ability.jump",
	)
}

// CreateDefaultMappingContext maps common keys to the hero inputs
func CreateDefaultMappingContext() *entities.MappingContext {
	return &entities.MappingContext{
		Name:     "default",
		Priority: 0,
		Mappings: []entities.KeyMapping{
			{Key: "w", Input: "move_forward"},
			{Key: "space", Input: "jump"},
			{Key: "c", Input: "crouch"},
		},
	}
}
