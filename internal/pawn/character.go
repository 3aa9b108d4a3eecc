// Package pawn holds the controllable actors a player controller can possess.
package pawn

import (
	"github.com/KirkDiggler/ability-dispatch/internal/services/ability"
)

// Character is a possessable actor. Its ability system and binding set
// reference are optional; a character without them cannot be bound.
type Character struct {
	id           string
	abilities    ability.Component
	bindingSetID string
}

// CharacterConfig holds the parts of a character
type CharacterConfig struct {
	ID           string
	Abilities    ability.Component
	BindingSetID string
}

// NewCharacter creates a character
func NewCharacter(cfg *CharacterConfig) *Character {
	if cfg == nil || cfg.ID == "" {
		panic("character ID is required")
	}

	return &Character{
		id:           cfg.ID,
		abilities:    cfg.Abilities,
		bindingSetID: cfg.BindingSetID,
	}
}

func (c *Character) ID() string { return c.id }

// AbilitySystem returns the character's ability component, or nil
func (c *Character) AbilitySystem() ability.Component {
	if c.abilities == nil {
		return nil
	}
	return c.abilities
}

// BindingSetID names the binding set this character's controls use
func (c *Character) BindingSetID() string { return c.bindingSetID }

// SetBindingSetID swaps the binding set used on the next possession
func (c *Character) SetBindingSetID(id string) { c.bindingSetID = id }
