// Package assets loads binding sets and key mapping contexts from YAML files.
package assets

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/ability-dispatch/internal/entities"
	dispatcherr "github.com/KirkDiggler/ability-dispatch/internal/errors"
	"github.com/KirkDiggler/ability-dispatch/internal/repositories/bindings"
)

// Asset is the parsed content of a bindings file
type Asset struct {
	BindingSets     []*entities.BindingSet
	MappingContexts []*entities.MappingContext
}

type fileSchema struct {
	BindingSets     []bindingSetSchema         `yaml:"binding_sets"`
	MappingContexts []*entities.MappingContext `yaml:"mapping_contexts"`
}

type bindingSetSchema struct {
	ID       string                  `yaml:"id"`
	Name     string                  `yaml:"name"`
	Bindings []entities.BindingEntry `yaml:"bindings"`
}

// LoadFile reads and parses the asset at path
func LoadFile(path string) (*Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dispatcherr.Wrapf(err, "failed to open asset %s", path)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes an asset and validates every set and context in it
func Parse(r io.Reader) (*Asset, error) {
	var schema fileSchema
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&schema); err != nil {
		if err == io.EOF {
			return &Asset{}, nil
		}
		return nil, dispatcherr.WrapWithCode(err, dispatcherr.CodeValidation, "failed to decode asset")
	}

	asset := &Asset{}
	seenSets := make(map[string]struct{}, len(schema.BindingSets))
	for _, s := range schema.BindingSets {
		set := &entities.BindingSet{
			ID:       s.ID,
			Name:     s.Name,
			Bindings: s.Bindings,
		}
		if err := set.Validate(); err != nil {
			return nil, dispatcherr.WrapWithCode(err, dispatcherr.CodeValidation, "invalid binding set").
				WithMeta("binding_set", s.ID)
		}
		if _, dup := seenSets[set.ID]; dup {
			return nil, dispatcherr.Validationf("binding set %s declared twice", set.ID).
				WithMeta("binding_set", set.ID)
		}
		seenSets[set.ID] = struct{}{}
		asset.BindingSets = append(asset.BindingSets, set)
	}

	for _, mc := range schema.MappingContexts {
		if err := mc.Validate(); err != nil {
			name := ""
			if mc != nil {
				name = mc.Name
			}
			return nil, dispatcherr.WrapWithCode(err, dispatcherr.CodeValidation, "invalid mapping context").
				WithMeta("mapping_context", name)
		}
		asset.MappingContexts = append(asset.MappingContexts, mc)
	}

	return asset, nil
}

// BindingSet returns the set with id, if the asset declares it
func (a *Asset) BindingSet(id string) (*entities.BindingSet, bool) {
	for _, set := range a.BindingSets {
		if set.ID == id {
			return set, true
		}
	}
	return nil, false
}

// Seed stores every binding set of the asset, updating sets that already exist
func Seed(ctx context.Context, repo bindings.Repository, asset *Asset) error {
	for _, set := range asset.BindingSets {
		err := repo.Create(ctx, set.Clone())
		if dispatcherr.IsAlreadyExists(err) {
			err = repo.Update(ctx, set.Clone())
		}
		if err != nil {
			return fmt.Errorf("failed to seed binding set %s: %w", set.ID, err)
		}
	}
	return nil
}
