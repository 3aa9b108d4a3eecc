package assets_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ability-dispatch/internal/assets"
	"github.com/KirkDiggler/ability-dispatch/internal/entities"
	dispatcherr "github.com/KirkDiggler/ability-dispatch/internal/errors"
	"github.com/KirkDiggler/ability-dispatch/internal/repositories/bindings"
	mockbindings "github.com/KirkDiggler/ability-dispatch/internal/repositories/bindings/mock"
)

const heroAsset = `
binding_sets:
  - id: hero
    name: Hero abilities
    bindings:
      - { input: move_forward, ability: ability.dash }
      - { input: jump, ability: ability.jump }
  - id: mage
    name: Mage abilities
    bindings:
      - input: cast
        ability: ability.fireball
mapping_contexts:
  - name: default
    priority: 0
    keys:
      - { key: w, input: move_forward }
      - { key: space, input: jump }
`

func TestParse(t *testing.T) {
	asset, err := assets.Parse(strings.NewReader(heroAsset))
	require.NoError(t, err)

	require.Len(t, asset.BindingSets, 2)
	hero, ok := asset.BindingSet("hero")
	require.True(t, ok)
	assert.Equal(t, "Hero abilities", hero.Name)
	assert.Equal(t, []entities.BindingEntry{
		{Input: "move_forward", Ability: "ability.dash"},
		{Input: "jump", Ability: "ability.jump"},
	}, hero.Bindings)

	_, ok = asset.BindingSet("rogue")
	assert.False(t, ok)

	require.Len(t, asset.MappingContexts, 1)
	mc := asset.MappingContexts[0]
	assert.Equal(t, "default", mc.Name)
	in, ok := mc.Resolve("space")
	assert.True(t, ok)
	assert.Equal(t, entities.InputID("jump"), in)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantMeta string
	}{
		{
			name: "binding without ability",
			doc: `
binding_sets:
  - id: hero
    bindings:
      - { input: jump }
`,
			wantMeta: "hero",
		},
		{
			name: "set without id",
			doc: `
binding_sets:
  - name: nameless
`,
		},
		{
			name: "duplicate set",
			doc: `
binding_sets:
  - id: hero
  - id: hero
`,
			wantMeta: "hero",
		},
		{
			name: "mapping without input",
			doc: `
mapping_contexts:
  - name: default
    keys:
      - { key: space }
`,
		},
		{
			name: "unknown field",
			doc: `
binding_set:
  - id: hero
`,
		},
		{
			name: "not yaml",
			doc:  "binding_sets: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := assets.Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, dispatcherr.IsValidation(err))
			if tt.wantMeta != "" {
				assert.Equal(t, tt.wantMeta, dispatcherr.GetMeta(err)["binding_set"])
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	asset, err := assets.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, asset.BindingSets)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(heroAsset), 0o600))

	asset, err := assets.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, asset.BindingSets, 2)

	_, err = assets.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeed_CreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	repo := bindings.NewInMemoryRepository()

	asset, err := assets.Parse(strings.NewReader(heroAsset))
	require.NoError(t, err)

	require.NoError(t, assets.Seed(ctx, repo, asset))
	require.NoError(t, assets.Seed(ctx, repo, asset))

	sets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "hero", sets[0].ID)
}

func TestSeed_PropagatesStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockbindings.NewMockRepository(ctrl)

	asset, err := assets.Parse(strings.NewReader(heroAsset))
	require.NoError(t, err)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dispatcherr.Internal("redis down"))

	err = assets.Seed(context.Background(), repo, asset)
	require.Error(t, err)
	assert.True(t, dispatcherr.IsInternal(err))
	assert.Contains(t, err.Error(), "hero")
}
