package kitchen_test

import (
	"testing"

	"morphood/kitchen"
	"morphood/kitchen/geom"
	"morphood/kitchen/ingredient"
	"morphood/kitchen/pool"
	"morphood/kitchen/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRegistry(t *testing.T) *ingredient.Registry {
	t.Helper()
	reg := ingredient.NewRegistry(zap.NewNop())
	defs := []*ingredient.Identity{
		{ID: "tomato", Processing: map[ingredient.Operation]ingredient.ID{ingredient.OpChop: "tomato_chopped"}},
		{ID: "tomato_chopped", Edible: true},
		{ID: "lettuce", Processing: map[ingredient.Operation]ingredient.ID{ingredient.OpChop: "lettuce_chopped"}},
		{ID: "lettuce_chopped", Edible: true},
		{ID: "salad", Edible: true},
		{ID: "patty", Processing: map[ingredient.Operation]ingredient.ID{ingredient.OpCook: "patty_cooked"}},
		{ID: "patty_cooked", Edible: true, Processing: map[ingredient.Operation]ingredient.ID{ingredient.OpBurn: "patty_burnt"}},
		{ID: "patty_burnt"},
	}
	for _, def := range defs {
		require.NoError(t, reg.Register(def))
	}
	return reg
}

func testRecipes(t *testing.T) *recipe.Database {
	t.Helper()
	db := recipe.NewDatabase(zap.NewNop())
	require.True(t, db.AddCombination([]ingredient.ID{"tomato_chopped", "lettuce_chopped"}, "salad"))
	return db
}

func newOrchestrator(t *testing.T, cfg kitchen.Config) *kitchen.Orchestrator {
	t.Helper()
	o, err := kitchen.New(cfg, testRegistry(t), testRecipes(t), zap.NewNop())
	require.NoError(t, err)
	return o
}

func defaultCfg() kitchen.Config {
	return kitchen.Config{
		PoolInitialSize:   4,
		PoolMaxCapacity:   8,
		PoolAllowGrowth:   true,
		SpawnHeightOffset: 0.25,
	}
}

// fakeHolder stands in for the player-carry system.
type fakeHolder struct {
	held    map[*pool.Item]bool
	dropped []*pool.Item
}

func (h *fakeHolder) IsHeld(it *pool.Item) bool {
	return h.held[it]
}

func (h *fakeHolder) ForceDrop(it *pool.Item) {
	h.held[it] = false
	h.dropped = append(h.dropped, it)
}

func TestNew(t *testing.T) {
	t.Run("Rejects Missing Collaborators", func(t *testing.T) {
		_, err := kitchen.New(defaultCfg(), nil, testRecipes(t), zap.NewNop())
		assert.Error(t, err)
		_, err = kitchen.New(defaultCfg(), testRegistry(t), nil, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("Rejects Invalid Pool Config", func(t *testing.T) {
		cfg := defaultCfg()
		cfg.PoolMaxCapacity = 1
		cfg.PoolInitialSize = 4
		_, err := kitchen.New(cfg, testRegistry(t), testRecipes(t), zap.NewNop())
		assert.Error(t, err)
	})
}

func TestSpawnItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		o := newOrchestrator(t, defaultCfg())
		it := o.SpawnItem("tomato", geom.Vec3{X: 1, Y: 2, Z: 3})
		require.NotNil(t, it)
		assert.Equal(t, ingredient.ID("tomato"), it.Identity().ID)
		assert.Equal(t, geom.Vec3{X: 1, Y: 2.25, Z: 3}, it.Position, "spawn applies the height offset")
		assert.True(t, o.IsActive(it))
		assert.Equal(t, 1, o.ActiveCount())
	})

	t.Run("Unknown Identity", func(t *testing.T) {
		o := newOrchestrator(t, defaultCfg())
		assert.Nil(t, o.SpawnItem("plutonium", geom.Zero))
		assert.Nil(t, o.SpawnItem("", geom.Zero))
		assert.Equal(t, 0, o.ActiveCount())
	})

	t.Run("Pool Exhausted", func(t *testing.T) {
		cfg := defaultCfg()
		cfg.PoolInitialSize = 1
		cfg.PoolMaxCapacity = 1
		cfg.PoolAllowGrowth = false
		o := newOrchestrator(t, cfg)

		require.NotNil(t, o.SpawnItem("tomato", geom.Zero))
		assert.Nil(t, o.SpawnItem("tomato", geom.Zero))
	})
}

func TestTryCombine(t *testing.T) {
	pos := geom.Vec3{X: 4, Z: 2}

	t.Run("Basic Combination", func(t *testing.T) {
		o := newOrchestrator(t, defaultCfg())
		a := o.SpawnItem("tomato_chopped", geom.Zero)
		b := o.SpawnItem("lettuce_chopped", geom.Zero)
		require.NotNil(t, a)
		require.NotNil(t, b)

		result := o.TryCombine(a, b, pos)
		require.NotNil(t, result)
		assert.Equal(t, ingredient.ID("salad"), result.Identity().ID)
		assert.Equal(t, pos.Add(geom.Vec3{Y: 0.25}), result.Position)

		assert.False(t, o.IsActive(a), "inputs must be released")
		assert.False(t, o.IsActive(b))
		assert.Nil(t, a.Identity())
		assert.Equal(t, 1, o.ActiveCount())

		stats := o.PoolStats()
		assert.Equal(t, 1, stats.Active)
		assert.Equal(t, stats.Created, stats.Available+stats.Active)
	})

	t.Run("Symmetric", func(t *testing.T) {
		o := newOrchestrator(t, defaultCfg())
		a := o.SpawnItem("lettuce_chopped", geom.Zero)
		b := o.SpawnItem("tomato_chopped", geom.Zero)
		result := o.TryCombine(a, b, pos)
		require.NotNil(t, result)
		assert.Equal(t, ingredient.ID("salad"), result.Identity().ID)
	})

	t.Run("Miss Leaves Inputs Untouched", func(t *testing.T) {
		o := newOrchestrator(t, defaultCfg())
		a := o.SpawnItem("tomato_chopped", geom.Zero)
		b := o.SpawnItem("patty_cooked", geom.Zero)

		assert.Nil(t, o.TryCombine(a, b, pos))
		assert.True(t, o.IsActive(a))
		assert.True(t, o.IsActive(b))
		assert.Equal(t, ingredient.ID("tomato_chopped"), a.Identity().ID)
		assert.Equal(t, 2, o.ActiveCount())
	})

	t.Run("Atomic Under Pool Exhaustion", func(t *testing.T) {
		cfg := defaultCfg()
		cfg.PoolInitialSize = 2
		cfg.PoolMaxCapacity = 2
		cfg.PoolAllowGrowth = false
		o := newOrchestrator(t, cfg)

		a := o.SpawnItem("tomato_chopped", geom.Zero)
		b := o.SpawnItem("lettuce_chopped", geom.Zero)
		require.NotNil(t, a)
		require.NotNil(t, b)

		// The result slot cannot be acquired, so nothing may change.
		assert.Nil(t, o.TryCombine(a, b, pos))
		assert.True(t, o.IsActive(a))
		assert.True(t, o.IsActive(b))
		assert.Equal(t, ingredient.ID("tomato_chopped"), a.Identity().ID)
		assert.Equal(t, ingredient.ID("lettuce_chopped"), b.Identity().ID)
		assert.Equal(t, 2, o.PoolStats().Active)
	})

	t.Run("Invalid Pairs Rejected", func(t *testing.T) {
		o := newOrchestrator(t, defaultCfg())
		a := o.SpawnItem("tomato_chopped", geom.Zero)

		assert.Nil(t, o.TryCombine(a, a, pos))
		assert.Nil(t, o.TryCombine(a, nil, pos))
		assert.Nil(t, o.TryCombine(nil, nil, pos))
		assert.True(t, o.IsActive(a))

		released := o.SpawnItem("lettuce_chopped", geom.Zero)
		o.DestroyItem(released)
		assert.Nil(t, o.TryCombine(a, released, pos), "released items cannot combine")
	})
}

func TestTransform(t *testing.T) {
	pos := geom.Vec3{X: -1}

	t.Run("Chop", func(t *testing.T) {
		o := newOrchestrator(t, defaultCfg())
		it := o.SpawnItem("tomato", geom.Zero)

		chopped := o.Transform(it, ingredient.OpChop, pos)
		require.NotNil(t, chopped)
		assert.Equal(t, ingredient.ID("tomato_chopped"), chopped.Identity().ID)
		assert.False(t, o.IsActive(it))
		assert.Equal(t, 1, o.ActiveCount())
	})

	t.Run("Burn Is Unary Only", func(t *testing.T) {
		o := newOrchestrator(t, defaultCfg())
		it := o.SpawnItem("patty_cooked", geom.Zero)

		burnt := o.Transform(it, ingredient.OpBurn, pos)
		require.NotNil(t, burnt)
		assert.Equal(t, ingredient.ID("patty_burnt"), burnt.Identity().ID)
	})

	t.Run("No Result Leaves Item Untouched", func(t *testing.T) {
		o := newOrchestrator(t, defaultCfg())
		it := o.SpawnItem("salad", geom.Zero)

		assert.Nil(t, o.Transform(it, ingredient.OpChop, pos))
		assert.True(t, o.IsActive(it))
		assert.Equal(t, ingredient.ID("salad"), it.Identity().ID)
	})

	t.Run("Inactive Item Rejected", func(t *testing.T) {
		o := newOrchestrator(t, defaultCfg())
		assert.Nil(t, o.Transform(nil, ingredient.OpChop, pos))
	})
}

func TestDestroyItem(t *testing.T) {
	t.Run("Held Item Force Dropped", func(t *testing.T) {
		o := newOrchestrator(t, defaultCfg())
		holder := &fakeHolder{held: make(map[*pool.Item]bool)}
		o.SetHolder(holder)

		it := o.SpawnItem("tomato", geom.Zero)
		it.Held = true
		holder.held[it] = true

		o.DestroyItem(it)

		assert.Len(t, holder.dropped, 1)
		assert.Same(t, it, holder.dropped[0])
		assert.False(t, o.IsActive(it))
		assert.False(t, it.Held, "release must clear the held flag")
	})

	t.Run("Unregistered Item Ignored", func(t *testing.T) {
		o := newOrchestrator(t, defaultCfg())
		it := o.SpawnItem("tomato", geom.Zero)
		o.DestroyItem(it)

		// Second destroy is a logged no-op; the queue must not grow.
		o.DestroyItem(it)
		assert.Equal(t, 0, o.PoolStats().Active)
		o.DestroyItem(nil)
	})
}

func TestReset(t *testing.T) {
	o := newOrchestrator(t, defaultCfg())
	o.SpawnItem("tomato", geom.Zero)
	o.SpawnItem("lettuce", geom.Zero)

	o.Reset()
	assert.Equal(t, 0, o.ActiveCount())
	assert.Equal(t, 0, o.PoolStats().Created)
}
