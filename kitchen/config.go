package kitchen

import "morphood/kitchen/pool"

// Config holds configuration for the kitchen runtime.
type Config struct {
	// PoolInitialSize is the number of food items pre-created at startup.
	PoolInitialSize int `mapstructure:"pool_initial_size" default:"32"`
	// PoolMaxCapacity is the hard ceiling on food items ever created.
	PoolMaxCapacity int `mapstructure:"pool_max_capacity" default:"128"`
	// PoolAllowGrowth permits growing the pool past its initial size.
	PoolAllowGrowth bool `mapstructure:"pool_allow_growth" default:"true"`
	// SpawnHeightOffset lifts spawned items above the requested position so
	// they settle onto counters instead of clipping into them.
	SpawnHeightOffset float64 `mapstructure:"spawn_height_offset" default:"0.25"`
}

// PoolConfig returns the pool capacity policy derived from the config.
func (c Config) PoolConfig() pool.Config {
	return pool.Config{
		InitialSize: c.PoolInitialSize,
		MaxCapacity: c.PoolMaxCapacity,
		AllowGrowth: c.PoolAllowGrowth,
	}
}
