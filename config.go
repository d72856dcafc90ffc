package depot

// Config holds global tuning for new worlds and columns.
var Config config

type config struct {
	initialColumnCapacity int
	onDespawn             func(Entity)
}

// SetInitialColumnCapacity sets the dense capacity newly created columns
// reserve up front. Zero (the default) lets columns grow on demand.
func (c *config) SetInitialColumnCapacity(n int) {
	c.initialColumnCapacity = n
}

// SetDespawnHook registers a callback invoked after an entity is
// despawned and its columns cleared. A nil hook disables it.
func (c *config) SetDespawnHook(fn func(Entity)) {
	c.onDespawn = fn
}
