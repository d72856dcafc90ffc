package depot_test

import (
	"fmt"

	"github.com/depot-ecs/depot"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Example shows basic depot usage with entity creation and queries
func Example_basic() {
	// Create a world
	world := depot.Factory.NewWorld()

	// Define components
	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()
	name := depot.FactoryNewComponent[Name]()

	// Create plain entities
	for _, e := range world.SpawnN(5) {
		position.Attach(world, e, Position{})
	}
	for _, e := range world.SpawnN(3) {
		position.Attach(world, e, Position{})
		velocity.Attach(world, e, Velocity{})
	}

	// Create one named entity
	player := world.Spawn()
	position.Attach(world, player, Position{X: 10, Y: 20})
	velocity.Attach(world, player, Velocity{X: 1, Y: 2})
	name.Attach(world, player, Name{Value: "Player"})

	// Count all entities with position and velocity
	moving := depot.Factory.NewAccess().Reads(position, velocity)
	matchCount, _ := world.Query(moving).Count()
	fmt.Printf("Found %d entities with position and velocity\n", matchCount)

	// Move just the named entity
	named := depot.Factory.NewAccess().Writes(position).Reads(velocity, name)
	world.Query(named).ForEach(func(cur *depot.Cursor) error {
		pos := position.GetFromCursor(cur)
		vel := velocity.GetFromCursor(cur)
		nme := name.GetFromCursor(cur)

		// Update position based on velocity
		pos.X += vel.X
		pos.Y += vel.Y

		fmt.Printf("Updated %s to position (%.1f, %.1f)\n", nme.Value, pos.X, pos.Y)
		return nil
	})

	// Output:
	// Found 4 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// Example_exclusion shows queries that require absence of a component
func Example_exclusion() {
	world := depot.Factory.NewWorld()

	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()

	for _, e := range world.SpawnN(3) {
		position.Attach(world, e, Position{})
	}
	for _, e := range world.SpawnN(2) {
		position.Attach(world, e, Position{})
		velocity.Attach(world, e, Velocity{})
	}

	moving := depot.Factory.NewAccess().Reads(position, velocity)
	still := depot.Factory.NewAccess().Reads(position).Without(velocity)

	movingCount, _ := world.Query(moving).Count()
	stillCount, _ := world.Query(still).Count()
	fmt.Printf("moving: %d\n", movingCount)
	fmt.Printf("still: %d\n", stillCount)

	// The two access sets could run concurrently: both only read.
	fmt.Printf("compatible: %v\n", depot.Compatible(moving, still))

	// Output:
	// moving: 2
	// still: 3
	// compatible: true
}
