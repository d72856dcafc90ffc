// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/depot-ecs/depot"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 200
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	c1 := depot.FactoryNewComponent[comp1]()
	c2 := depot.FactoryNewComponent[comp2]()

	for range rounds {
		w := depot.Factory.NewWorld()
		for range iters {
			spawned := w.SpawnN(numEntities)
			for _, e := range spawned {
				c1.Attach(w, e, comp1{})
				c2.Attach(w, e, comp2{})
			}
			for _, e := range spawned {
				w.Despawn(e)
			}
		}
	}
}
