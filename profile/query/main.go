// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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
	iters := 10000
	entities := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters, entities)
	p.Stop()
}

func run(iters, numEntities int) {
	c1 := depot.FactoryNewComponent[comp1]()
	c2 := depot.FactoryNewComponent[comp2]()

	w := depot.Factory.NewWorld()
	for i, e := range w.SpawnN(numEntities) {
		c1.Attach(w, e, comp1{V: int64(i)})
		if i%2 == 0 {
			c2.Attach(w, e, comp2{})
		}
	}

	access := depot.Factory.NewAccess().Writes(c1).Reads(c2)
	for range iters {
		err := w.Query(access).ForEach(func(cur *depot.Cursor) error {
			v1 := c1.GetFromCursor(cur)
			v2 := c2.GetFromCursor(cur)
			v1.V += v2.V
			v1.W++
			return nil
		})
		if err != nil {
			panic(err)
		}
	}
}
