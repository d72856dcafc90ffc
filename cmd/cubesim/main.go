// Command cubesim is a small terminal visualization driving the depot
// core: a field of colored spinning blocks, each one an entity whose
// position, drift, and spin phase live in component columns and whose
// per-frame updates run as scheduled systems.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/depot-ecs/depot"
)

const (
	blockCount = 24
	frameRate  = 30 * time.Millisecond
)

var spinGlyphs = []rune{'◰', '◳', '◲', '◱'}

var tints = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorBlue,
	tcell.ColorYellow,
	tcell.ColorFuchsia,
	tcell.ColorAqua,
}

// Pos is a block's position in cell coordinates.
type Pos struct {
	X, Y float64
}

// Drift is a block's velocity in cells per frame.
type Drift struct {
	X, Y float64
}

// Spin is a block's rotation phase.
type Spin struct {
	Phase float64
	Rate  float64
}

// Tint is a block's color.
type Tint struct {
	Color tcell.Color
}

// Bounds is the playfield size, shared as a world resource.
type Bounds struct {
	W, H int
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("cubesim: create screen", "error", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error("cubesim: init screen", "error", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	world, sched, err := buildWorld(screen)
	if err != nil {
		screen.Fini()
		logger.Error("cubesim: build world", "error", err)
		os.Exit(1)
	}
	logger.Info("cubesim: starting", "blocks", blockCount, "batches", len(sched.Batches()))

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	frames := 0
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					logger.Info("cubesim: stopping", "frames", frames)
					return
				}
			case *tcell.EventResize:
				if b, ok := depot.Resource[Bounds](world); ok {
					b.W, b.H = screen.Size()
				}
				screen.Sync()
			}
		case <-ticker.C:
			if err := sched.Run(world); err != nil {
				screen.Fini()
				logger.Error("cubesim: frame failed", "error", err)
				os.Exit(1)
			}
			frames++
		}
	}
}

func buildWorld(screen tcell.Screen) (*depot.World, *depot.Schedule, error) {
	pos := depot.FactoryNewComponent[Pos]()
	drift := depot.FactoryNewComponent[Drift]()
	spin := depot.FactoryNewComponent[Spin]()
	tint := depot.FactoryNewComponent[Tint]()

	world := depot.Factory.NewWorld()
	w, h := screen.Size()
	depot.SetResource(world, Bounds{W: w, H: h})

	for i, e := range world.SpawnN(blockCount) {
		pos.Attach(world, e, Pos{
			X: rand.Float64() * float64(w),
			Y: rand.Float64() * float64(h-1),
		})
		drift.Attach(world, e, Drift{
			X: rand.Float64()*0.8 - 0.4,
			Y: rand.Float64()*0.4 - 0.2,
		})
		spin.Attach(world, e, Spin{Rate: 0.05 + rand.Float64()*0.2})
		tint.Attach(world, e, Tint{Color: tints[i%len(tints)]})
	}

	sched := depot.Factory.NewSchedule(8)

	moveAccess := depot.Factory.NewAccess().Writes(pos, drift)
	if _, err := sched.Register(depot.System{
		Name:   "move",
		Access: moveAccess,
		Run: func(w *depot.World) error {
			bounds, _ := depot.Resource[Bounds](w)
			return w.Query(moveAccess).ForEach(func(cur *depot.Cursor) error {
				p := pos.GetFromCursor(cur)
				d := drift.GetFromCursor(cur)
				p.X += d.X
				p.Y += d.Y
				if p.X < 0 || p.X >= float64(bounds.W) {
					d.X = -d.X
					p.X += d.X
				}
				if p.Y < 0 || p.Y >= float64(bounds.H-1) {
					d.Y = -d.Y
					p.Y += d.Y
				}
				return nil
			})
		},
	}); err != nil {
		return nil, nil, err
	}

	spinAccess := depot.Factory.NewAccess().Writes(spin)
	if _, err := sched.Register(depot.System{
		Name:   "spin",
		Access: spinAccess,
		Run: func(w *depot.World) error {
			return w.Query(spinAccess).ForEach(func(cur *depot.Cursor) error {
				s := spin.GetFromCursor(cur)
				s.Phase += s.Rate
				return nil
			})
		},
	}); err != nil {
		return nil, nil, err
	}

	renderAccess := depot.Factory.NewAccess().Reads(pos, spin, tint)
	if _, err := sched.Register(depot.System{
		Name:   "render",
		Access: renderAccess,
		Run: func(w *depot.World) error {
			screen.Clear()
			err := w.Query(renderAccess).ForEach(func(cur *depot.Cursor) error {
				p := pos.GetFromCursor(cur)
				s := spin.GetFromCursor(cur)
				t := tint.GetFromCursor(cur)
				glyph := spinGlyphs[int(s.Phase)%len(spinGlyphs)]
				style := tcell.StyleDefault.Foreground(t.Color).Background(tcell.ColorBlack)
				screen.SetContent(int(p.X), int(p.Y), glyph, nil, style)
				return nil
			})
			if err != nil {
				return err
			}
			drawHUD(screen, w, pos)
			screen.Show()
			return nil
		},
	}); err != nil {
		return nil, nil, err
	}

	return world, sched, nil
}

func drawHUD(screen tcell.Screen, world *depot.World, pos depot.ComponentType[Pos]) {
	_, h := screen.Size()
	status := fmt.Sprintf("cubesim · %d blocks · q quits", pos.Count(world))
	drawText(screen, 0, h-1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}
