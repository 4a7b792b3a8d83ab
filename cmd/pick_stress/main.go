// Stress test timing the pointer hit test against growing scenes
package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"scenedemo/internal/config"
	"scenedemo/internal/physics"
	"scenedemo/internal/picking"
	"scenedemo/internal/world"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

func main() {
	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.Load(v)
	if err != nil {
		panic(fmt.Sprintf("Failed to load defaults: %v", err))
	}

	// Test various object counts
	testCounts := []int{4, 100, 500, 1000, 5000, 10000}

	for _, count := range testCounts {
		testPicking(cfg, count)
	}
}

func testPicking(cfg config.Config, count int) {
	cfg.Scene.SphereCount = count
	w := world.Build(cfg)
	objects := w.Pickables()

	rng := rand.New(rand.NewPCG(42, 42)) // Consistent results
	pointers := make([]picking.Pointer, 1000)
	for i := range pointers {
		pointers[i] = picking.Pointer{X: rng.Float32()*2 - 1, Y: rng.Float32()*2 - 1}
	}

	// Raw hit test
	rayStart := time.Now()
	hits := 0
	for _, p := range pointers {
		if _, ok := physics.Raycast(w.Camera.Ray(p.X, p.Y), objects, picking.MaxPickDistance); ok {
			hits++
		}
	}
	rayTime := time.Since(rayStart) / time.Duration(len(pointers))

	// Full controller update, including highlight writes
	c := picking.NewController(cfg.HighlightColor(), rng, zerolog.Nop())
	transitions := map[picking.Transition]int{}
	updateStart := time.Now()
	for _, p := range pointers {
		transitions[c.Update(p, w.Camera, objects)]++
	}
	updateTime := time.Since(updateStart) / time.Duration(len(pointers))
	c.Reset()

	fmt.Printf("%5d objects: raycast %8v  update %8v  hits %4d  entered %4d switched %4d left %4d\n",
		len(objects), rayTime, updateTime, hits,
		transitions[picking.Entered], transitions[picking.Switched], transitions[picking.Left])
}
