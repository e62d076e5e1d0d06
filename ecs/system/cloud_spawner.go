package system

import (
	"log"

	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// CloudFactory creates a cloud with its top-left at (x, y).
type CloudFactory func(w *ecs.World, x, y int) (ecs.Entity, error)

// CloudSpawnerSystem adds a cloud at the spawner's right edge each time its
// timer runs out. Heights follow 1D Perlin noise so consecutive clouds drift
// up and down the sky band instead of jumping at random.
type CloudSpawnerSystem struct {
	spawn CloudFactory
}

func NewCloudSpawnerSystem(spawn CloudFactory) *CloudSpawnerSystem {
	return &CloudSpawnerSystem{spawn: spawn}
}

func (c *CloudSpawnerSystem) Update(w *ecs.World, _ ecs.Frame) {
	if w == nil || c.spawn == nil {
		return
	}

	ecs.ForEach(w, component.CloudSpawnerComponent.Kind(), func(_ ecs.Entity, sp *component.CloudSpawner) {
		sp.Timer.Update()
		if sp.Timer.Active() {
			return
		}
		sp.Timer.Activate()

		x, y := sp.SpawnX, sp.NextHeight()
		ecs.Defer(w, func(w *ecs.World) {
			if _, err := c.spawn(w, x, y); err != nil {
				log.Printf("clouds: spawn: %v", err)
			}
		})
	})
}
