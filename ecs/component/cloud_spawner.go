package component

import (
	"github.com/aquilax/go-perlin"
	"github.com/milk9111/piratemaker/common"
)

// CloudSpawner periodically adds clouds just past the right edge of the
// level. Noise picks each cloud's height within [MinY, MaxY].
type CloudSpawner struct {
	Timer    *common.Timer
	Noise    *perlin.Perlin
	Step     float64
	Sample   float64
	MinY     int
	MaxY     int
	SpawnX   int
	LeftX    int
	MinSpeed float64
	MaxSpeed float64
	Sheets   []string
}

var CloudSpawnerComponent = NewComponent[CloudSpawner]()

// NextHeight samples the noise, maps it into [MinY, MaxY] and advances the
// sample position.
func (c *CloudSpawner) NextHeight() int {
	n := 0.0
	if c.Noise != nil {
		n = c.Noise.Noise1D(c.Sample)
	}
	c.Sample += c.Step
	t := common.Clamp((n+1)/2, 0, 1)
	return c.MinY + common.Round(t*float64(c.MaxY-c.MinY))
}
