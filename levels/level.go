package levels

import (
	"errors"
	"fmt"
	"image"
	"math/rand"

	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
	"github.com/milk9111/piratemaker/ecs/entity"
	"github.com/milk9111/piratemaker/ecs/system"
	"github.com/milk9111/piratemaker/prefabs"
)

var ErrNoPlayer = errors.New("levels: no player start")

// skyRows is how far above the top of the grid clouds may float.
const skyRows = 6

// Level is a grid instantiated into a live world.
type Level struct {
	World    *ecs.World
	Geometry *ecs.Geometry
	Player   ecs.Entity
	// Bounds is the grid's extent in world pixels.
	Bounds image.Rectangle

	ctx       *entity.Context
	leftLimit int
}

// Build turns a painted grid into a world: merged terrain collision, one
// drawable per tile and every entity the cells name. seed drives tooth
// directions and cloud placement.
func Build(g *Grid, cat *prefabs.Catalog, seed int64) (*Level, error) {
	if g == nil {
		return nil, errors.New("levels: nil grid")
	}
	start, ok := g.Player()
	if !ok {
		return nil, ErrNoPlayer
	}

	geom, err := ecs.NewGeometryFromGrid(g.Width, g.Height, common.TileSize, func(x, y int) bool {
		v, ok := g.At(image.Pt(x, y))
		return ok && v == CellTerrain
	})
	if err != nil {
		return nil, fmt.Errorf("levels: geometry: %w", err)
	}

	ctx := &entity.Context{
		World:    ecs.NewWorld(),
		Catalog:  cat,
		Geometry: geom,
		Rand:     rand.New(rand.NewSource(seed)),
	}
	lvl := &Level{
		World:    ctx.World,
		Geometry: geom,
		Bounds:   image.Rect(0, 0, g.Width*common.TileSize, g.Height*common.TileSize),
		ctx:      ctx,
	}

	for _, c := range g.Cells() {
		v, _ := g.At(c)
		if err := lvl.spawnCell(g, c, v); err != nil {
			return nil, err
		}
	}

	band := image.Rect(lvl.Bounds.Min.X, -skyRows*common.TileSize, lvl.Bounds.Max.X, 0)
	spawner, err := entity.NewCloudSpawner(ctx, band, seed)
	if err != nil {
		return nil, fmt.Errorf("levels: clouds: %w", err)
	}
	if sp, ok := ecs.Get(ctx.World, spawner, component.CloudSpawnerComponent.Kind()); ok {
		lvl.leftLimit = sp.LeftX
	}

	if lvl.Player, err = entity.NewPlayer(ctx, topLeft(start)); err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if _, err := entity.NewCamera(ctx); err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	return lvl, nil
}

func (l *Level) spawnCell(g *Grid, c image.Point, v int) error {
	pos := topLeft(c)
	var err error
	switch {
	case v == CellTerrain:
		_, err = entity.NewTerrainTile(l.ctx, v, pos)
	case v == CellWater:
		name := entity.DecorationWater
		if above, ok := g.At(c.Add(image.Pt(0, -1))); !ok || above != CellWater {
			name = entity.DecorationWaterTop
		}
		_, err = entity.NewDecoration(l.ctx, name, pos)
	case v == CellGold:
		_, err = entity.NewCoin(l.ctx, entity.CoinGold, centre(c))
	case v == CellSilver:
		_, err = entity.NewCoin(l.ctx, entity.CoinSilver, centre(c))
	case v == CellDiamond:
		_, err = entity.NewCoin(l.ctx, entity.CoinDiamond, centre(c))
	case v == CellSpikes:
		_, err = entity.NewSpikes(l.ctx, pos)
	case v == CellTooth:
		_, err = entity.NewTooth(l.ctx, pos)
	case v == CellShellLeft:
		_, err = entity.NewShell(l.ctx, pos, component.OrientLeft)
	case v == CellShellRight:
		_, err = entity.NewShell(l.ctx, pos, component.OrientRight)
	case v >= CellPalmFG && v < CellPalmBG:
		_, err = entity.NewDecoration(l.ctx, entity.DecorationPalmFG, pos)
	case v >= CellPalmBG && v <= MaxSelection:
		_, err = entity.NewDecoration(l.ctx, entity.DecorationPalmBG, pos)
	default:
		err = ErrBadCell
	}
	if err != nil {
		return fmt.Errorf("levels: cell %v (%d): %w", c, v, err)
	}
	return nil
}

// Factories wires the level's entity constructors into the systems that
// spawn mid-game.
func (l *Level) Factories() system.Factories {
	return system.Factories{
		Projectile: entity.PearlFactory(l.ctx),
		Effect:     entity.ParticleFactory(l.ctx),
		Cloud:      entity.CloudFactory(l.ctx, l.leftLimit),
	}
}

// Frame bundles dt with the level's geometry for one tick.
func (l *Level) Frame(dt float64) ecs.Frame {
	return ecs.Frame{DT: dt, Geometry: l.Geometry}
}

func topLeft(c image.Point) image.Point {
	return c.Mul(common.TileSize)
}

func centre(c image.Point) image.Point {
	return topLeft(c).Add(image.Pt(common.TileSize/2, common.TileSize/2))
}
