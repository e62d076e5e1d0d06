package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/assets"
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
	"github.com/milk9111/piratemaker/ecs/system"
	"github.com/milk9111/piratemaker/prefabs"
	"github.com/milk9111/piratemaker/render"
)

const previewSize = 512

// demoGame loops one prefab's animation sequences on placeholder sheets.
// Space steps to the next sequence.
type demoGame struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *render.Renderer
	entity    ecs.Entity
	keys      []string
	current   int
}

func (g *demoGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && len(g.keys) > 0 {
		g.current = (g.current + 1) % len(g.keys)
		if anim, ok := ecs.Get(g.world, g.entity, component.AnimationComponent.Kind()); ok {
			anim.Play(g.keys[g.current])
			anim.Index = 0
		}
	}
	g.scheduler.Update(g.world, ecs.Frame{DT: 1 / float64(ebiten.TPS())})
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, nil, screen)
	if s, ok := ecs.Get(g.world, g.entity, component.SpriteComponent.Kind()); ok {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s frame %d (space: next)", s.Key, s.Frame))
	}
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func spriteFor(cat *prefabs.Catalog, name string) (prefabs.SpriteSpec, prefabs.AnimationSpec, error) {
	switch name {
	case "player":
		return cat.Player.Sprite, cat.Player.Animation, nil
	case "tooth":
		return cat.Tooth.Sprite, cat.Tooth.Animation, nil
	case "shell":
		return cat.Shell.Sprite, cat.Shell.Animation, nil
	}
	if coin, ok := cat.Coins.Kinds[name]; ok {
		return coin.Sprite, coin.Animation, nil
	}
	if deco, ok := cat.World.Decorations[name]; ok {
		return deco.Sprite, deco.Animation, nil
	}
	return prefabs.SpriteSpec{}, prefabs.AnimationSpec{}, fmt.Errorf("no animated prefab %q", name)
}

func newDemo(name string) (*demoGame, error) {
	cat, err := prefabs.LoadCatalog()
	if err != nil {
		return nil, err
	}
	palette, err := assets.LoadPalette()
	if err != nil {
		return nil, err
	}
	sprite, spec, err := spriteFor(cat, name)
	if err != nil {
		return nil, err
	}
	rate := spec.Rate
	if rate == 0 {
		rate = common.AnimationSpeed
	}
	anim, err := component.NewAnimation(spec.Sequences, spec.Current, rate, component.AnimationLoop)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	rect := image.Rect(0, 0, sprite.FrameW, sprite.FrameH)
	rect = rect.Add(image.Pt((previewSize-sprite.FrameW)/2, (previewSize-sprite.FrameH)/2))
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Pos:  cp.Vector{X: float64(rect.Min.X), Y: float64(rect.Min.Y)},
		Rect: rect,
	}); err != nil {
		return nil, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Sheet: sprite.Sheet, Key: anim.Current}); err != nil {
		return nil, err
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), anim); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(spec.Sequences))
	for k := range spec.Sequences {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	current := sort.SearchStrings(keys, anim.Current)

	return &demoGame{
		world:     w,
		scheduler: ecs.NewScheduler(system.NewAnimationSystem()),
		renderer:  render.NewRenderer(palette),
		entity:    e,
		keys:      keys,
		current:   current,
	}, nil
}

func main() {
	name := flag.String("prefab", "player", "prefab to preview: player, tooth, shell, a coin kind or a decoration")
	flag.Parse()

	g, err := newDemo(*name)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Sprite Sheet Preview: " + *name)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
