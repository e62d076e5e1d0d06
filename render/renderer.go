package render

import (
	"image"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/assets"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	healthBarX      = 54
	healthBarY      = 39
	healthBarHeight = 4
)

type Renderer struct {
	Sheets *Sheets
	Sky    color.Color
	// Debug outlines colliders and static geometry.
	Debug bool

	camEntity ecs.Entity
	failed    map[string]bool
}

func NewRenderer(p *assets.Palette) *Renderer {
	return &Renderer{
		Sheets: NewSheets(p),
		Sky:    p.SkyColor(),
		failed: make(map[string]bool),
	}
}

// Offset returns the active camera offset, or zero when the world has no
// camera.
func (r *Renderer) Offset(w *ecs.World) cp.Vector {
	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		return cam.Offset
	}
	return cp.Vector{}
}

// Draw paints every sprite back to front: by render layer, then by entity
// id, shifted by the camera offset.
func (r *Renderer) Draw(w *ecs.World, geom *ecs.Geometry, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.Sky != nil {
		screen.Fill(r.Sky)
	}
	off := r.Offset(w)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		return layerOf(w, entities[i]) < layerOf(w, entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		r.drawSprite(screen, t.Rect, s, off)
	}

	if r.Debug {
		r.drawDebug(w, geom, screen, off)
	}
	r.drawHealth(w, screen)
}

func (r *Renderer) drawSprite(screen *ebiten.Image, rect image.Rectangle, s *component.Sprite, off cp.Vector) {
	img, err := r.Sheets.Frame(s.Sheet, s.Key, s.Frame, rect.Dx(), rect.Dy())
	if err != nil {
		if !r.failed[s.Sheet] {
			log.Printf("render: %v", err)
			r.failed[s.Sheet] = true
		}
		return
	}

	var geo ebiten.GeoM
	if s.FlipX {
		geo.Scale(-1, 1)
		geo.Translate(float64(rect.Dx()), 0)
	}
	geo.Translate(float64(rect.Min.X)-off.X, float64(rect.Min.Y)-off.Y)

	if !s.Silhouette {
		screen.DrawImage(img, &ebiten.DrawImageOptions{GeoM: geo})
		return
	}
	var cm colorm.ColorM
	cm.Scale(0, 0, 0, 1)
	cm.Translate(1, 1, 1, 0)
	colorm.DrawImage(screen, img, cm, &colorm.DrawImageOptions{GeoM: geo})
}

func (r *Renderer) drawHealth(w *ecs.World, screen *ebiten.Image) {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	h, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok {
		return
	}
	vector.DrawFilledRect(screen, healthBarX, healthBarY, float32(h.BarLength), healthBarHeight, colornames.Dimgray, false)
	vector.DrawFilledRect(screen, healthBarX, healthBarY, float32(h.BarWidth()), healthBarHeight, colornames.Crimson, false)
}

func (r *Renderer) drawDebug(w *ecs.World, geom *ecs.Geometry, screen *ebiten.Image, off cp.Vector) {
	outline := func(rect image.Rectangle, c color.Color) {
		vector.StrokeRect(screen,
			float32(float64(rect.Min.X)-off.X), float32(float64(rect.Min.Y)-off.Y),
			float32(rect.Dx()), float32(rect.Dy()), 1, c, false)
	}
	for _, rect := range geom.Rects() {
		outline(rect, colornames.Yellow)
	}
	ecs.ForEach(w, component.ColliderComponent.Kind(), func(_ ecs.Entity, c *component.Collider) {
		clr := colornames.Red
		if c.Grounded {
			clr = colornames.Lime
		}
		outline(c.Hitbox, clr)
	})
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Hazard, t *component.Transform) {
		outline(t.Rect, colornames.Orangered)
	})
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
