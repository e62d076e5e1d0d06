package ecs

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/jakecoffman/cp"
)

var ErrEmptyRect = errors.New("geometry: rect has no area")

// Geometry is the static collision set for a level. Rects are indexed in a
// Chipmunk space as static boxes so overlap and point queries only look at
// nearby shapes. Geometry is never mutated after construction.
type Geometry struct {
	space *cp.Space
	rects []image.Rectangle
}

// NewGeometry indexes rects as-is. Every rect must have a positive area.
func NewGeometry(rects []image.Rectangle) (*Geometry, error) {
	g := &Geometry{space: cp.NewSpace()}
	for i, r := range rects {
		if r.Empty() {
			return nil, fmt.Errorf("geometry: rect %d %v: %w", i, r, ErrEmptyRect)
		}
		g.add(r)
	}
	return g, nil
}

// NewGeometryFromGrid merges contiguous solid cells into larger rects so the
// index holds fewer boxes than there are tiles.
func NewGeometryFromGrid(width, height, tileSize int, solid func(x, y int) bool) (*Geometry, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("geometry: tile size %d: %w", tileSize, ErrEmptyRect)
	}
	g := &Geometry{space: cp.NewSpace()}
	if width <= 0 || height <= 0 || solid == nil {
		return g, nil
	}

	processed := make([]bool, width*height)
	isOpen := func(x, y int) bool {
		return !processed[y*width+x] && solid(x, y)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !isOpen(x, y) {
				processed[y*width+x] = true
				continue
			}

			w := 1
			for x+w < width && isOpen(x+w, y) {
				w++
			}

			h := 1
		heightLoop:
			for y+h < height {
				for xi := x; xi < x+w; xi++ {
					if !isOpen(xi, y+h) {
						break heightLoop
					}
				}
				h++
			}

			g.add(image.Rect(x*tileSize, y*tileSize, (x+w)*tileSize, (y+h)*tileSize))

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*width+xx] = true
				}
			}
		}
	}
	return g, nil
}

func (g *Geometry) add(r image.Rectangle) {
	bb := cp.BB{L: float64(r.Min.X), B: float64(r.Min.Y), R: float64(r.Max.X), T: float64(r.Max.Y)}
	shape := cp.NewBox2(g.space.StaticBody, bb, 0)
	shape.UserData = len(g.rects)
	g.space.AddShape(shape)
	g.rects = append(g.rects, r)
}

// Rects returns a copy of the indexed rects in insertion order.
func (g *Geometry) Rects() []image.Rectangle {
	if g == nil {
		return nil
	}
	return append([]image.Rectangle(nil), g.rects...)
}

func (g *Geometry) Len() int {
	if g == nil {
		return 0
	}
	return len(g.rects)
}

// candidates returns indices of rects whose bounds touch bb, ascending.
func (g *Geometry) candidates(bb cp.BB) []int {
	if g == nil || len(g.rects) == 0 {
		return nil
	}
	var out []int
	g.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if idx, ok := shape.UserData.(int); ok {
			out = append(out, idx)
		}
	}, nil)
	sort.Ints(out)
	return out
}

// Overlapping returns the rects that strictly overlap r, in insertion order.
func (g *Geometry) Overlapping(r image.Rectangle) []image.Rectangle {
	if r.Empty() {
		return nil
	}
	bb := cp.BB{L: float64(r.Min.X), B: float64(r.Min.Y), R: float64(r.Max.X), T: float64(r.Max.Y)}
	var out []image.Rectangle
	for _, idx := range g.candidates(bb) {
		if g.rects[idx].Overlaps(r) {
			out = append(out, g.rects[idx])
		}
	}
	return out
}

// AnyOverlap reports whether any rect strictly overlaps r.
func (g *Geometry) AnyOverlap(r image.Rectangle) bool {
	return len(g.Overlapping(r)) > 0
}

// ContainsPoint reports whether p lies inside any rect. Max edges are
// exclusive.
func (g *Geometry) ContainsPoint(p image.Point) bool {
	bb := cp.BB{L: float64(p.X), B: float64(p.Y), R: float64(p.X), T: float64(p.Y)}
	for _, idx := range g.candidates(bb) {
		if p.In(g.rects[idx]) {
			return true
		}
	}
	return false
}
