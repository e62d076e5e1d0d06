package common

import "image"

// Rect helpers over image.Rectangle. Overlap and point containment follow
// image semantics: edges that only touch do not overlap and the max edge is
// exclusive.

func RectAt(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

func CenterX(r image.Rectangle) int { return r.Min.X + r.Dx()/2 }

func CenterY(r image.Rectangle) int { return r.Min.Y + r.Dy()/2 }

func Center(r image.Rectangle) image.Point {
	return image.Pt(CenterX(r), CenterY(r))
}

func MidBottom(r image.Rectangle) image.Point {
	return image.Pt(CenterX(r), r.Max.Y)
}

func MidLeft(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X, CenterY(r))
}

func MidRight(r image.Rectangle) image.Point {
	return image.Pt(r.Max.X, CenterY(r))
}

func BottomLeft(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X, r.Max.Y)
}

func BottomRight(r image.Rectangle) image.Point {
	return image.Pt(r.Max.X, r.Max.Y)
}

// MoveTo places the rect's top-left corner at (x, y) keeping its size.
func MoveTo(r image.Rectangle, x, y int) image.Rectangle {
	return r.Add(image.Pt(x-r.Min.X, y-r.Min.Y))
}

func WithCenterX(r image.Rectangle, cx int) image.Rectangle {
	return MoveTo(r, cx-r.Dx()/2, r.Min.Y)
}

func WithCenterY(r image.Rectangle, cy int) image.Rectangle {
	return MoveTo(r, r.Min.X, cy-r.Dy()/2)
}

func WithCenter(r image.Rectangle, c image.Point) image.Rectangle {
	return MoveTo(r, c.X-r.Dx()/2, c.Y-r.Dy()/2)
}

func WithLeft(r image.Rectangle, x int) image.Rectangle { return MoveTo(r, x, r.Min.Y) }

func WithRight(r image.Rectangle, x int) image.Rectangle { return MoveTo(r, x-r.Dx(), r.Min.Y) }

func WithTop(r image.Rectangle, y int) image.Rectangle { return MoveTo(r, r.Min.X, y) }

func WithBottom(r image.Rectangle, y int) image.Rectangle { return MoveTo(r, r.Min.X, y-r.Dy()) }

// Inflate grows (or shrinks, for negative values) the rect around its
// center by dx, dy in total.
func Inflate(r image.Rectangle, dx, dy int) image.Rectangle {
	x := r.Min.X - dx/2
	y := r.Min.Y - dy/2
	return RectAt(x, y, r.Dx()+dx, r.Dy()+dy)
}
