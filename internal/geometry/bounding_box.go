package geometry

import "gonum.org/v1/gonum/spatial/r3"

// BoundingBox is an axis aligned box, inclusive on both ends.
type BoundingBox struct {
	Min r3.Vec
	Max r3.Vec
}

func NewBoundingBox(min, max r3.Vec) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// Cube spans a cubic box from its minimum corner and edge length.
func Cube(corner r3.Vec, size float64) BoundingBox {
	return BoundingBox{
		Min: corner,
		Max: r3.Add(corner, r3.Vec{X: size, Y: size, Z: size}),
	}
}

// FromPoints returns the tightest box enclosing the given points.
func FromPoints(points ...r3.Vec) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b = b.ExtendPoint(p)
	}
	return b
}

func (b BoundingBox) ExtendPoint(p r3.Vec) BoundingBox {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}

// Intersects reports whether the boxes share at least one point.
// Touching faces count as intersecting.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y &&
		b.Min.Z <= o.Max.Z && o.Min.Z <= b.Max.Z
}

func (b BoundingBox) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

func (b BoundingBox) Diagonal() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}
