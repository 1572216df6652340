package geom

import "math"

// Box is an axis-aligned bounding box.
type Box struct {
	Min Vec3
	Max Vec3
}

// NewBox returns an empty box, ready to be extended with points.
func NewBox() Box {
	return Box{
		Min: Vec3{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64},
		Max: Vec3{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64},
	}
}

// IsEmpty reports whether the box has never been extended.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Extend expands the box to include a point.
func (b *Box) Extend(p Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// ExtendBox expands the box to include another box.
func (b *Box) ExtendBox(other Box) {
	if other.IsEmpty() {
		return
	}
	b.Extend(other.Min)
	b.Extend(other.Max)
}

// Size returns the extents of the box along each axis.
func (b Box) Size() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the box.
func (b Box) Center() Vec3 {
	return Vec3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Diagonal returns the length of the box diagonal.
func (b Box) Diagonal() float64 {
	return b.Size().Length()
}

// Volume returns the volume of the box.
func (b Box) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}
