package glyphgrad

import "math"

// Point is a position on the layout surface.
type Point struct {
	X, Y float64
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoundsOf returns the bounding box of points. The zero Bounds is returned
// for an empty slice.
func BoundsOf(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: points[0].X, MaxX: points[0].X,
		MinY: points[0].Y, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// DegenerateRatio is the ratio reported for every point when the bounding
// box has no extent, such as a single glyph or a stack of glyphs sharing
// one anchor.
const DegenerateRatio = 0.5

// Projector maps points to their position along the diagonal of a bounding
// box, running from (MinX,MinY) at 0 to (MaxX,MaxY) at 1. Lines of equal
// ratio are perpendicular to the diagonal.
type Projector struct {
	bounds Bounds
	dx, dy float64 // min - max
	sx, sy float64 // min + max
	k      float64
}

// NewProjector returns a Projector over the bounding box of points.
func NewProjector(points []Point) *Projector {
	return NewProjectorFromBounds(BoundsOf(points))
}

// NewProjectorFromBounds returns a Projector over b.
func NewProjectorFromBounds(b Bounds) *Projector {
	dx := b.MinX - b.MaxX
	dy := b.MinY - b.MaxY
	return &Projector{
		bounds: b,
		dx:     dx,
		dy:     dy,
		sx:     b.MinX + b.MaxX,
		sy:     b.MinY + b.MaxY,
		k:      2 * (dx*dx + dy*dy),
	}
}

// Bounds returns the box the projector was built from.
func (p *Projector) Bounds() Bounds { return p.bounds }

// Ratio returns the position of pt along the diagonal, in [0,1].
func (p *Projector) Ratio(pt Point) float64 {
	if p.k == 0 {
		return DegenerateRatio
	}
	r := ((p.sx-2*pt.X)*p.dx+(p.sy-2*pt.Y)*p.dy)/p.k + 0.5
	return clampUnit(r)
}
