// Package alignment implements the anchor/origin placement algebra shared by
// HUD layouts.
//
// Each axis is an independent XAlign or YAlign. The byte encoding used by
// layout files only appears in PointFromByte and Point.Byte.
package alignment

import "fmt"

type XAlign uint8

const (
	XNone XAlign = iota
	Left
	XCenter
	Right
)

type YAlign uint8

const (
	YNone YAlign = iota
	Top
	YCenter
	Bottom
)

// Fraction maps an axis to its placement fraction. Unset or unknown values
// resolve to the centre.
func (x XAlign) Fraction() float64 {
	switch x {
	case Left:
		return 0
	case Right:
		return 1
	default:
		return 0.5
	}
}

func (y YAlign) Fraction() float64 {
	switch y {
	case Top:
		return 0
	case Bottom:
		return 1
	default:
		return 0.5
	}
}

// Point is one side of an Alignment: a position on the element or container.
type Point struct {
	X      XAlign
	Y      YAlign
	Custom bool
}

var (
	TopLeft      = Point{X: Left, Y: Top}
	TopCentre    = Point{X: XCenter, Y: Top}
	TopRight     = Point{X: Right, Y: Top}
	CentreLeft   = Point{X: Left, Y: YCenter}
	Centre       = Point{X: XCenter, Y: YCenter}
	CentreRight  = Point{X: Right, Y: YCenter}
	BottomLeft   = Point{X: Left, Y: Bottom}
	BottomCentre = Point{X: XCenter, Y: Bottom}
	BottomRight  = Point{X: Right, Y: Bottom}
	Custom       = Point{Custom: true}
)

// Offset returns the point's fractional position within a unit box.
func (p Point) Offset() (float64, float64) {
	if p.Custom {
		return 0.5, 0.5
	}
	return p.X.Fraction(), p.Y.Fraction()
}

const (
	flagY0     uint8 = 1
	flagY1     uint8 = 1 << 1
	flagY2     uint8 = 1 << 2
	flagX0     uint8 = 1 << 3
	flagX1     uint8 = 1 << 4
	flagX2     uint8 = 1 << 5
	flagCustom uint8 = 1 << 6

	maskY = flagY0 | flagY1 | flagY2
	maskX = flagX0 | flagX1 | flagX2
)

// Byte encodes p in the layout file representation.
func (p Point) Byte() uint8 {
	if p.Custom {
		return flagCustom
	}
	var b uint8
	switch p.X {
	case Left:
		b |= flagX0
	case XCenter:
		b |= flagX1
	case Right:
		b |= flagX2
	}
	switch p.Y {
	case Top:
		b |= flagY0
	case YCenter:
		b |= flagY1
	case Bottom:
		b |= flagY2
	}
	return b
}

// PointFromByte decodes a layout byte. Only single-axis flags, the nine
// two-axis combinations and the custom marker are accepted.
func PointFromByte(b uint8) (Point, error) {
	if b == flagCustom {
		return Custom, nil
	}
	x, okX := xFromBits(b & maskX)
	y, okY := yFromBits(b & maskY)
	if b&^(maskX|maskY) != 0 || !okX || !okY || (x == XNone && y == YNone) {
		return Point{}, fmt.Errorf("invalid alignment byte %d", b)
	}
	return Point{X: x, Y: y}, nil
}

// PointFromByteOr decodes b, substituting fallback when b is invalid.
func PointFromByteOr(b uint8, fallback Point) Point {
	p, err := PointFromByte(b)
	if err != nil {
		return fallback
	}
	return p
}

func xFromBits(bits uint8) (XAlign, bool) {
	switch bits {
	case 0:
		return XNone, true
	case flagX0:
		return Left, true
	case flagX1:
		return XCenter, true
	case flagX2:
		return Right, true
	}
	return XNone, false
}

func yFromBits(bits uint8) (YAlign, bool) {
	switch bits {
	case 0:
		return YNone, true
	case flagY0:
		return Top, true
	case flagY1:
		return YCenter, true
	case flagY2:
		return Bottom, true
	}
	return YNone, false
}

// OffsetFromByte maps any byte to placement fractions without failing.
// Axes whose bits are not exactly one flag resolve to the centre.
func OffsetFromByte(b uint8) (float64, float64) {
	x, _ := xFromBits(b & maskX)
	y, _ := yFromBits(b & maskY)
	return x.Fraction(), y.Fraction()
}

// Alignment pairs the container anchor with the element origin.
type Alignment struct {
	Anchor Point
	Origin Point
}

func New(anchor, origin Point) Alignment {
	return Alignment{Anchor: anchor, Origin: origin}
}

// Default is centre anchored and centre originated.
func Default() Alignment {
	return Alignment{Anchor: Centre, Origin: Centre}
}

// CalculatePos places an element of size within container.
func CalculatePos(container, size Vec2, a Alignment) Vec2 {
	ax, ay := a.Anchor.Offset()
	ox, oy := a.Origin.Offset()
	return Vec2{
		X: ax*container.X - ox*size.X,
		Y: ay*container.Y - oy*size.Y,
	}
}

// CalculatePosOffsetted is CalculatePos followed by a literal offset.
func CalculatePosOffsetted(container, size Vec2, a Alignment, offset Vec2) Vec2 {
	return CalculatePos(container, size, a).Add(offset)
}

// ConvertPos re-expresses a position given relative to from.Origin as a
// position relative to to.Origin. Anchors do not take part.
func ConvertPos(pos, size Vec2, from, to Alignment) Vec2 {
	fx, fy := from.Origin.Offset()
	tx, ty := to.Origin.Offset()
	left := pos.X - size.X*fx
	top := pos.Y - size.Y*fy
	return Vec2{X: left + size.X*tx, Y: top + size.Y*ty}
}
