package alignment_test

import (
	"math"
	"testing"

	"skinbridge/internal/alignment"
)

var all = []alignment.Point{
	alignment.TopLeft, alignment.TopCentre, alignment.TopRight,
	alignment.CentreLeft, alignment.Centre, alignment.CentreRight,
	alignment.BottomLeft, alignment.BottomCentre, alignment.BottomRight,
	alignment.Custom,
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestByteEncoding(t *testing.T) {
	want := map[alignment.Point]uint8{
		alignment.TopLeft:      9,
		alignment.TopCentre:    17,
		alignment.TopRight:     33,
		alignment.CentreLeft:   10,
		alignment.Centre:       18,
		alignment.CentreRight:  34,
		alignment.BottomLeft:   12,
		alignment.BottomCentre: 20,
		alignment.BottomRight:  36,
		alignment.Custom:       64,
	}
	for p, b := range want {
		if got := p.Byte(); got != b {
			t.Errorf("%+v.Byte() = %d, want %d", p, got, b)
		}
		back, err := alignment.PointFromByte(b)
		if err != nil || back != p {
			t.Errorf("PointFromByte(%d) = %+v, %v", b, back, err)
		}
	}
}

func TestPointFromByteRejectsInvalid(t *testing.T) {
	for _, b := range []uint8{0, 3, 24, 27, 65, 128, 255} {
		if _, err := alignment.PointFromByte(b); err == nil {
			t.Errorf("byte %d accepted", b)
		}
	}
	if p := alignment.PointFromByteOr(255, alignment.Centre); p != alignment.Centre {
		t.Errorf("fallback = %+v", p)
	}
}

func TestOffsetFromByteIsTotal(t *testing.T) {
	for b := 0; b < 256; b++ {
		x, y := alignment.OffsetFromByte(uint8(b))
		for _, v := range []float64{x, y} {
			if v != 0 && v != 0.5 && v != 1 {
				t.Fatalf("byte %d gave fraction %v", b, v)
			}
		}
	}
	if x, y := alignment.OffsetFromByte(3); x != 0.5 || y != 0.5 {
		t.Fatalf("ambiguous y bits should centre, got %v,%v", x, y)
	}
	if x, y := alignment.OffsetFromByte(36); x != 1 || y != 1 {
		t.Fatalf("bottom right = %v,%v", x, y)
	}
}

func TestCalculatePos(t *testing.T) {
	container := alignment.Vec2{X: 512, Y: 384}
	size := alignment.Vec2{X: 100, Y: 50}
	got := alignment.CalculatePos(container, size, alignment.New(alignment.Centre, alignment.Centre))
	if !near(got.X, 206) || !near(got.Y, 167) {
		t.Fatalf("centre = %+v", got)
	}
	got = alignment.CalculatePos(container, size, alignment.New(alignment.BottomRight, alignment.BottomRight))
	if !near(got.X, 412) || !near(got.Y, 334) {
		t.Fatalf("bottom right = %+v", got)
	}
	got = alignment.CalculatePosOffsetted(container, size, alignment.New(alignment.TopLeft, alignment.TopLeft), alignment.Vec2{X: 5, Y: -5})
	if !near(got.X, 5) || !near(got.Y, -5) {
		t.Fatalf("offsetted = %+v", got)
	}
}

func TestConvertPosRoundTrip(t *testing.T) {
	positions := []alignment.Vec2{{X: 0, Y: 0}, {X: 13.5, Y: -7}, {X: 1024, Y: 576}}
	sizes := []alignment.Vec2{{X: 1, Y: 1}, {X: 150, Y: 100}, {X: 0.25, Y: 3}}
	for _, p := range positions {
		for _, s := range sizes {
			for _, a := range all {
				for _, b := range all {
					from := alignment.New(alignment.Centre, a)
					to := alignment.New(alignment.TopLeft, b)
					there := alignment.ConvertPos(p, s, from, to)
					back := alignment.ConvertPos(there, s, to, from)
					if !near(back.X, p.X) || !near(back.Y, p.Y) {
						t.Fatalf("round trip %+v %+v %+v->%+v gave %+v", p, s, a, b, back)
					}
				}
			}
		}
	}
}

func TestConvertPosIgnoresAnchor(t *testing.T) {
	p := alignment.Vec2{X: 10, Y: 10}
	s := alignment.Vec2{X: 20, Y: 40}
	a := alignment.ConvertPos(p, s, alignment.New(alignment.TopLeft, alignment.TopLeft), alignment.New(alignment.TopLeft, alignment.Centre))
	b := alignment.ConvertPos(p, s, alignment.New(alignment.BottomRight, alignment.TopLeft), alignment.New(alignment.Custom, alignment.Centre))
	if a != b {
		t.Fatalf("anchor changed result: %+v vs %+v", a, b)
	}
	if !near(a.X, 20) || !near(a.Y, 30) {
		t.Fatalf("converted = %+v", a)
	}
}
