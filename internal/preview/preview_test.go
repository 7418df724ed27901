package preview_test

import (
	"errors"
	"image/color"
	"testing"

	"skinbridge/internal/config"
	"skinbridge/internal/preview"
	"skinbridge/internal/skin/fluxis"
	"skinbridge/internal/skin/generic"
	"skinbridge/internal/skinerr"
	"skinbridge/internal/testsupport"
)

var red = color.NRGBA{R: 255, A: 255}

func smallGeometry() preview.Geometry {
	g := preview.DefaultGeometry()
	g.Width, g.Height = 400, 400
	return g
}

func fluxisSkin(t *testing.T) *fluxis.Skin {
	t.Helper()
	skin := fluxis.NewSkin(nil, nil)
	km := skin.JSON.EnsureKeymode(4)
	km.ColumnWidth = 100
	for col := range 4 {
		km.ReceptorImages[col] = "receptor"
		km.NoteImages[col] = "note"
		km.LongNoteHeadImages[col] = "note"
		km.LongNoteBodyImages[col] = "note"
		km.LongNoteTailImages[col] = "note"
	}
	skin.Textures.InsertValue("Receptor", testsupport.Solid(100, 50, red))
	skin.Textures.InsertValue("note", testsupport.Solid(100, 25, color.NRGBA{B: 255, A: 255}))
	return skin
}

func TestRenderFluXisPlacesReceptors(t *testing.T) {
	scene, err := preview.FromFluXis(fluxisSkin(t))
	if err != nil {
		t.Fatalf("FromFluXis: %v", err)
	}
	if scene.Lanes[0].Receptor == nil {
		t.Fatalf("receptor should resolve ignoring case")
	}
	img := preview.Render(scene, smallGeometry())
	if img.Rect.Dx() != 400 || img.Rect.Dy() != 400 {
		t.Fatalf("unexpected canvas %v", img.Rect)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{A: 255}) {
		t.Fatalf("expected black background, got %v", got)
	}
	// Stage is 340 wide, columns 85, offset 30, receptors 42 tall at y 338.
	if got := img.NRGBAAt(30+42, 338+21); got != red {
		t.Fatalf("expected receptor pixel, got %v", got)
	}
	if got := img.NRGBAAt(20, 338+21); got != (color.NRGBA{A: 255}) {
		t.Fatalf("expected background left of the stage, got %v", got)
	}
}

func TestRenderUsesBackground(t *testing.T) {
	skin := fluxisSkin(t)
	skin.JSON.Overrides.Stage.Background = "bg"
	skin.Textures.InsertValue("bg", testsupport.Solid(8, 8, color.NRGBA{G: 255, A: 255}))
	scene, err := preview.FromFluXis(skin)
	if err != nil {
		t.Fatalf("FromFluXis: %v", err)
	}
	img := preview.Render(scene, smallGeometry())
	if got := img.NRGBAAt(1, 1); got.G != 255 || got.R != 0 {
		t.Fatalf("expected green background, got %v", got)
	}
}

func TestPreviewRequiresFourKeys(t *testing.T) {
	if _, err := preview.FromFluXis(fluxis.NewSkin(nil, nil)); !errors.Is(err, skinerr.ErrMissingAsset) {
		t.Fatalf("expected ErrMissingAsset, got %v", err)
	}
	g := generic.New()
	g.Keymodes = append(g.Keymodes, generic.NewKeymode(7))
	if _, err := preview.FromGeneric(g); !errors.Is(err, skinerr.ErrMissingAsset) {
		t.Fatalf("expected ErrMissingAsset, got %v", err)
	}
}

func TestFromGeneric(t *testing.T) {
	g := generic.New()
	km := generic.NewKeymode(4)
	h := g.Textures.InsertValue("receptor", testsupport.Solid(100, 50, red))
	for col := range 4 {
		km.ReceptorUp[col] = h
		km.Layout.ColumnWidths[col] = 100.0 / 1024
	}
	g.Keymodes = append(g.Keymodes, km)

	scene, err := preview.FromGeneric(g)
	if err != nil {
		t.Fatalf("FromGeneric: %v", err)
	}
	if scene.Lanes[3].Receptor == nil || scene.Lanes[3].Note != nil {
		t.Fatalf("unexpected lane %+v", scene.Lanes[3])
	}
	img := preview.Render(scene, smallGeometry())
	if got := img.NRGBAAt(30+85*3+42, 338+21); got != red {
		t.Fatalf("expected receptor pixel in the last column, got %v", got)
	}
}

func TestGeometryFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Preview.Width = 640
	g := preview.GeometryFromConfig(&cfg)
	if g.Width != 640 || g.Height != 1080 || g.NoteGap != 20 {
		t.Fatalf("unexpected geometry %+v", g)
	}
}

var (
	blue    = color.NRGBA{B: 255, A: 255}
	green   = color.NRGBA{G: 255, A: 255}
	yellow  = color.NRGBA{R: 255, G: 255, A: 255}
	magenta = color.NRGBA{R: 255, B: 255, A: 255}
	black   = color.NRGBA{A: 255}
)

// placementScene has 100x50 receptors, 100x25 notes and a long note in
// column 2 whose parts each have their own colour.
func placementScene() *preview.Scene {
	var s preview.Scene
	for col := range 4 {
		s.Lanes[col].Receptor = testsupport.Solid(100, 50, red)
		if col != 2 {
			s.Lanes[col].Note = testsupport.Solid(100, 25, blue)
		}
	}
	s.Lanes[2].Head = testsupport.Solid(100, 25, green)
	s.Lanes[2].Body = testsupport.Solid(100, 100, magenta)
	s.Lanes[2].Tail = testsupport.Solid(100, 25, yellow)
	return &s
}

// placementGeometry keeps every fraction exact in binary: stage 300 wide,
// columns 75 from x 50, margin H/16, long note extra H/8.
func placementGeometry(height int, spacing float64) preview.Geometry {
	return preview.Geometry{
		Width:                 400,
		Height:                height,
		StageWidthFraction:    0.75,
		NoteSpacingFraction:   spacing,
		NoteGap:               20,
		BottomMarginFraction:  0.0625,
		LongNoteExtraFraction: 0.125,
	}
}

func columnX(col int) int { return 50 + col*75 + 37 }

func requirePixel(t *testing.T, img interface {
	NRGBAAt(x, y int) color.NRGBA
}, x, y int, want color.NRGBA) {
	t.Helper()
	got := img.NRGBAAt(x, y)
	diff := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	if diff(got.R, want.R) > 8 || diff(got.G, want.G) > 8 || diff(got.B, want.B) > 8 || diff(got.A, want.A) > 8 {
		t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}

func TestRenderStacksStaircasedNotes(t *testing.T) {
	// Receptors are 37 tall at y 338, notes 18 tall, base 338+24 = 362 and
	// the staircase step is 100/8 = 12 per column.
	img := preview.Render(placementScene(), placementGeometry(400, 0.25))

	requirePixel(t, img, columnX(0), 338+30, red)
	for _, col := range []int{0, 1, 3} {
		stair := col * 12
		first := 362 - (18 + 20 + stair)
		second := 362 - (18 + 20 + 100 + stair)
		requirePixel(t, img, columnX(col), first+9, blue)
		requirePixel(t, img, columnX(col), second+9, blue)
		requirePixel(t, img, columnX(col), first-2, black)
		requirePixel(t, img, columnX(col), second-2, black)
		requirePixel(t, img, columnX(col), (first+second)/2, black)
	}
	// Column 1 starts one step above column 0.
	requirePixel(t, img, columnX(1), 362-38-12+1, blue)
	requirePixel(t, img, columnX(0), 362-38-12+1, black)
}

func TestRenderDrawsLongNoteInThirdColumn(t *testing.T) {
	// Column 2: base 362-24 = 338, head at 300, tail at 300-(100+50) = 150,
	// body from 150+18 down to 300+9.
	img := preview.Render(placementScene(), placementGeometry(400, 0.25))
	x := columnX(2)

	requirePixel(t, img, x, 150+9, yellow)
	requirePixel(t, img, x, 168+2, magenta)
	requirePixel(t, img, x, 240, magenta)
	requirePixel(t, img, x, 300+4, green)
	requirePixel(t, img, x, 300+15, green)
	requirePixel(t, img, x, 150-2, black)
	requirePixel(t, img, x, 322, black)
}

func TestRenderSkipsNotesAboveCanvas(t *testing.T) {
	// Height 160: receptors at 113, base 137, spacing 100. The second note
	// would start at y -1 and the long note tail above the canvas.
	img := preview.Render(placementScene(), placementGeometry(160, 0.625))

	requirePixel(t, img, columnX(0), 137-38+9, blue)
	for y := range 17 {
		requirePixel(t, img, columnX(0), y, black)
	}
	for y := range 113 {
		if got := img.NRGBAAt(columnX(2), y); got.G > 128 || got.B > 128 {
			t.Fatalf("long note drawn at y %d: %v", y, got)
		}
	}
}
