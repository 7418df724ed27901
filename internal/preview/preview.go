// Package preview renders a still image of a 4 key stage: a row of
// receptors, two staircased notes per column and one long note in the third
// column.
package preview

import (
	"image"
	imgcolor "image/color"

	"skinbridge/internal/config"
	"skinbridge/internal/imageproc"
)

// PreviewKeys is the keymode the preview draws.
const PreviewKeys = 4

// Geometry holds the canvas size and the stage proportions.
type Geometry struct {
	Width                 int
	Height                int
	StageWidthFraction    float64
	NoteSpacingFraction   float64
	NoteGap               int
	BottomMarginFraction  float64
	LongNoteExtraFraction float64
}

func DefaultGeometry() Geometry {
	return Geometry{
		Width:                 1920,
		Height:                1080,
		StageWidthFraction:    0.85,
		NoteSpacingFraction:   0.3,
		NoteGap:               20,
		BottomMarginFraction:  0.05,
		LongNoteExtraFraction: 0.1,
	}
}

// GeometryFromConfig reads the [preview] section of cfg.
func GeometryFromConfig(cfg *config.Config) Geometry {
	if cfg == nil {
		return DefaultGeometry()
	}
	p := cfg.Preview
	return Geometry{
		Width:                 p.Width,
		Height:                p.Height,
		StageWidthFraction:    p.StageWidthFraction,
		NoteSpacingFraction:   p.NoteSpacingFraction,
		NoteGap:               p.NoteGap,
		BottomMarginFraction:  p.BottomMarginFraction,
		LongNoteExtraFraction: p.LongNoteExtraFraction,
	}
}

// Lane holds the images of one column. Nil images are not drawn.
type Lane struct {
	Receptor *image.NRGBA
	Note     *image.NRGBA
	Head     *image.NRGBA
	Body     *image.NRGBA
	Tail     *image.NRGBA
}

// Scene is everything Render needs. ColumnWidth is in the stage's native
// units and only its ratio to the stage width matters.
type Scene struct {
	ColumnWidth float64
	Lanes       [PreviewKeys]Lane
	Background  *image.NRGBA
}

type layout struct {
	g       Geometry
	scaled  int
	offsetX int
	hitY    int
	maxRec  int
}

func (l layout) heightOf(img *image.NRGBA) int {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 {
		return 0
	}
	return int(float64(l.scaled) * (float64(h) / float64(w)))
}

func (l layout) scale(img *image.NRGBA) (*image.NRGBA, int) {
	h := l.heightOf(img)
	return imageproc.Resize(img, l.scaled, h, imageproc.Lanczos), h
}

func newLayout(s *Scene, g Geometry) layout {
	stageW := int(g.StageWidthFraction * float64(g.Width))
	scaled := stageW / PreviewKeys
	if s.ColumnWidth > 0 {
		scaled = int(s.ColumnWidth * (float64(stageW) / (s.ColumnWidth * PreviewKeys)))
	}
	l := layout{g: g, scaled: scaled}
	l.offsetX = max(g.Width-PreviewKeys*scaled, 0) / 2
	for _, lane := range s.Lanes {
		if lane.Receptor != nil {
			l.maxRec = max(l.maxRec, l.heightOf(lane.Receptor))
		}
	}
	margin := int(g.BottomMarginFraction * float64(g.Height))
	l.hitY = max(g.Height-(l.maxRec+margin), 0)
	return l
}

// Render draws s onto a new canvas of the geometry's size.
func Render(s *Scene, g Geometry) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	if imageproc.IsUsableBackground(s.Background) {
		bg := imageproc.Resize(s.Background, g.Width, g.Height, imageproc.Lanczos)
		copy(canvas.Pix, bg.Pix)
	} else {
		imageproc.FillRect(canvas, imgcolor.NRGBA{A: 255}, 0, 0, g.Width, g.Height)
	}

	l := newLayout(s, g)
	for col, lane := range s.Lanes {
		if lane.Receptor == nil {
			continue
		}
		img, _ := l.scale(lane.Receptor)
		imageproc.Overlay(canvas, img, l.x(col), l.hitY)
	}

	spacing := int(g.NoteSpacingFraction * float64(g.Height))
	base := l.hitY + int(float64(l.maxRec)/1.5)
	for col, lane := range s.Lanes {
		stair := col * (spacing / 8)
		if col == 2 {
			l.drawLongNote(canvas, lane, col, base-stair, spacing)
			continue
		}
		if lane.Note == nil {
			continue
		}
		img, h := l.scale(lane.Note)
		for i := range 2 {
			y := base - (h + g.NoteGap + i*spacing + stair)
			if y < 0 || y >= g.Height {
				continue
			}
			imageproc.Overlay(canvas, img, l.x(col), y)
		}
	}
	return canvas
}

func (l layout) x(col int) int { return l.offsetX + col*l.scaled }

func (l layout) drawLongNote(canvas *image.NRGBA, lane Lane, col, base, spacing int) {
	if lane.Head == nil {
		return
	}
	head, headH := l.scale(lane.Head)
	headY := base - (headH + l.g.NoteGap)
	if headY < 0 {
		return
	}
	tailY := headY - (spacing + int(l.g.LongNoteExtraFraction*float64(l.g.Height)))
	if tailY < 0 {
		return
	}
	tailH := 0
	if lane.Tail != nil {
		var tail *image.NRGBA
		tail, tailH = l.scale(lane.Tail)
		imageproc.Overlay(canvas, tail, l.x(col), tailY)
	}
	start, end := headY+headH/2, tailY+tailH
	if lane.Body != nil && start > end {
		body := imageproc.Resize(lane.Body, l.scaled, start-end, imageproc.Lanczos)
		imageproc.Overlay(canvas, body, l.x(col), end)
	}
	imageproc.Overlay(canvas, head, l.x(col), headY)
}
