package generic

import (
	"fmt"

	"skinbridge/internal/skinerr"
	"skinbridge/internal/store"
)

// Layout places a keymode's stage. XOffset, HitPosition and ColumnWidths are
// fractions of the playfield; ReceptorOffset and ColumnSpacing are pixels.
type Layout struct {
	ReceptorAboveNotes bool
	XOffset            float64
	HitPosition        float64
	ReceptorOffset     int
	ColumnWidths       []float64
	ColumnSpacing      []float64
	JudgementLine      bool
}

// IsZero reports whether l carries no information.
func (l Layout) IsZero() bool {
	return !l.ReceptorAboveNotes && l.XOffset == 0 && l.HitPosition == 0 &&
		l.ReceptorOffset == 0 && len(l.ColumnWidths) == 0 &&
		len(l.ColumnSpacing) == 0 && !l.JudgementLine
}

// AverageColumnWidth returns the mean column width, or 0 without columns.
func (l Layout) AverageColumnWidth() float64 {
	if len(l.ColumnWidths) == 0 {
		return 0
	}
	var sum float64
	for _, w := range l.ColumnWidths {
		sum += w
	}
	return sum / float64(len(l.ColumnWidths))
}

type HitLighting struct {
	Normal store.Handle
	Hold   store.Handle
}

// Keymode holds the per-column textures of one key count.
type Keymode struct {
	KeyCount int
	Layout   Layout

	ReceptorUp   []store.Handle
	ReceptorDown []store.Handle
	NormalNote   []store.Handle
	LongNoteHead []store.Handle
	LongNoteBody []store.Handle
	LongNoteTail []store.Handle

	HitLighting    HitLighting
	ColumnLighting store.Handle
	JudgementLine  store.Handle
}

// NewKeymode allocates every per-column slice with n zero handles.
func NewKeymode(n int) Keymode {
	return Keymode{
		KeyCount: n,
		Layout: Layout{
			ColumnWidths:  make([]float64, n),
			ColumnSpacing: make([]float64, n),
		},
		ReceptorUp:   make([]store.Handle, n),
		ReceptorDown: make([]store.Handle, n),
		NormalNote:   make([]store.Handle, n),
		LongNoteHead: make([]store.Handle, n),
		LongNoteBody: make([]store.Handle, n),
		LongNoteTail: make([]store.Handle, n),
	}
}

// Columns returns the per-column slices keyed by their slot name.
func (k *Keymode) Columns() map[string][]store.Handle {
	return map[string][]store.Handle{
		"receptor-up":    k.ReceptorUp,
		"receptor-down":  k.ReceptorDown,
		"normal-note":    k.NormalNote,
		"long-note-head": k.LongNoteHead,
		"long-note-body": k.LongNoteBody,
		"long-note-tail": k.LongNoteTail,
	}
}

// Validate checks that every per-column slice has KeyCount entries.
func (k *Keymode) Validate() error {
	if k.KeyCount <= 0 {
		return skinerr.Wrap(skinerr.ErrValidation, "keymode", "validate", fmt.Sprintf("key count %d", k.KeyCount), nil)
	}
	for name, col := range k.Columns() {
		if len(col) != k.KeyCount {
			return skinerr.Wrap(skinerr.ErrValidation, "keymode", "validate",
				fmt.Sprintf("%dk %s has %d columns", k.KeyCount, name, len(col)), nil)
		}
	}
	if len(k.Layout.ColumnWidths) != k.KeyCount {
		return skinerr.Wrap(skinerr.ErrValidation, "keymode", "validate",
			fmt.Sprintf("%dk column widths has %d entries", k.KeyCount, len(k.Layout.ColumnWidths)), nil)
	}
	return nil
}

// Handles returns every valid handle the keymode references.
func (k *Keymode) Handles() []store.Handle {
	var out []store.Handle
	for _, col := range [][]store.Handle{k.ReceptorUp, k.ReceptorDown, k.NormalNote, k.LongNoteHead, k.LongNoteBody, k.LongNoteTail} {
		for _, h := range col {
			if h.Valid() {
				out = append(out, h)
			}
		}
	}
	for _, h := range []store.Handle{k.HitLighting.Normal, k.HitLighting.Hold, k.ColumnLighting, k.JudgementLine} {
		if h.Valid() {
			out = append(out, h)
		}
	}
	return out
}
