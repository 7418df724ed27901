package generic

import (
	"skinbridge/internal/store"
	"skinbridge/internal/texture"
	"skinbridge/internal/textutil"
)

// Merge folds other into s. Strings and handles from other win when set,
// layouts win when non-zero, keymodes are matched by key count, and the HUD
// and CenterCursor are taken from other unconditionally. A slot holding the
// blank placeholder counts as unset. Assets referenced by other are copied
// into s's stores; a key s already holds gets a fresh "<stem>_<n>" key so
// existing slots keep their payload.
func (s *Skin) Merge(other *Skin) error {
	if other == nil {
		return nil
	}
	m := newRemapper(s.Textures, other.Textures)

	s.Metadata.Merge(other.Metadata)
	if err := s.mergeSounds(other); err != nil {
		return err
	}

	g, err := other.Gameplay.remap(m)
	if err != nil {
		return err
	}
	unset(g.handleRefs(), m.blank)
	s.Gameplay.Merge(g)

	for i := range other.Keymodes {
		km, err := other.Keymodes[i].remap(m)
		if err != nil {
			return err
		}
		if mine, ok := s.Keymode(km.KeyCount); ok {
			unset(km.handleRefs(), m.blank)
			mine.Merge(km)
			continue
		}
		s.Keymodes = append(s.Keymodes, km)
	}
	s.SortKeymodes()
	return nil
}

func (m *Metadata) Merge(other Metadata) {
	setString(&m.Name, other.Name)
	setString(&m.Creator, other.Creator)
	setString(&m.Version, other.Version)
	m.CenterCursor = other.CenterCursor
}

func (g *Gameplay) Merge(other Gameplay) {
	setHandle(&g.HealthBar.Fill, other.HealthBar.Fill)
	setHandle(&g.HealthBar.Background, other.HealthBar.Background)
	setHandle(&g.Stage.BorderLeft, other.Stage.BorderLeft)
	setHandle(&g.Stage.BorderRight, other.Stage.BorderRight)
	setHandle(&g.Stage.Hitline, other.Stage.Hitline)
	setHandle(&g.Stage.Background, other.Stage.Background)
	mine, theirs := g.Judgements.Grades(), other.Judgements.Grades()
	for i := range mine {
		setHandle(mine[i], *theirs[i])
	}
	g.HUD = other.HUD
}

// Merge overlays other onto k. Both must have the same key count.
func (k *Keymode) Merge(other Keymode) {
	if !other.Layout.IsZero() {
		k.Layout = other.Layout
	}
	mergeColumn(k.ReceptorUp, other.ReceptorUp)
	mergeColumn(k.ReceptorDown, other.ReceptorDown)
	mergeColumn(k.NormalNote, other.NormalNote)
	mergeColumn(k.LongNoteHead, other.LongNoteHead)
	mergeColumn(k.LongNoteBody, other.LongNoteBody)
	mergeColumn(k.LongNoteTail, other.LongNoteTail)
	setHandle(&k.HitLighting.Normal, other.HitLighting.Normal)
	setHandle(&k.HitLighting.Hold, other.HitLighting.Hold)
	setHandle(&k.ColumnLighting, other.ColumnLighting)
	setHandle(&k.JudgementLine, other.JudgementLine)
}

func (s *Skin) mergeSounds(other *Skin) error {
	for _, slot := range SoundSlots {
		key := *other.Sounds.Slot(slot)
		if key == "" {
			continue
		}
		if other.Samples != s.Samples {
			if h, ok := other.Samples.Lookup(key); ok {
				asset, err := other.Samples.Asset(h)
				if err != nil {
					return err
				}
				_, key = s.Samples.MakeUnique(key, asset)
			}
		}
		*s.Sounds.Slot(slot) = key
	}
	return nil
}

func mergeColumn(dst, src []store.Handle) {
	for i := range dst {
		if i < len(src) {
			setHandle(&dst[i], src[i])
		}
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setHandle(dst *store.Handle, h store.Handle) {
	if h.Valid() {
		*dst = h
	}
}

// unset clears every handle in refs equal to blank.
func unset(refs []*store.Handle, blank store.Handle) {
	for _, h := range refs {
		if *h == blank {
			*h = 0
		}
	}
}

// remapper translates handles of one texture store into another, copying
// each asset once. The blank placeholder maps onto dst's own blank.
type remapper struct {
	dst, src *texture.Store
	blank    store.Handle
	seen     map[store.Handle]store.Handle
}

func newRemapper(dst, src *texture.Store) *remapper {
	return &remapper{
		dst:   dst,
		src:   src,
		blank: texture.EnsureBlank(dst),
		seen:  make(map[store.Handle]store.Handle),
	}
}

func (m *remapper) handle(h store.Handle) (store.Handle, error) {
	if !h.Valid() || m.dst == m.src {
		return h, nil
	}
	if out, ok := m.seen[h]; ok {
		return out, nil
	}
	key, ok := m.src.Key(h)
	if !ok {
		return 0, nil
	}
	if textutil.KeyEqual(key, texture.BlankKey) {
		m.seen[h] = m.blank
		return m.blank, nil
	}
	asset, err := m.src.Asset(h)
	if err != nil {
		return 0, err
	}
	out, _ := m.dst.MakeUnique(key, asset)
	m.seen[h] = out
	return out, nil
}

func (m *remapper) all(hs ...*store.Handle) error {
	for _, h := range hs {
		out, err := m.handle(*h)
		if err != nil {
			return err
		}
		*h = out
	}
	return nil
}

func (g *Gameplay) handleRefs() []*store.Handle {
	refs := []*store.Handle{
		&g.HealthBar.Fill, &g.HealthBar.Background,
		&g.Stage.BorderLeft, &g.Stage.BorderRight, &g.Stage.Hitline, &g.Stage.Background,
	}
	return append(refs, g.Judgements.Grades()...)
}

func (g Gameplay) remap(m *remapper) (Gameplay, error) {
	err := m.all(g.handleRefs()...)
	return g, err
}

func (k *Keymode) handleRefs() []*store.Handle {
	var refs []*store.Handle
	for _, col := range [][]store.Handle{k.ReceptorUp, k.ReceptorDown, k.NormalNote, k.LongNoteHead, k.LongNoteBody, k.LongNoteTail} {
		for i := range col {
			refs = append(refs, &col[i])
		}
	}
	return append(refs, &k.HitLighting.Normal, &k.HitLighting.Hold, &k.ColumnLighting, &k.JudgementLine)
}

func (k Keymode) remap(m *remapper) (Keymode, error) {
	out := k
	out.Layout.ColumnWidths = append([]float64(nil), k.Layout.ColumnWidths...)
	out.Layout.ColumnSpacing = append([]float64(nil), k.Layout.ColumnSpacing...)
	cols := []*[]store.Handle{
		&out.ReceptorUp, &out.ReceptorDown, &out.NormalNote,
		&out.LongNoteHead, &out.LongNoteBody, &out.LongNoteTail,
	}
	for _, col := range cols {
		mapped := make([]store.Handle, len(*col))
		for i, h := range *col {
			v, err := m.handle(h)
			if err != nil {
				return Keymode{}, err
			}
			mapped[i] = v
		}
		*col = mapped
	}
	err := m.all(&out.HitLighting.Normal, &out.HitLighting.Hold, &out.ColumnLighting, &out.JudgementLine)
	return out, err
}
