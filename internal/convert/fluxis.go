package convert

import (
	"image"
	"log/slog"

	"skinbridge/internal/alignment"
	"skinbridge/internal/imageproc"
	"skinbridge/internal/logging"
	"skinbridge/internal/skin/fluxis"
	"skinbridge/internal/skin/generic"
	"skinbridge/internal/skinerr"
	"skinbridge/internal/store"
)

var fluxisPlayfield = alignment.Vec2{X: imageproc.FluXisWidth, Y: imageproc.FluXisHeight}

// fluXis has no score component; its score counter sits at a fixed spot.
var fluxisScore = generic.HUDElement{
	Position:  alignment.Vec3{X: -187.5 / imageproc.FluXisWidth, Y: 0, Z: 1},
	Alignment: alignment.New(alignment.TopRight, alignment.TopRight),
}

// FluXisToGeneric converts a fluXis skin into the intermediate form.
func FluXisToGeneric(src *fluxis.Skin, opts Options) (*generic.Skin, error) {
	if src == nil || src.JSON == nil {
		return nil, skinerr.Wrap(skinerr.ErrValidation, "fluxis", "to generic", "nil skin", nil)
	}
	opts = opts.withDefaults()
	logger := logging.NewComponentLogger(opts.Logger, "fluxis-import")

	layout := src.Layout
	if layout == nil {
		layout = fluxis.DefaultLayout()
	}

	out := generic.New()
	out.Textures, out.Samples = src.Textures, src.Samples
	out.Textures.ResetProcessed()
	r := newResolver(out.Textures, logger)

	doc := src.JSON
	out.Metadata = generic.Metadata{
		Name:         doc.Info.Name,
		Creator:      doc.Info.Creator,
		Version:      generic.DefaultMetadata().Version,
		CenterCursor: false,
	}

	offsets := make(map[store.Handle]int)
	for i := range doc.Keymodes {
		fkm := &doc.Keymodes[i]
		if !hasImages(fkm) {
			continue
		}
		km := fluxisKeymodeToGeneric(fkm, r, offsets, opts, logger)
		km.ColumnLighting = r.resolve(doc.Overrides.Stage.ColumnLighting, fluxis.ColumnLighting)
		km.JudgementLine = r.resolve(doc.Overrides.Stage.Hitline, fluxis.StageHitline)
		out.Keymodes = append(out.Keymodes, km)
	}
	out.SortKeymodes()

	stage := doc.Overrides.Stage
	out.Gameplay.HUD = fluxisHUD(layout)
	out.Gameplay.HealthBar = generic.HealthBar{
		Fill:       r.resolve(stage.HealthForeground, fluxis.HealthForeground),
		Background: r.resolve(stage.HealthBackground, fluxis.HealthBackground),
	}
	out.Gameplay.Stage = generic.Stage{
		BorderLeft:  r.resolve(stage.BorderLeft, fluxis.StageBorderLeft),
		BorderRight: r.resolve(stage.BorderRight, fluxis.StageBorderRight),
		Hitline:     r.resolve(stage.Hitline, fluxis.StageHitline),
		Background:  r.resolve(stage.Background, fluxis.StageBackground),
	}
	out.Gameplay.Judgements = generic.Judgements{
		Flawless: r.fallback(fluxis.JudgementFlawless),
		Perfect:  r.fallback(fluxis.JudgementPerfect),
		Great:    r.fallback(fluxis.JudgementGreat),
		Alright:  r.fallback(fluxis.JudgementAlright),
		Okay:     r.fallback(fluxis.JudgementOkay),
		Miss:     r.fallback(fluxis.JudgementMiss),
	}

	for _, s := range fluxisSounds {
		if key, ok := lookupSample(out.Samples, s.name); ok {
			*out.Sounds.Slot(s.slot) = key
		}
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func hasImages(km *fluxis.Keymode) bool {
	for _, slot := range fluxis.Slots {
		for _, img := range km.Images(slot) {
			if img != "" {
				return true
			}
		}
	}
	return false
}

func allEmpty(v []string) bool {
	for _, s := range v {
		if s != "" {
			return false
		}
	}
	return true
}

func fluxisKeymodeToGeneric(fkm *fluxis.Keymode, r *resolver, offsets map[store.Handle]int, opts Options, logger *slog.Logger) generic.Keymode {
	n := fkm.Keys
	km := generic.NewKeymode(n)

	measure := func(h store.Handle) int {
		if !h.Valid() || h == r.blank {
			return 0
		}
		if off, ok := offsets[h]; ok {
			return off
		}
		var off int
		err := r.textures.View(h, func(img *image.NRGBA) error {
			off = imageproc.DistFromBottom(img, opts.OffsetTolerance)
			return nil
		})
		if err != nil {
			logger.Warn("receptor measure failed", logging.Keymode(n), logging.Asset(r.key(h)), logging.Error(err))
		}
		offsets[h] = off
		return off
	}

	heads := fkm.LongNoteHeadImages
	if allEmpty(heads) {
		heads = fkm.NoteImages
	}

	add := 0
	for col := 0; col < n; col++ {
		km.ReceptorUp[col] = r.resolve(at(fkm.ReceptorImages, col))
		km.ReceptorDown[col] = r.resolve(at(fkm.ReceptorImagesDown, col))
		add = max(add, measure(km.ReceptorUp[col]), measure(km.ReceptorDown[col]))

		km.NormalNote[col] = r.resolve(at(fkm.NoteImages, col))
		km.LongNoteHead[col] = r.resolve(at(heads, col))
		km.LongNoteBody[col] = r.resolve(at(fkm.LongNoteBodyImages, col))
		km.LongNoteTail[col] = r.resolve(at(fkm.LongNoteTailImages, col))
	}

	km.HitLighting = generic.HitLighting{Normal: r.blank, Hold: r.blank}

	widths := make([]float64, n)
	for i := range widths {
		widths[i] = float64(fkm.ColumnWidth) / imageproc.FluXisWidth
	}
	km.Layout = generic.Layout{
		ReceptorAboveNotes: !fkm.ReceptorsFirst,
		XOffset:            0.5,
		HitPosition:        float64(fkm.HitPosition+add) / imageproc.FluXisHeight,
		ReceptorOffset:     fkm.ReceptorOffset + add,
		ColumnWidths:       widths,
		ColumnSpacing:      make([]float64, n),
	}
	return km
}

func fluxisHUD(layout *fluxis.Layout) generic.HUD {
	element := func(name string) generic.HUDElement {
		c, ok := layout.Component(name)
		if !ok {
			return generic.HUDElement{Position: alignment.Vec3{Z: 1}, Alignment: alignment.Default()}
		}
		return generic.HUDElement{
			Position: alignment.Vec3{
				X: c.Position.X / imageproc.FluXisWidth,
				Y: c.Position.Y / imageproc.FluXisHeight,
				Z: c.Scale,
			},
			Alignment: alignment.New(
				alignment.PointFromByteOr(c.Anchor, alignment.Centre),
				alignment.PointFromByteOr(c.Origin, alignment.Centre),
			),
		}
	}
	return generic.HUD{
		Combo:     element(fluxis.ComponentCombo),
		Rating:    element(fluxis.ComponentPerformanceRating),
		Accuracy:  element(fluxis.ComponentAccuracy),
		Score:     fluxisScore,
		Judgement: element(fluxis.ComponentJudgement),
	}
}

// GenericToFluXis converts an intermediate skin into a fluXis skin.
func GenericToFluXis(src *generic.Skin, opts Options) (*fluxis.Skin, error) {
	if src == nil {
		return nil, skinerr.Wrap(skinerr.ErrValidation, "fluxis", "from generic", "nil skin", nil)
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	logger := logging.NewComponentLogger(opts.Logger, "fluxis-export")

	doc := fluxis.NewSkinJSON()
	doc.Info.Name = src.Metadata.Name
	doc.Info.Creator = src.Metadata.Creator
	out := &fluxis.Skin{
		JSON:     doc,
		Layout:   fluxis.NewLayout(src.Metadata.Name, src.Metadata.Creator),
		Textures: src.Textures,
		Samples:  src.Samples,
	}
	out.Textures.ResetProcessed()
	r := newResolver(out.Textures, logger)

	for i := range src.Keymodes {
		genericKeymodeToFluXis(&src.Keymodes[i], doc.EnsureKeymode(src.Keymodes[i].KeyCount), r)
	}

	g := src.Gameplay
	stage := &doc.Overrides.Stage
	stage.HealthForeground = r.keyNoBlank(g.HealthBar.Fill)
	stage.HealthBackground = r.keyNoBlank(g.HealthBar.Background)
	stage.BorderLeft = r.keyNoBlank(g.Stage.BorderLeft)
	stage.BorderRight = r.keyNoBlank(g.Stage.BorderRight)
	stage.Hitline = r.keyNoBlank(g.Stage.Hitline)
	stage.Background = r.keyNoBlank(g.Stage.Background)
	if len(src.Keymodes) > 0 {
		stage.ColumnLighting = r.keyNoBlank(src.Keymodes[0].ColumnLighting)
	}

	j := g.Judgements
	r.copyAs(j.Flawless, fluxis.JudgementFlawless)
	r.copyAs(j.Perfect, fluxis.JudgementPerfect)
	r.copyAs(j.Great, fluxis.JudgementGreat)
	r.copyAs(j.Alright, fluxis.JudgementAlright)
	r.copyAs(j.Okay, fluxis.JudgementOkay)
	r.copyAs(j.Miss, fluxis.JudgementMiss)

	for _, s := range fluxisSounds {
		copySample(out.Samples, *src.Sounds.Slot(s.slot), s.name, logger)
	}

	doc.SyncOverrides()
	applyHUD(out.Layout, g.HUD)
	return out, nil
}

func genericKeymodeToFluXis(km *generic.Keymode, fkm *fluxis.Keymode, r *resolver) {
	columns := []struct {
		slot    fluxis.Slot
		handles []store.Handle
	}{
		{fluxis.SlotReceptor, km.ReceptorUp},
		{fluxis.SlotReceptorDown, km.ReceptorDown},
		{fluxis.SlotNote, km.NormalNote},
		{fluxis.SlotLongNoteHead, km.LongNoteHead},
		{fluxis.SlotLongNoteBody, km.LongNoteBody},
		{fluxis.SlotLongNoteTail, km.LongNoteTail},
	}
	for _, c := range columns {
		for col, h := range c.handles {
			fkm.SetImage(c.slot, col, r.keyNoBlank(h))
		}
	}

	l := km.Layout
	fkm.ReceptorsFirst = !l.ReceptorAboveNotes
	fkm.HitPosition = min(max(int(l.HitPosition*imageproc.FluXisHeight), 0), imageproc.FluXisHeight)
	fkm.ReceptorOffset = l.ReceptorOffset
	if len(l.ColumnWidths) > 0 {
		fkm.ColumnWidth = int(l.ColumnWidths[0] * imageproc.FluXisWidth)
	}
}

// applyHUD writes the HUD elements into layout, keeping each component's
// default settings.
func applyHUD(layout *fluxis.Layout, hud generic.HUD) {
	set := func(name string, e generic.HUDElement) {
		c, _ := fluxis.DefaultComponent(name)
		pos := e.Position.XY().Mul(fluxisPlayfield)
		c.Position = fluxis.Position{X: pos.X, Y: pos.Y}
		c.Scale = e.Position.Z
		c.Anchor = e.Alignment.Anchor.Byte()
		c.Origin = e.Alignment.Origin.Byte()
		layout.Set(name, c)
	}
	set(fluxis.ComponentCombo, hud.Combo)
	set(fluxis.ComponentPerformanceRating, hud.Rating)
	set(fluxis.ComponentKeysPerSecond, hud.Rating)
	set(fluxis.ComponentAccuracy, hud.Accuracy)
	set(fluxis.ComponentJudgement, hud.Judgement)
}
