package convert

import (
	"image"
	"log/slog"
	"math"

	"skinbridge/internal/alignment"
	"skinbridge/internal/imageproc"
	"skinbridge/internal/logging"
	"skinbridge/internal/skin/generic"
	"skinbridge/internal/skin/osu"
	"skinbridge/internal/skinerr"
	"skinbridge/internal/store"
)

var osuPlayfield = alignment.Vec2{X: imageproc.OsuWidth, Y: imageproc.OsuHeight}

// Sizes used to place the osu score and combo counters.
var (
	osuScoreSize = alignment.Vec2{X: 100, Y: 50}
	osuComboSize = alignment.Vec2{X: 150, Y: 100}
)

// OsuToGeneric converts an osu skin into the intermediate form.
func OsuToGeneric(src *osu.Skin, opts Options) (*generic.Skin, error) {
	if src == nil || src.Ini == nil {
		return nil, skinerr.Wrap(skinerr.ErrValidation, "osu", "to generic", "nil skin", nil)
	}
	opts = opts.withDefaults()
	logger := logging.NewComponentLogger(opts.Logger, "osu-import")

	out := generic.New()
	out.Textures, out.Samples = src.Textures, src.Samples
	out.Textures.ResetProcessed()
	r := newResolver(out.Textures, logger)
	proc := imageproc.NewProcessor(out.Textures)

	g := src.Ini.General
	out.Metadata = generic.Metadata{
		Name:         g.Name,
		Creator:      g.Author,
		Version:      g.Version,
		CenterCursor: g.CursorCentre,
	}

	for i := range src.Ini.Keymodes {
		okm := &src.Ini.Keymodes[i]
		if _, dup := out.Keymode(okm.Keys); dup {
			logging.WarnWithContext(logger, "duplicate [Mania] section ignored", "duplicate_keymode",
				logging.Keymode(okm.Keys))
			continue
		}
		out.Keymodes = append(out.Keymodes, osuKeymodeToGeneric(okm, r, proc, opts, logger))
	}
	out.SortKeymodes()

	primary := osuPrimaryKeymode(src.Ini)
	out.Gameplay.HUD = osuHUD(primary)
	out.Gameplay.HealthBar = generic.HealthBar{
		Fill:       r.fallback(osu.ScorebarColour),
		Background: r.fallback(osu.ScorebarBG),
	}
	out.Gameplay.Stage = generic.Stage{
		BorderLeft:  r.resolve(primary.StageLeft, osu.StageLeft),
		BorderRight: r.resolve(primary.StageRight, osu.StageRight),
		Hitline:     r.resolve(primary.StageHint, osu.StageHint),
	}
	out.Gameplay.Judgements = generic.Judgements{
		Flawless: r.resolve(primary.Hit300g, osu.Hit300g),
		Perfect:  r.resolve(primary.Hit300, osu.Hit300),
		Great:    r.resolve(primary.Hit200, osu.Hit200),
		Alright:  r.resolve(primary.Hit100, osu.Hit100),
		Okay:     r.resolve(primary.Hit50, osu.Hit50),
		Miss:     r.resolve(primary.Hit0, osu.Hit0),
	}

	for _, s := range osuSounds {
		if key, ok := lookupSample(out.Samples, s.name); ok {
			*out.Sounds.Slot(s.slot) = key
		}
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// osuPrimaryKeymode returns the 4 key section, else the first one, else the
// defaults of a 4 key stage.
func osuPrimaryKeymode(ini *osu.SkinIni) *osu.Keymode {
	if km, ok := ini.Keymode(4); ok {
		return km
	}
	if len(ini.Keymodes) > 0 {
		return &ini.Keymodes[0]
	}
	km := osu.DefaultKeymode(4)
	return &km
}

func osuHUD(km *osu.Keymode) generic.HUD {
	var combo, score float64
	if km.ComboPosition != nil {
		combo = float64(*km.ComboPosition)
	}
	if km.ScorePosition != nil {
		score = float64(*km.ScorePosition)
	}
	return generic.HUD{
		Combo: generic.HUDElement{
			Position:  alignment.Vec3{X: 0.5, Y: combo / imageproc.OsuHeight, Z: 1},
			Alignment: alignment.New(alignment.BottomLeft, alignment.BottomLeft),
		},
		Rating: generic.HUDElement{
			Position:  alignment.Vec3{X: 0, Y: -30.0 / imageproc.OsuHeight, Z: 1},
			Alignment: alignment.Default(),
		},
		Accuracy: generic.HUDElement{
			Position:  alignment.Vec3{X: -50.0 / imageproc.OsuWidth, Y: 50.0 / imageproc.OsuWidth, Z: 1},
			Alignment: alignment.New(alignment.TopRight, alignment.Centre),
		},
		Score: generic.HUDElement{
			Position:  alignment.Vec3{X: -50.0 / imageproc.OsuWidth, Y: 0, Z: 1},
			Alignment: alignment.New(alignment.TopRight, alignment.TopRight),
		},
		Judgement: generic.HUDElement{
			Position:  alignment.Vec3{X: 0.5, Y: score / imageproc.OsuHeight, Z: 1},
			Alignment: alignment.Default(),
		},
	}
}

func osuKeymodeToGeneric(okm *osu.Keymode, r *resolver, proc *imageproc.Processor, opts Options, logger *slog.Logger) generic.Keymode {
	n := okm.Keys
	km := generic.NewKeymode(n)
	avgW := int(mean(okm.ColumnWidth))

	maxOffset := 0
	measureAndScale := func(h store.Handle) {
		off, err := proc.Once(h, func(img *image.NRGBA) (*image.NRGBA, int, error) {
			off := imageproc.DistFromBottom(img, opts.OffsetTolerance)
			return opts.Scaler.FromOsu(img, avgW), off, nil
		})
		if err != nil {
			logger.Warn("receptor transform failed", logging.Keymode(n), logging.Asset(r.key(h)), logging.Error(err))
		}
		maxOffset = max(maxOffset, off)
	}
	flip := imageproc.Transform(imageproc.FlipVertical)

	for col := 0; col < n; col++ {
		fb := okm.ColumnFallback(col)

		km.ReceptorUp[col] = r.resolve(at(okm.ReceptorImages, col), fb.Receptor)
		measureAndScale(km.ReceptorUp[col])
		km.ReceptorDown[col] = r.resolve(at(okm.ReceptorImagesDown, col), fb.ReceptorDown)
		measureAndScale(km.ReceptorDown[col])

		km.NormalNote[col] = r.resolve(at(okm.NoteImages, col), fb.Note)
		km.LongNoteHead[col] = r.resolve(at(okm.NoteImagesHead, col), fb.NoteHead)
		km.LongNoteBody[col] = r.resolve(at(okm.NoteImagesBody, col), fb.NoteBody)
		km.LongNoteTail[col] = r.resolve(at(okm.NoteImagesTail, col), fb.NoteTail)
		if _, err := proc.Once(km.LongNoteTail[col], flip); err != nil {
			logger.Warn("tail flip failed", logging.Keymode(n), logging.Asset(r.key(km.LongNoteTail[col])), logging.Error(err))
		}
	}

	km.ColumnLighting = r.resolve(okm.StageLight, osu.StageLight)
	km.HitLighting = generic.HitLighting{
		Normal: r.resolve(okm.LightingN, osu.LightingN),
		Hold:   r.resolve(okm.LightingL, osu.LightingL),
	}
	km.JudgementLine = r.resolve(okm.StageHint, osu.StageHint)

	widths := fit(okm.ColumnWidth, n)
	for i := range widths {
		widths[i] /= imageproc.OsuWidth
	}
	km.Layout = generic.Layout{
		ReceptorAboveNotes: !okm.KeysUnderNotes,
		XOffset:            okm.ColumnStart / imageproc.OsuWidth,
		HitPosition:        float64(okm.HitPosition) / imageproc.OsuHeight,
		ReceptorOffset:     maxOffset,
		ColumnWidths:       widths,
		ColumnSpacing:      fit(okm.ColumnSpacing, n),
		JudgementLine:      okm.JudgementLine,
	}
	return km
}

// GenericToOsu converts an intermediate skin into an osu skin.
func GenericToOsu(src *generic.Skin, opts Options) (*osu.Skin, error) {
	if src == nil {
		return nil, skinerr.Wrap(skinerr.ErrValidation, "osu", "from generic", "nil skin", nil)
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	logger := logging.NewComponentLogger(opts.Logger, "osu-export")

	out := &osu.Skin{Ini: osu.NewSkinIni(), Textures: src.Textures, Samples: src.Samples}
	out.Textures.ResetProcessed()
	r := newResolver(out.Textures, logger)
	proc := imageproc.NewProcessor(out.Textures)

	g := osu.DefaultGeneral()
	g.Name = src.Metadata.Name
	g.Author = src.Metadata.Creator
	g.Version = src.Metadata.Version
	g.CursorCentre = src.Metadata.CenterCursor
	out.Ini.General = g

	hud := src.Gameplay.HUD
	scorePos := int(alignment.CalculatePos(osuPlayfield, osuScoreSize, hud.Judgement.Alignment).Y)
	comboPos := int(alignment.CalculatePos(osuPlayfield, osuComboSize, hud.Combo.Alignment).Y)

	for i := range src.Keymodes {
		km := &src.Keymodes[i]
		okm := genericKeymodeToOsu(km, r, proc, opts, logger)

		stage := src.Gameplay.Stage
		okm.StageLeft = r.keyNoBlank(stage.BorderLeft)
		okm.StageRight = r.keyNoBlank(stage.BorderRight)
		j := src.Gameplay.Judgements
		okm.Hit300g = r.keyNoBlank(j.Flawless)
		okm.Hit300 = r.keyNoBlank(j.Perfect)
		okm.Hit200 = r.keyNoBlank(j.Great)
		okm.Hit100 = r.keyNoBlank(j.Alright)
		okm.Hit50 = r.keyNoBlank(j.Okay)
		okm.Hit0 = r.keyNoBlank(j.Miss)

		okm.ScorePosition = &scorePos
		okm.ComboPosition = &comboPos
		out.Ini.Keymodes = append(out.Ini.Keymodes, okm)
	}

	r.copyAs(src.Gameplay.HealthBar.Background, osu.ScorebarBG)
	r.copyAs(src.Gameplay.HealthBar.Fill, osu.ScorebarColour)
	for _, key := range []string{osu.Star, osu.Star2} {
		if !out.Textures.Contains(key) {
			if _, err := out.Textures.CopyHandle(r.blank, key); err != nil {
				return nil, err
			}
		}
	}

	for _, s := range osuSounds {
		copySample(out.Samples, *src.Sounds.Slot(s.slot), s.name, logger)
	}
	return out, nil
}

func genericKeymodeToOsu(km *generic.Keymode, r *resolver, proc *imageproc.Processor, opts Options, logger *slog.Logger) osu.Keymode {
	n := km.KeyCount
	okm := osu.DefaultKeymode(n)

	colW := int(km.Layout.AverageColumnWidth() * imageproc.OsuWidth)
	offset := min(max(km.Layout.ReceptorOffset, 0), imageproc.OsuWidth)
	toOsu := imageproc.Transform(func(img *image.NRGBA) *image.NRGBA {
		return opts.Scaler.ToOsu(img, colW, offset)
	})
	flip := imageproc.Transform(imageproc.FlipVertical)
	apply := func(h store.Handle, fn imageproc.TransformFunc, what string) {
		if _, err := proc.Once(h, fn); err != nil {
			logger.Warn(what+" transform failed", logging.Keymode(n), logging.Asset(r.key(h)), logging.Error(err))
		}
	}

	for col := 0; col < n; col++ {
		apply(km.ReceptorUp[col], toOsu, "receptor")
		apply(km.ReceptorDown[col], toOsu, "receptor")
		apply(km.LongNoteTail[col], flip, "tail")

		okm.ReceptorImages[col] = r.key(km.ReceptorUp[col])
		okm.ReceptorImagesDown[col] = r.key(km.ReceptorDown[col])
		okm.NoteImages[col] = r.key(km.NormalNote[col])
		okm.NoteImagesHead[col] = r.key(km.LongNoteHead[col])
		okm.NoteImagesBody[col] = r.key(km.LongNoteBody[col])
		okm.NoteImagesTail[col] = r.key(km.LongNoteTail[col])
	}

	okm.StageLight = r.keyNoBlank(km.ColumnLighting)
	okm.LightingN = r.keyNoBlank(km.HitLighting.Normal)
	okm.LightingL = r.keyNoBlank(km.HitLighting.Hold)
	okm.StageHint = r.keyNoBlank(km.JudgementLine)

	l := km.Layout
	okm.KeysUnderNotes = !l.ReceptorAboveNotes
	okm.HitPosition = int(math.Abs(1-l.HitPosition) * imageproc.OsuHeight)
	okm.ColumnStart = l.XOffset * imageproc.OsuWidth
	okm.ColumnWidth = fit(l.ColumnWidths, n)
	for i := range okm.ColumnWidth {
		okm.ColumnWidth[i] = math.Round(okm.ColumnWidth[i] * imageproc.OsuWidth)
	}
	okm.ColumnSpacing = fit(l.ColumnSpacing, n)
	okm.ColumnLineWidth = make([]float64, n+1)
	okm.JudgementLine = false
	return okm
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
