package generic

import "skinbridge/internal/alignment"

// HUDElement places one HUD component. Position X and Y are fractions of the
// playfield and Z is the scale.
type HUDElement struct {
	Position  alignment.Vec3
	Alignment alignment.Alignment
}

type HUD struct {
	Combo     HUDElement
	Rating    HUDElement
	Accuracy  HUDElement
	Score     HUDElement
	Judgement HUDElement
}

func defaultElement() HUDElement {
	return HUDElement{Position: alignment.Vec3{Z: 1}, Alignment: alignment.Default()}
}

// DefaultHUD centres every element at scale 1.
func DefaultHUD() HUD {
	return HUD{
		Combo:     defaultElement(),
		Rating:    defaultElement(),
		Accuracy:  defaultElement(),
		Score:     defaultElement(),
		Judgement: defaultElement(),
	}
}
