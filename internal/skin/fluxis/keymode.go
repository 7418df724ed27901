package fluxis

// Slot addresses one per-column image list of a keymode inside overrides.
type Slot struct {
	Element string
	Type    string
	Suffix  string
}

var (
	SlotReceptor     = Slot{Element: "Receptor", Suffix: "-up"}
	SlotReceptorDown = Slot{Element: "Receptor", Suffix: "-down"}
	SlotNote         = Slot{Element: "HitObjects", Type: "Note"}
	SlotLongNoteHead = Slot{Element: "HitObjects", Type: "LongNoteStart"}
	SlotLongNoteBody = Slot{Element: "HitObjects", Type: "LongNoteBody"}
	SlotLongNoteTail = Slot{Element: "HitObjects", Type: "LongNoteEnd"}
	SlotTick         = Slot{Element: "HitObjects", Type: "Tick"}
	SlotTickSmall    = Slot{Element: "HitObjects", Type: "Tick", Suffix: "-small"}
)

// Slots lists every keymode image slot in serialization order.
var Slots = []Slot{
	SlotReceptor, SlotReceptorDown, SlotNote,
	SlotLongNoteHead, SlotLongNoteBody, SlotLongNoteTail,
	SlotTick, SlotTickSmall,
}

// Keymode is one "<N>k" object plus the images overrides assign to it.
type Keymode struct {
	Keys           int
	ColumnWidth    int
	HitPosition    int
	TintNotes      bool
	TintLNs        bool
	TintReceptors  bool
	Colors         []string
	ReceptorsFirst bool
	ReceptorOffset int

	ReceptorImages     []string
	ReceptorImagesDown []string
	NoteImages         []string
	LongNoteHeadImages []string
	LongNoteBodyImages []string
	LongNoteTailImages []string
	TickImages         []string
	TickImagesSmall    []string
}

// NewKeymode returns the defaults for n keys with empty image lists.
func NewKeymode(n int) Keymode {
	return Keymode{
		Keys:               n,
		ColumnWidth:        150,
		HitPosition:        35,
		Colors:             []string{},
		ReceptorsFirst:     true,
		ReceptorImages:     make([]string, n),
		ReceptorImagesDown: make([]string, n),
		NoteImages:         make([]string, n),
		LongNoteHeadImages: make([]string, n),
		LongNoteBodyImages: make([]string, n),
		LongNoteTailImages: make([]string, n),
		TickImages:         make([]string, n),
		TickImagesSmall:    make([]string, n),
	}
}

// Images returns the image list addressed by slot.
func (k *Keymode) Images(slot Slot) []string {
	if p := k.images(slot); p != nil {
		return *p
	}
	return nil
}

func (k *Keymode) images(slot Slot) *[]string {
	switch slot {
	case SlotReceptor:
		return &k.ReceptorImages
	case SlotReceptorDown:
		return &k.ReceptorImagesDown
	case SlotNote:
		return &k.NoteImages
	case SlotLongNoteHead:
		return &k.LongNoteHeadImages
	case SlotLongNoteBody:
		return &k.LongNoteBodyImages
	case SlotLongNoteTail:
		return &k.LongNoteTailImages
	case SlotTick:
		return &k.TickImages
	case SlotTickSmall:
		return &k.TickImagesSmall
	}
	return nil
}

// SetImage stores value for column col of slot. Out of range columns and
// unknown slots are ignored.
func (k *Keymode) SetImage(slot Slot, col int, value string) {
	p := k.images(slot)
	if p == nil || col < 0 || col >= len(*p) {
		return
	}
	(*p)[col] = value
}
