package smu

// Codename identifies the processor design generation as reported by
// the ryzen_smu codename attribute. The numbering is the driver's, not
// AMD's.
type Codename int

const (
	Unsupported Codename = iota
	Colfax
	Renoir
	Picasso
	Matisse
	Threadripper
	CastlePeak
	Raven
	Raven2
	SummitRidge
	PinnacleRidge
	Rembrandt
	Vermeer
	VanGogh
	Cezanne
	Milan
	Dali
	Lucienne
	Naples
	Chagall
	Raphael
	Phoenix
	HawkPoint
	GraniteRidge
	StrixPoint
	StormPeak
)

var codenames = map[Codename]string{
	Unsupported:   "Unsupported",
	Colfax:        "Colfax",
	Renoir:        "Renoir",
	Picasso:       "Picasso",
	Matisse:       "Matisse",
	Threadripper:  "Threadripper",
	CastlePeak:    "Castle Peak",
	Raven:         "Raven",
	Raven2:        "Raven 2",
	SummitRidge:   "Summit Ridge",
	PinnacleRidge: "Pinnacle Ridge",
	Rembrandt:     "Rembrandt",
	Vermeer:       "Vermeer",
	VanGogh:       "Van Gogh",
	Cezanne:       "Cezanne",
	Milan:         "Milan",
	Dali:          "Dali",
	Lucienne:      "Lucienne",
	Naples:        "Naples",
	Chagall:       "Chagall",
	Raphael:       "Raphael",
	Phoenix:       "Phoenix",
	HawkPoint:     "Hawk Point",
	GraniteRidge:  "Granite Ridge",
	StrixPoint:    "Strix Point",
	StormPeak:     "Storm Peak",
}

// CodenameFromID maps the raw sysfs index to a Codename. Ids outside
// the known table map to Unsupported.
func CodenameFromID(id int) Codename {
	c := Codename(id)
	if _, ok := codenames[c]; !ok {
		return Unsupported
	}

	return c
}

func (c Codename) String() string {
	if name, ok := codenames[c]; ok {
		return name
	}

	return "Unknown"
}

// CoresPerCCD returns the core count per core complex die for the
// generation. Every supported family since Zen 2 packs 8.
func (c Codename) CoresPerCCD() int {
	return 8
}

// MaxCCDs returns the largest CCD count shipped for the generation,
// used only as a core-count fallback when the OS count is unavailable.
func (c Codename) MaxCCDs() int {
	switch c {
	case Milan, Naples, Chagall, StormPeak:
		return 8
	case Threadripper, CastlePeak:
		return 4
	case Matisse, Vermeer, Raphael, GraniteRidge:
		return 2
	default:
		return 1
	}
}
