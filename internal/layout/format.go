// Package layout enumerates the physical memory formats recognized by
// blockmem and classifies each one into a zero-padding family.
//
// Format names follow the usual convention for blocked layouts: the
// letter sequence gives the order of axes in memory (n batch, c channels,
// o output channels, i input channels, g groups, d/h/w spatial), and a
// trailing number+letter pair marks an axis split into tiles of that
// size. nChw8c is n, channel tiles, h, w, with 8 channels per tile
// innermost; OIhw16i16o tiles both feature-map axes by 16.
package layout

// Format identifies one physical memory layout from the closed set
// blockmem understands.
type Format int

// The closed format set. Names capitalize the first letter of the
// canonical tag; String returns the canonical spelling.
const (
	FormatUndef Format = iota

	// Plain dense formats. Never carry padding.
	X
	NC
	NCw
	NChw
	NCdhw
	NHWC
	OIw
	OIhw
	OIdhw
	Goihw

	// Channel-blocked data formats.
	NCw8c
	NCw16c
	NChw8c
	NChw16c
	NCdhw8c
	NCdhw16c

	// Output-channel-blocked weight formats.
	Oiw16o
	Owi8o
	Owi16o
	Ohwi8o
	Ohwi16o
	Oihw16o
	Oidhw16o
	Odhwi8o
	Odhwi16o
	GOiw16o
	GOwi8o
	GOwi16o
	GOhwi8o
	GOhwi16o
	GOihw16o
	GOidhw16o
	GOdhwi8o
	GOdhwi16o

	// Input-channel-blocked weight formats (canonical oIhw8i etc.).
	OIhw8i
	OIhw16i
	OIdhw8i
	OIdhw16i

	// Jointly-blocked weight formats, both feature-map axes tiled.
	OIw8i8o
	OIw8o8i
	OIw16i16o
	OIw16o16i
	OIw8i16o2i
	OIw8o16i2o
	IOw16o16i
	OIhw8i8o
	OIhw8o8i
	OIhw16i16o
	OIhw16o16i
	OIhw4i16o4i
	OIhw8i16o2i
	OIhw8o16i2o
	IOhw16o16i
	OIdhw8i8o
	OIdhw8o8i
	OIdhw16i16o
	OIdhw16o16i
	OIdhw8i16o2i
	GOIw8i8o
	GOIw8o8i
	GOIw16i16o
	GOIw16o16i
	GOIw8i16o2i
	GOIw8o16i2o
	GIOw16o16i
	GOIhw8i8o
	GOIhw8o8i
	GOIhw16i16o
	GOIhw16o16i
	GOIhw4i16o4i
	GOIhw8i16o2i
	GOIhw8o16i2o
	GIOhw16o16i
	GOIdhw8i8o
	GOIdhw8o8i
	GOIdhw16i16o
	GOIdhw16o16i
	GOIdhw8i16o2i

	// Group-blocked weight formats.
	Goihw8g
	Goihw16g

	// BlockedCustom marks a descriptor carrying explicit user blocking.
	BlockedCustom

	// WinoFmt is an opaque Winograd-packed layout with no blocking
	// description this package can walk.
	WinoFmt

	numFormats // sentinel, keep last
)

var formatNames = map[Format]string{
	FormatUndef:   "undef",
	X:             "x",
	NC:            "nc",
	NCw:           "ncw",
	NChw:          "nchw",
	NCdhw:         "ncdhw",
	NHWC:          "nhwc",
	OIw:           "oiw",
	OIhw:          "oihw",
	OIdhw:         "oidhw",
	Goihw:         "goihw",
	NCw8c:         "nCw8c",
	NCw16c:        "nCw16c",
	NChw8c:        "nChw8c",
	NChw16c:       "nChw16c",
	NCdhw8c:       "nCdhw8c",
	NCdhw16c:      "nCdhw16c",
	Oiw16o:        "Oiw16o",
	Owi8o:         "Owi8o",
	Owi16o:        "Owi16o",
	Ohwi8o:        "Ohwi8o",
	Ohwi16o:       "Ohwi16o",
	Oihw16o:       "Oihw16o",
	Oidhw16o:      "Oidhw16o",
	Odhwi8o:       "Odhwi8o",
	Odhwi16o:      "Odhwi16o",
	GOiw16o:       "gOiw16o",
	GOwi8o:        "gOwi8o",
	GOwi16o:       "gOwi16o",
	GOhwi8o:       "gOhwi8o",
	GOhwi16o:      "gOhwi16o",
	GOihw16o:      "gOihw16o",
	GOidhw16o:     "gOidhw16o",
	GOdhwi8o:      "gOdhwi8o",
	GOdhwi16o:     "gOdhwi16o",
	OIhw8i:        "oIhw8i",
	OIhw16i:       "oIhw16i",
	OIdhw8i:       "oIdhw8i",
	OIdhw16i:      "oIdhw16i",
	OIw8i8o:       "OIw8i8o",
	OIw8o8i:       "OIw8o8i",
	OIw16i16o:     "OIw16i16o",
	OIw16o16i:     "OIw16o16i",
	OIw8i16o2i:    "OIw8i16o2i",
	OIw8o16i2o:    "OIw8o16i2o",
	IOw16o16i:     "IOw16o16i",
	OIhw8i8o:      "OIhw8i8o",
	OIhw8o8i:      "OIhw8o8i",
	OIhw16i16o:    "OIhw16i16o",
	OIhw16o16i:    "OIhw16o16i",
	OIhw4i16o4i:   "OIhw4i16o4i",
	OIhw8i16o2i:   "OIhw8i16o2i",
	OIhw8o16i2o:   "OIhw8o16i2o",
	IOhw16o16i:    "IOhw16o16i",
	OIdhw8i8o:     "OIdhw8i8o",
	OIdhw8o8i:     "OIdhw8o8i",
	OIdhw16i16o:   "OIdhw16i16o",
	OIdhw16o16i:   "OIdhw16o16i",
	OIdhw8i16o2i:  "OIdhw8i16o2i",
	GOIw8i8o:      "gOIw8i8o",
	GOIw8o8i:      "gOIw8o8i",
	GOIw16i16o:    "gOIw16i16o",
	GOIw16o16i:    "gOIw16o16i",
	GOIw8i16o2i:   "gOIw8i16o2i",
	GOIw8o16i2o:   "gOIw8o16i2o",
	GIOw16o16i:    "gIOw16o16i",
	GOIhw8i8o:     "gOIhw8i8o",
	GOIhw8o8i:     "gOIhw8o8i",
	GOIhw16i16o:   "gOIhw16i16o",
	GOIhw16o16i:   "gOIhw16o16i",
	GOIhw4i16o4i:  "gOIhw4i16o4i",
	GOIhw8i16o2i:  "gOIhw8i16o2i",
	GOIhw8o16i2o:  "gOIhw8o16i2o",
	GIOhw16o16i:   "gIOhw16o16i",
	GOIdhw8i8o:    "gOIdhw8i8o",
	GOIdhw8o8i:    "gOIdhw8o8i",
	GOIdhw16i16o:  "gOIdhw16i16o",
	GOIdhw16o16i:  "gOIdhw16o16i",
	GOIdhw8i16o2i: "gOIdhw8i16o2i",
	Goihw8g:       "Goihw8g",
	Goihw16g:      "Goihw16g",
	BlockedCustom: "blocked",
	WinoFmt:       "wino_fmt",
}

// String returns the canonical tag spelling for the format.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Formats returns every defined format, FormatUndef excluded.
func Formats() []Format {
	all := make([]Format, 0, int(numFormats)-1)
	for f := FormatUndef + 1; f < numFormats; f++ {
		all = append(all, f)
	}
	return all
}
