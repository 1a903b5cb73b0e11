package layout

import "testing"

// Every enumerated format must resolve to a deliberate family: either a
// handler family or, for the two opaque tags, FamilyUnsupported. A tag
// falling through to FamilyUnsupported by accident means the table has
// a hole.
func TestResolveExhaustive(t *testing.T) {
	for _, f := range Formats() {
		info := Resolve(f)
		if f == WinoFmt {
			if info.Family != FamilyUnsupported {
				t.Errorf("%v: family %v, want unsupported", f, info.Family)
			}
			continue
		}
		if info.Family == FamilyUnsupported {
			t.Errorf("%v: resolves to unsupported, table entry missing", f)
		}
		switch info.Family {
		case FamilyPlain, FamilyGenericBlocked:
			if info.Tile != 0 {
				t.Errorf("%v: unexpected tile %d", f, info.Tile)
			}
		default:
			if info.Tile != 8 && info.Tile != 16 {
				t.Errorf("%v: tile %d, want 8 or 16", f, info.Tile)
			}
		}
	}
}

func TestResolveUndef(t *testing.T) {
	if got := Resolve(FormatUndef).Family; got != FamilyUnsupported {
		t.Errorf("undef family = %v, want unsupported", got)
	}
	if got := Resolve(Format(9999)).Family; got != FamilyUnsupported {
		t.Errorf("out-of-range family = %v, want unsupported", got)
	}
}

func TestResolveTable(t *testing.T) {
	tests := []struct {
		format Format
		want   Info
	}{
		{NChw8c, Info{Family: FamilyChannelBlocked, Tile: 8, NDims: 4}},
		{NCw16c, Info{Family: FamilyChannelBlocked, Tile: 16, NDims: 3, Is1D: true}},
		{NCdhw16c, Info{Family: FamilyChannelBlocked, Tile: 16, NDims: 5, Is3D: true}},
		{Ohwi8o, Info{Family: FamilyWeightOutBlocked, Tile: 8, NDims: 4, Order: OrderOXI}},
		{Oihw16o, Info{Family: FamilyWeightOutBlocked, Tile: 16, NDims: 4}},
		{GOdhwi16o, Info{Family: FamilyWeightOutBlocked, Tile: 16, NDims: 6,
			Groups: true, Is3D: true, Order: OrderOXI}},
		{OIhw8i, Info{Family: FamilyWeightInBlocked, Tile: 8, NDims: 4}},
		{OIdhw16i, Info{Family: FamilyWeightInBlocked, Tile: 16, NDims: 5, Is3D: true}},
		{OIhw16i16o, Info{Family: FamilyWeightJointBlocked, Tile: 16, NDims: 4,
			Joint: JointInMajor}},
		{OIhw4i16o4i, Info{Family: FamilyWeightJointBlocked, Tile: 16, NDims: 4,
			Joint: JointQuads}},
		{OIw8i16o2i, Info{Family: FamilyWeightJointBlocked, Tile: 16, NDims: 3,
			Is1D: true, Joint: JointInPairs}},
		{GOIhw8o16i2o, Info{Family: FamilyWeightJointBlocked, Tile: 16, NDims: 5,
			Groups: true, Joint: JointOutPairs}},
		{IOhw16o16i, Info{Family: FamilyWeightJointBlocked, Tile: 16, NDims: 4,
			Order: OrderIOX, Joint: JointOutMajor}},
		{GIOw16o16i, Info{Family: FamilyWeightJointBlocked, Tile: 16, NDims: 4,
			Groups: true, Is1D: true, Order: OrderIOX, Joint: JointOutMajor}},
		{Goihw8g, Info{Family: FamilyWeightGroupBlocked, Tile: 8, NDims: 5, Groups: true}},
		{Goihw16g, Info{Family: FamilyWeightGroupBlocked, Tile: 16, NDims: 5, Groups: true}},
		{NChw, Info{Family: FamilyPlain, NDims: 4}},
		{NHWC, Info{Family: FamilyPlain, NDims: 4, Order: OrderOXI}},
		{BlockedCustom, Info{Family: FamilyGenericBlocked}},
	}

	for _, tt := range tests {
		if got := Resolve(tt.format); got != tt.want {
			t.Errorf("Resolve(%v) = %+v, want %+v", tt.format, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		str    string
	}{
		{NChw8c, "nChw8c"},
		{OIhw8i, "oIhw8i"},
		{GOIhw8i16o2i, "gOIhw8i16o2i"},
		{Goihw8g, "Goihw8g"},
		{NHWC, "nhwc"},
		{BlockedCustom, "blocked"},
		{WinoFmt, "wino_fmt"},
		{FormatUndef, "undef"},
		{Format(9999), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.str {
			t.Errorf("Format.String() = %q, want %q", got, tt.str)
		}
	}
}

func TestFormatsComplete(t *testing.T) {
	all := Formats()
	if len(all) != int(numFormats)-1 {
		t.Fatalf("Formats() returned %d entries, want %d", len(all), int(numFormats)-1)
	}
	for _, f := range all {
		if f.String() == "unknown" {
			t.Errorf("format %d has no name", f)
		}
	}
}
