package layout

// Family identifies which zero-padding convention a format follows.
// Exactly one family applies per format.
type Family int

// Recognized families.
const (
	FamilyUnsupported Family = iota
	FamilyPlain
	FamilyChannelBlocked
	FamilyWeightOutBlocked
	FamilyWeightInBlocked
	FamilyWeightJointBlocked
	FamilyWeightGroupBlocked
	FamilyGenericBlocked
)

// String returns a human-readable family name.
func (f Family) String() string {
	switch f {
	case FamilyPlain:
		return "plain"
	case FamilyChannelBlocked:
		return "channel-blocked"
	case FamilyWeightOutBlocked:
		return "weight-out-blocked"
	case FamilyWeightInBlocked:
		return "weight-in-blocked"
	case FamilyWeightJointBlocked:
		return "weight-joint-blocked"
	case FamilyWeightGroupBlocked:
		return "weight-group-blocked"
	case FamilyGenericBlocked:
		return "generic-blocked"
	default:
		return "unsupported"
	}
}

// Order is the block-level memory order class of a format, used to
// derive physical strides from the logical axis order.
type Order int

// Memory order classes.
const (
	// OrderOIX stores axes in their logical order.
	OrderOIX Order = iota
	// OrderOXI moves the input-channel (or channel) axis innermost,
	// after the spatial axes.
	OrderOXI
	// OrderIOX swaps the output- and input-channel axes.
	OrderIOX
)

// JointRule selects the in-tile index formula for jointly-blocked
// weight formats. Resolved once per format, never per element.
type JointRule int

// In-tile layouts of the joint family. tile is the tile size, ic/oc the
// in-tile input/output indices.
const (
	// JointOutMajor: oc*tile + ic (the default).
	JointOutMajor JointRule = iota
	// JointInMajor: ic*tile + oc.
	JointInMajor
	// JointInPairs: (ic/2)*tile*2 + 2*oc + ic%2.
	JointInPairs
	// JointQuads: (ic/4)*tile*4 + oc*4 + ic%4.
	JointQuads
	// JointOutPairs: (oc/2)*tile*2 + 2*ic + oc%2.
	JointOutPairs
)

// Info is the classification record for a format: its family plus the
// constants the zero-padding algorithms need. This table is the single
// source of truth mapping layout tag to physical tiling convention.
type Info struct {
	Family Family
	Tile   int  // vector width the blocking targets, 8 or 16
	NDims  int  // expected descriptor rank
	Groups bool // leading group axis present
	Is1D   bool // single spatial axis
	Is3D   bool // three spatial axes
	Order  Order
	Joint  JointRule // joint family only
}

func rankFlags(spatial int) (is1d, is3d bool) {
	return spatial == 1, spatial == 3
}

func plain(ndims int, order Order) Info {
	return Info{Family: FamilyPlain, NDims: ndims, Order: order}
}

func dataBlk(tile, spatial int) Info {
	is1d, is3d := rankFlags(spatial)
	return Info{Family: FamilyChannelBlocked, Tile: tile,
		NDims: 2 + spatial, Is1D: is1d, Is3D: is3d}
}

func outBlk(tile, spatial int, groups bool, order Order) Info {
	is1d, is3d := rankFlags(spatial)
	nd := 2 + spatial
	if groups {
		nd++
	}
	return Info{Family: FamilyWeightOutBlocked, Tile: tile,
		NDims: nd, Groups: groups, Is1D: is1d, Is3D: is3d, Order: order}
}

func inBlk(tile, spatial int) Info {
	is1d, is3d := rankFlags(spatial)
	return Info{Family: FamilyWeightInBlocked, Tile: tile,
		NDims: 2 + spatial, Is1D: is1d, Is3D: is3d}
}

func jointBlk(tile, spatial int, groups bool, order Order, rule JointRule) Info {
	is1d, is3d := rankFlags(spatial)
	nd := 2 + spatial
	if groups {
		nd++
	}
	return Info{Family: FamilyWeightJointBlocked, Tile: tile,
		NDims: nd, Groups: groups, Is1D: is1d, Is3D: is3d, Order: order, Joint: rule}
}

func groupBlk(tile int) Info {
	return Info{Family: FamilyWeightGroupBlocked, Tile: tile, NDims: 5, Groups: true}
}

var formatTable = map[Format]Info{
	X:     plain(1, OrderOIX),
	NC:    plain(2, OrderOIX),
	NCw:   plain(3, OrderOIX),
	NChw:  plain(4, OrderOIX),
	NCdhw: plain(5, OrderOIX),
	NHWC:  plain(4, OrderOXI),
	OIw:   plain(3, OrderOIX),
	OIhw:  plain(4, OrderOIX),
	OIdhw: plain(5, OrderOIX),
	Goihw: plain(5, OrderOIX),

	NCw8c:    dataBlk(8, 1),
	NCw16c:   dataBlk(16, 1),
	NChw8c:   dataBlk(8, 2),
	NChw16c:  dataBlk(16, 2),
	NCdhw8c:  dataBlk(8, 3),
	NCdhw16c: dataBlk(16, 3),

	Oiw16o:    outBlk(16, 1, false, OrderOIX),
	Owi8o:     outBlk(8, 1, false, OrderOXI),
	Owi16o:    outBlk(16, 1, false, OrderOXI),
	Ohwi8o:    outBlk(8, 2, false, OrderOXI),
	Ohwi16o:   outBlk(16, 2, false, OrderOXI),
	Oihw16o:   outBlk(16, 2, false, OrderOIX),
	Oidhw16o:  outBlk(16, 3, false, OrderOIX),
	Odhwi8o:   outBlk(8, 3, false, OrderOXI),
	Odhwi16o:  outBlk(16, 3, false, OrderOXI),
	GOiw16o:   outBlk(16, 1, true, OrderOIX),
	GOwi8o:    outBlk(8, 1, true, OrderOXI),
	GOwi16o:   outBlk(16, 1, true, OrderOXI),
	GOhwi8o:   outBlk(8, 2, true, OrderOXI),
	GOhwi16o:  outBlk(16, 2, true, OrderOXI),
	GOihw16o:  outBlk(16, 2, true, OrderOIX),
	GOidhw16o: outBlk(16, 3, true, OrderOIX),
	GOdhwi8o:  outBlk(8, 3, true, OrderOXI),
	GOdhwi16o: outBlk(16, 3, true, OrderOXI),

	OIhw8i:   inBlk(8, 2),
	OIhw16i:  inBlk(16, 2),
	OIdhw8i:  inBlk(8, 3),
	OIdhw16i: inBlk(16, 3),

	OIw8i8o:       jointBlk(8, 1, false, OrderOIX, JointInMajor),
	OIw8o8i:       jointBlk(8, 1, false, OrderOIX, JointOutMajor),
	OIw16i16o:     jointBlk(16, 1, false, OrderOIX, JointInMajor),
	OIw16o16i:     jointBlk(16, 1, false, OrderOIX, JointOutMajor),
	OIw8i16o2i:    jointBlk(16, 1, false, OrderOIX, JointInPairs),
	OIw8o16i2o:    jointBlk(16, 1, false, OrderOIX, JointOutPairs),
	IOw16o16i:     jointBlk(16, 1, false, OrderIOX, JointOutMajor),
	OIhw8i8o:      jointBlk(8, 2, false, OrderOIX, JointInMajor),
	OIhw8o8i:      jointBlk(8, 2, false, OrderOIX, JointOutMajor),
	OIhw16i16o:    jointBlk(16, 2, false, OrderOIX, JointInMajor),
	OIhw16o16i:    jointBlk(16, 2, false, OrderOIX, JointOutMajor),
	OIhw4i16o4i:   jointBlk(16, 2, false, OrderOIX, JointQuads),
	OIhw8i16o2i:   jointBlk(16, 2, false, OrderOIX, JointInPairs),
	OIhw8o16i2o:   jointBlk(16, 2, false, OrderOIX, JointOutPairs),
	IOhw16o16i:    jointBlk(16, 2, false, OrderIOX, JointOutMajor),
	OIdhw8i8o:     jointBlk(8, 3, false, OrderOIX, JointInMajor),
	OIdhw8o8i:     jointBlk(8, 3, false, OrderOIX, JointOutMajor),
	OIdhw16i16o:   jointBlk(16, 3, false, OrderOIX, JointInMajor),
	OIdhw16o16i:   jointBlk(16, 3, false, OrderOIX, JointOutMajor),
	OIdhw8i16o2i:  jointBlk(16, 3, false, OrderOIX, JointInPairs),
	GOIw8i8o:      jointBlk(8, 1, true, OrderOIX, JointInMajor),
	GOIw8o8i:      jointBlk(8, 1, true, OrderOIX, JointOutMajor),
	GOIw16i16o:    jointBlk(16, 1, true, OrderOIX, JointInMajor),
	GOIw16o16i:    jointBlk(16, 1, true, OrderOIX, JointOutMajor),
	GOIw8i16o2i:   jointBlk(16, 1, true, OrderOIX, JointInPairs),
	GOIw8o16i2o:   jointBlk(16, 1, true, OrderOIX, JointOutPairs),
	GIOw16o16i:    jointBlk(16, 1, true, OrderIOX, JointOutMajor),
	GOIhw8i8o:     jointBlk(8, 2, true, OrderOIX, JointInMajor),
	GOIhw8o8i:     jointBlk(8, 2, true, OrderOIX, JointOutMajor),
	GOIhw16i16o:   jointBlk(16, 2, true, OrderOIX, JointInMajor),
	GOIhw16o16i:   jointBlk(16, 2, true, OrderOIX, JointOutMajor),
	GOIhw4i16o4i:  jointBlk(16, 2, true, OrderOIX, JointQuads),
	GOIhw8i16o2i:  jointBlk(16, 2, true, OrderOIX, JointInPairs),
	GOIhw8o16i2o:  jointBlk(16, 2, true, OrderOIX, JointOutPairs),
	GIOhw16o16i:   jointBlk(16, 2, true, OrderIOX, JointOutMajor),
	GOIdhw8i8o:    jointBlk(8, 3, true, OrderOIX, JointInMajor),
	GOIdhw8o8i:    jointBlk(8, 3, true, OrderOIX, JointOutMajor),
	GOIdhw16i16o:  jointBlk(16, 3, true, OrderOIX, JointInMajor),
	GOIdhw16o16i:  jointBlk(16, 3, true, OrderOIX, JointOutMajor),
	GOIdhw8i16o2i: jointBlk(16, 3, true, OrderOIX, JointInPairs),

	Goihw8g:  groupBlk(8),
	Goihw16g: groupBlk(16),

	BlockedCustom: {Family: FamilyGenericBlocked},
}

// Resolve classifies a format. Tags outside the table, including
// FormatUndef and opaque packed layouts, resolve to FamilyUnsupported.
func Resolve(f Format) Info {
	if info, ok := formatTable[f]; ok {
		return info
	}
	return Info{Family: FamilyUnsupported}
}
