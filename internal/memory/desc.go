// Package memory maintains buffers held in blocked memory layouts.
//
// The central operation is ZeroPad, which zeroes the physically
// allocated but logically unused tail elements of every partial tile in
// a described buffer, so that downstream kernels can read whole tiles
// without per-element bounds checks.
package memory

import (
	"fmt"

	"github.com/born-ml/blockmem/internal/layout"
	"github.com/born-ml/blockmem/internal/tensor"
)

// Desc describes a buffer held in one of the recognized formats: its
// logical dims, tile-rounded padded dims, and the physical strides the
// blocking implies. Descriptors are immutable after construction.
type Desc struct {
	dims         tensor.Dims // logical sizes
	pdims        tensor.Dims // physical sizes, tile-rounded on blocked axes
	blocks       []int       // block size per axis, 1 where unblocked
	blockStrides []int       // stride of one block along each axis
	innerStrides []int       // in-block stride per blocked axis
	dtype        tensor.DataType
	format       layout.Format
	info         layout.Info
}

// NewDesc builds a descriptor for dims held in the given format.
// The rank must match the format and every dim must be positive.
func NewDesc(dims tensor.Dims, dtype tensor.DataType, format layout.Format) (*Desc, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dims: %w", err)
	}
	info := layout.Resolve(format)
	if info.NDims != 0 && len(dims) != info.NDims {
		return nil, fmt.Errorf("format %v wants %d dims, got %d", format, info.NDims, len(dims))
	}

	blocks := make([]int, len(dims))
	for d := range blocks {
		blocks[d] = 1
	}
	base := 0
	if info.Groups {
		base = 1
	}
	switch info.Family {
	case layout.FamilyChannelBlocked, layout.FamilyWeightInBlocked:
		blocks[1] = info.Tile
	case layout.FamilyWeightOutBlocked:
		blocks[base] = info.Tile
	case layout.FamilyWeightJointBlocked:
		blocks[base] = info.Tile
		blocks[base+1] = info.Tile
	case layout.FamilyWeightGroupBlocked:
		blocks[0] = info.Tile
	}

	d := &Desc{
		dims:   dims.Clone(),
		blocks: blocks,
		dtype:  dtype,
		format: format,
		info:   info,
	}
	d.fillStrides(memoryOrder(info, len(dims)))
	return d, nil
}

// NewCustomBlocked builds a descriptor with explicit per-axis block
// sizes and a plain (logical-order) block arrangement. Such descriptors
// classify as generic-blocked and take the generic zero-padding path.
func NewCustomBlocked(dims tensor.Dims, blocks []int, dtype tensor.DataType) (*Desc, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dims: %w", err)
	}
	if len(blocks) != len(dims) {
		return nil, fmt.Errorf("got %d block sizes for %d dims", len(blocks), len(dims))
	}
	for d, b := range blocks {
		if b < 1 {
			return nil, fmt.Errorf("invalid block size at axis %d: %d", d, b)
		}
	}

	d := &Desc{
		dims:   dims.Clone(),
		blocks: append([]int(nil), blocks...),
		dtype:  dtype,
		format: layout.BlockedCustom,
		info:   layout.Resolve(layout.BlockedCustom),
	}
	d.fillStrides(memoryOrder(d.info, len(dims)))
	return d, nil
}

// memoryOrder returns the block-level axis permutation (outermost
// first) the format stores its axes in.
func memoryOrder(info layout.Info, ndims int) []int {
	perm := make([]int, ndims)
	for d := range perm {
		perm[d] = d
	}
	base := 0
	if info.Groups {
		base = 1
	}
	switch info.Order {
	case layout.OrderOXI:
		// Channel axis innermost: drop base+1 and append it.
		ax := perm[base+1]
		perm = append(perm[:base+1], perm[base+2:]...)
		perm = append(perm, ax)
	case layout.OrderIOX:
		perm[base], perm[base+1] = perm[base+1], perm[base]
	}
	return perm
}

// fillStrides derives padded dims, block-level strides and in-block
// strides from the block sizes and the memory order.
func (d *Desc) fillStrides(perm []int) {
	nd := len(d.dims)
	d.pdims = make(tensor.Dims, nd)
	for ax := 0; ax < nd; ax++ {
		b := d.blocks[ax]
		d.pdims[ax] = (d.dims[ax] + b - 1) / b * b
	}

	// In-block strides: row-major over the blocked axes in logical
	// order. Interleaved joint formats override this in OffL via their
	// in-tile index rule.
	d.innerStrides = make([]int, nd)
	vol := 1
	for ax := nd - 1; ax >= 0; ax-- {
		if d.blocks[ax] > 1 {
			d.innerStrides[ax] = vol
			vol *= d.blocks[ax]
		}
	}

	// Block-level strides: innermost position holds one full tile.
	d.blockStrides = make([]int, nd)
	stride := vol
	for k := nd - 1; k >= 0; k-- {
		ax := perm[k]
		d.blockStrides[ax] = stride
		stride *= d.pdims[ax] / d.blocks[ax]
	}
}

// Dims returns the logical sizes.
func (d *Desc) Dims() tensor.Dims { return d.dims }

// PaddedDims returns the physical, tile-rounded sizes.
func (d *Desc) PaddedDims() tensor.Dims { return d.pdims }

// NDims returns the rank.
func (d *Desc) NDims() int { return len(d.dims) }

// DataType returns the element type tag.
func (d *Desc) DataType() tensor.DataType { return d.dtype }

// Format returns the layout tag.
func (d *Desc) Format() layout.Format { return d.format }

// Layout returns the classification record for the format.
func (d *Desc) Layout() layout.Info { return d.info }

// NElems returns the element count, with or without padding.
func (d *Desc) NElems(padded bool) int {
	if padded {
		return d.pdims.Product()
	}
	return d.dims.Product()
}

// ByteSize returns the buffer size in bytes needed to hold the padded
// element count.
func (d *Desc) ByteSize() int { return d.NElems(true) * d.dtype.Size() }

// BlkOff returns the physical offset of a block-level position. Each
// argument addresses one leading axis: the tile index on a blocked
// axis, the plain index elsewhere. Trailing axes default to zero.
func (d *Desc) BlkOff(idx ...int) int {
	off := 0
	for ax, i := range idx {
		off += i * d.blockStrides[ax]
	}
	return off
}

// OffL returns the physical offset for a flat index over the padded
// (tile-rounded) logical index space.
func (d *Desc) OffL(e int) int {
	nd := len(d.dims)
	off := 0
	inIC, inOC := 0, 0
	base := 0
	if d.info.Groups {
		base = 1
	}
	for ax := nd - 1; ax >= 0; ax-- {
		pos := e % d.pdims[ax]
		e /= d.pdims[ax]
		b := d.blocks[ax]
		off += pos / b * d.blockStrides[ax]
		if b > 1 {
			if d.info.Family == layout.FamilyWeightJointBlocked {
				if ax == base {
					inOC = pos % b
				} else {
					inIC = pos % b
				}
			} else {
				off += pos % b * d.innerStrides[ax]
			}
		}
	}
	if d.info.Family == layout.FamilyWeightJointBlocked {
		off += jointIndex(d.info.Joint, d.info.Tile, inIC, inOC)
	}
	return off
}

// jointIndex computes the in-tile offset of (ic, oc) under one of the
// five joint-blocked layouts.
func jointIndex(rule layout.JointRule, tile, ic, oc int) int {
	switch rule {
	case layout.JointInPairs:
		return ic/2*tile*2 + 2*oc + ic%2
	case layout.JointQuads:
		return ic/4*tile*4 + oc*4 + ic%4
	case layout.JointOutPairs:
		return oc/2*tile*2 + 2*ic + oc%2
	case layout.JointInMajor:
		return ic*tile + oc
	default:
		return oc*tile + ic
	}
}
