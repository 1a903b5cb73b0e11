package memory

import (
	"errors"
	"fmt"

	"github.com/born-ml/blockmem/internal/layout"
	"github.com/born-ml/blockmem/internal/parallel"
	"github.com/born-ml/blockmem/internal/tensor"
)

// ErrUnimplemented reports a data type or format outside the supported
// sets. It is returned before any write to the buffer.
var ErrUnimplemented = errors.New("unimplemented")

// ZeroPad zeroes every padding element of the described buffer: the
// physically allocated tail of each partial tile. Addresses holding
// logical elements are never touched, so the operation is idempotent.
//
// A nil buffer, an empty shape, or a dense format with no padding is a
// successful no-op. An unrecognized data type or format yields
// ErrUnimplemented with the buffer unmodified.
func ZeroPad(md *Desc, data []byte) error {
	return ZeroPadConfig(md, data, parallel.DefaultConfig())
}

// ZeroPadConfig is ZeroPad with explicit parallel execution settings.
// The call does not return until every padding write has completed.
func ZeroPadConfig(md *Desc, data []byte, cfg parallel.Config) error {
	if md == nil || data == nil || md.NElems(true) == 0 {
		return nil
	}
	switch md.DataType() {
	case tensor.Float32:
		return zeroPadTyped(md, tensor.SliceOf[float32](data, md.NElems(true)), cfg)
	case tensor.Int32:
		return zeroPadTyped(md, tensor.SliceOf[int32](data, md.NElems(true)), cfg)
	case tensor.Int16:
		return zeroPadTyped(md, tensor.SliceOf[int16](data, md.NElems(true)), cfg)
	case tensor.Int8:
		return zeroPadTyped(md, tensor.SliceOf[int8](data, md.NElems(true)), cfg)
	case tensor.Uint8:
		return zeroPadTyped(md, tensor.SliceOf[uint8](data, md.NElems(true)), cfg)
	default:
		return fmt.Errorf("%w: data type %v", ErrUnimplemented, md.DataType())
	}
}

func zeroPadTyped[T tensor.Scalar](md *Desc, data []T, cfg parallel.Config) error {
	info := md.Layout()
	switch info.Family {
	case layout.FamilyPlain:
		// Dense layout, nothing is ever padded.
		return nil
	case layout.FamilyUnsupported:
		return fmt.Errorf("%w: format %v has no blocking description", ErrUnimplemented, md.Format())
	}

	if md.NElems(false) == md.NElems(true) {
		return nil
	}

	switch info.Family {
	case layout.FamilyChannelBlocked:
		zeroPadChannelBlocked(md, data, cfg)
	case layout.FamilyWeightOutBlocked:
		zeroPadWeightsOut(md, data, cfg)
	case layout.FamilyWeightInBlocked:
		zeroPadWeightsIn(md, data, cfg)
	case layout.FamilyWeightJointBlocked:
		zeroPadWeightsJoint(md, data, cfg)
	case layout.FamilyWeightGroupBlocked:
		zeroPadWeightsGroup(md, data, cfg)
	default: // layout.FamilyGenericBlocked
		zeroPadGenericBlocked(md, data, cfg)
	}
	return nil
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// whtBlkOff maps a weight-tensor block position to its physical offset,
// honoring rank and group presence. The group index is ignored for
// formats without a group axis.
func whtBlkOff(md *Desc, info layout.Info, g, o, i, d, h, w int) int {
	switch {
	case info.Groups && info.Is1D:
		return md.BlkOff(g, o, i, w)
	case info.Groups && info.Is3D:
		return md.BlkOff(g, o, i, d, h, w)
	case info.Groups:
		return md.BlkOff(g, o, i, h, w)
	case info.Is1D:
		return md.BlkOff(o, i, w)
	case info.Is3D:
		return md.BlkOff(o, i, d, h, w)
	default:
		return md.BlkOff(o, i, h, w)
	}
}

// zeroPadChannelBlocked handles activation formats with a tiled channel
// axis (nCw8c and friends). Only the last channel tile can be partial;
// the trailing spatial axes are contiguous, so each (batch, outer
// spatial) pair zeroes one run of width*trailing elements.
func zeroPadChannelBlocked[T tensor.Scalar](md *Desc, data []T, cfg parallel.Config) {
	info := md.Layout()
	blk := info.Tile
	dims, pdims := md.Dims(), md.PaddedDims()

	lastBlock := pdims[1]/blk - 1
	tailStart := dims[1] % blk
	if tailStart == 0 {
		panic("zero-pad: channel-blocked handler called with no channel tail")
	}
	spRest := dims.ProductFrom(3)

	parallel.For2D(dims[0], dims[2], func(n, sp0 int) {
		d := data[md.BlkOff(n, lastBlock, sp0):]
		for sp := 0; sp < spRest; sp++ {
			for c := tailStart; c < blk; c++ {
				d[sp*blk+c] = 0
			}
		}
	}, cfg)
}

// zeroPadWeightsOut handles weight formats where only the output
// feature-map axis is tiled.
func zeroPadWeightsOut[T tensor.Scalar](md *Desc, data []T, cfg parallel.Config) {
	info := md.Layout()
	blk := info.Tile
	dims, pdims := md.Dims(), md.PaddedDims()
	base := btoi(info.Groups)

	grps := 1
	if info.Groups {
		grps = dims[0]
	}
	nbOC := pdims[base] / blk
	ic := dims[base+1]
	depth := 1
	if info.Is3D {
		depth = dims[base+2]
	}
	height := 1
	if !info.Is1D {
		height = dims[base+2+btoi(info.Is3D)]
	}
	width := dims[base+3-btoi(info.Is1D)+btoi(info.Is3D)]

	ocTail := pdims[base] - dims[base]
	if ocTail == 0 {
		panic("zero-pad: out-blocked handler called with no output tail")
	}

	parallel.For5D(grps, ic, depth, height, width, func(g, i, d, h, w int) {
		x := data[whtBlkOff(md, info, g, nbOC-1, i, d, h, w):]
		for oc := blk - ocTail; oc < blk; oc++ {
			x[oc] = 0
		}
	}, cfg)
}

// zeroPadWeightsIn mirrors zeroPadWeightsOut with the feature-map axes
// swapped: only the input axis is tiled. No group axis, 2D or 3D only.
func zeroPadWeightsIn[T tensor.Scalar](md *Desc, data []T, cfg parallel.Config) {
	info := md.Layout()
	blk := info.Tile
	dims, pdims := md.Dims(), md.PaddedDims()

	oc := dims[0]
	nbIC := pdims[1] / blk
	depth := 1
	if info.Is3D {
		depth = dims[2]
	}
	height := dims[2+btoi(info.Is3D)]
	width := dims[3+btoi(info.Is3D)]

	icTail := pdims[1] - dims[1]
	if icTail == 0 {
		panic("zero-pad: in-blocked handler called with no input tail")
	}

	parallel.For4D(oc, depth, height, width, func(o, d, h, w int) {
		x := data[whtBlkOff(md, info, 0, o, nbIC-1, d, h, w):]
		for ic := blk - icTail; ic < blk; ic++ {
			x[ic] = 0
		}
	}, cfg)
}

// jointIndexFunc resolves the in-tile index formula for a joint-blocked
// format once per call.
func jointIndexFunc(rule layout.JointRule, tile int) func(ic, oc int) int {
	switch rule {
	case layout.JointInPairs:
		return func(ic, oc int) int { return ic/2*tile*2 + 2*oc + ic%2 }
	case layout.JointQuads:
		return func(ic, oc int) int { return ic/4*tile*4 + oc*4 + ic%4 }
	case layout.JointOutPairs:
		return func(ic, oc int) int { return oc/2*tile*2 + 2*ic + oc%2 }
	case layout.JointInMajor:
		return func(ic, oc int) int { return ic*tile + oc }
	default:
		return func(ic, oc int) int { return oc*tile + ic }
	}
}

// zeroPadWeightsJoint handles formats with both feature-map axes tiled.
// Each axis may carry a tail independently, so padding runs as two
// sweeps; the corner tile both sweeps touch is written zero twice,
// which is harmless.
func zeroPadWeightsJoint[T tensor.Scalar](md *Desc, data []T, cfg parallel.Config) {
	info := md.Layout()
	blk := info.Tile
	dims, pdims := md.Dims(), md.PaddedDims()
	base := btoi(info.Groups)

	grps := 1
	if info.Groups {
		grps = dims[0]
	}
	nbOC := pdims[base] / blk
	nbIC := pdims[base+1] / blk
	depth := 1
	if info.Is3D {
		depth = dims[base+2]
	}
	height := 1
	if !info.Is1D {
		height = dims[base+2+btoi(info.Is3D)]
	}
	width := dims[base+3-btoi(info.Is1D)+btoi(info.Is3D)]

	idx := jointIndexFunc(info.Joint, blk)

	ker := func(x []T, ocTail, icTail int) {
		oc := 0
		for ; oc < blk-ocTail; oc++ {
			for ic := blk - icTail; ic < blk; ic++ {
				x[idx(ic, oc)] = 0
			}
		}
		for ; oc < blk; oc++ {
			for ic := 0; ic < blk; ic++ {
				x[idx(ic, oc)] = 0
			}
		}
	}

	ocTail := pdims[base] - dims[base]
	icTail := pdims[base+1] - dims[base+1]

	if icTail != 0 {
		parallel.For5D(grps, nbOC, depth, height, width, func(g, ob, d, h, w int) {
			ker(data[whtBlkOff(md, info, g, ob, nbIC-1, d, h, w):], 0, icTail)
		}, cfg)
	}

	if ocTail != 0 {
		parallel.For5D(grps, nbIC, depth, height, width, func(g, ib, d, h, w int) {
			ker(data[whtBlkOff(md, info, g, nbOC-1, ib, d, h, w):], ocTail, 0)
		}, cfg)
	}
}

// zeroPadWeightsGroup handles the rare formats where the group axis
// itself is tiled. The last group tile has a single base address; all
// trailing axes are dense, so the remainder flattens to one range.
func zeroPadWeightsGroup[T tensor.Scalar](md *Desc, data []T, cfg parallel.Config) {
	info := md.Layout()
	blk := info.Tile
	dims, pdims := md.Dims(), md.PaddedDims()

	lastBlock := pdims[0]/blk - 1
	tailStart := dims[0] % blk
	if tailStart == 0 {
		panic("zero-pad: group-blocked handler called with no group tail")
	}
	szRest := dims.ProductFrom(1)

	d := data[md.BlkOff(lastBlock):]

	parallel.For(szRest, func(s int) {
		for g := tailStart; g < blk; g++ {
			d[s*blk+g] = 0
		}
	}, cfg)
}

// zeroPadGenericBlocked is the fallback for blocked descriptors outside
// the named families. It finds the contiguous unpadded suffix of axes
// (length step), then walks one representative per run:
//
//	[D_0] .. [D_k][D_k+1] .. [D_ndims-1]
//	           |  \                    /
//	           |   --------------------
//	          has        contiguous
//	        padding
//
// A run whose outer coordinates index into padding is zeroed whole.
func zeroPadGenericBlocked[T tensor.Scalar](md *Desc, data []T, cfg parallel.Config) {
	dims, pdims := md.Dims(), md.PaddedDims()
	nelems := md.NElems(true)

	step := 1
	stepDim := md.NDims() - 1
	for ; stepDim >= 0; stepDim-- {
		if dims[stepDim] != pdims[stepDim] {
			break
		}
		step *= dims[stepDim]
	}
	if stepDim < 0 {
		panic("zero-pad: generic path called but no axis carries padding")
	}

	parallel.For(nelems/step, func(r int) {
		idx := r
		needZero := false
		for d := stepDim; d >= 0; d-- {
			if idx%pdims[d] >= dims[d] {
				needZero = true
				break
			}
			idx /= pdims[d]
		}
		if !needZero {
			return
		}
		e := r * step
		for e0 := 0; e0 < step; e0++ {
			data[md.OffL(e+e0)] = 0
		}
	}, cfg)
}
