// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package memory is the public API for blocked-layout buffer
// maintenance.
//
// ZeroPad deterministically zeroes the padding elements of a buffer
// held in a blocked format, so compute kernels can read whole tiles
// without per-element bounds checks:
//
//	md, _ := memory.NewDesc(tensor.Dims{2, 20, 4, 4}, memory.Float32, layout.NChw16c)
//	buf := make([]byte, md.ByteSize())
//	// ... fill logical elements ...
//	if err := memory.ZeroPad(md, buf); err != nil {
//	    // unsupported data type or format
//	}
package memory

import (
	"github.com/born-ml/blockmem/internal/memory"
	"github.com/born-ml/blockmem/internal/parallel"
	"github.com/born-ml/blockmem/internal/tensor"
	"github.com/born-ml/blockmem/layout"
)

// Desc describes a buffer held in a blocked memory format.
type Desc = memory.Desc

// DataType represents the element type of a buffer.
type DataType = tensor.DataType

// Supported element types.
const (
	Float32 DataType = tensor.Float32
	Int32   DataType = tensor.Int32
	Int16   DataType = tensor.Int16
	Int8    DataType = tensor.Int8
	Uint8   DataType = tensor.Uint8
)

// Dims holds per-axis logical sizes.
type Dims = tensor.Dims

// Config controls parallel execution of the padding sweeps.
type Config = parallel.Config

// DefaultConfig returns parallel execution defaults based on CPU count.
func DefaultConfig() Config { return parallel.DefaultConfig() }

// ErrUnimplemented reports a data type or format outside the supported sets.
var ErrUnimplemented = memory.ErrUnimplemented

// NewDesc builds a descriptor for dims held in the given format.
func NewDesc(dims Dims, dtype DataType, format layout.Format) (*Desc, error) {
	return memory.NewDesc(dims, dtype, format)
}

// NewCustomBlocked builds a descriptor with explicit per-axis blocking.
func NewCustomBlocked(dims Dims, blocks []int, dtype DataType) (*Desc, error) {
	return memory.NewCustomBlocked(dims, blocks, dtype)
}

// ZeroPad zeroes every padding element of the described buffer.
func ZeroPad(md *Desc, data []byte) error { return memory.ZeroPad(md, data) }

// ZeroPadConfig is ZeroPad with explicit parallel execution settings.
func ZeroPadConfig(md *Desc, data []byte, cfg Config) error {
	return memory.ZeroPadConfig(md, data, cfg)
}
