// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/blockmem/layout"
	"github.com/born-ml/blockmem/memory"
)

func TestPublicZeroPad(t *testing.T) {
	md, err := memory.NewDesc(memory.Dims{2, 20, 4, 4}, memory.Float32, layout.NChw16c)
	require.NoError(t, err)

	info := layout.Resolve(md.Format())
	assert.Equal(t, layout.FamilyChannelBlocked, info.Family)
	assert.Equal(t, 16, info.Tile)

	buf := make([]byte, md.ByteSize())
	for i := range buf {
		buf[i] = 0xFF
	}

	require.NoError(t, memory.ZeroPad(md, buf))

	// Padding exists for this shape, so some bytes must have been zeroed.
	zeroed := 0
	for _, b := range buf {
		if b == 0 {
			zeroed++
		}
	}
	assert.Equal(t, (md.NElems(true)-md.NElems(false))*4, zeroed)
}

func TestPublicZeroPadUnimplemented(t *testing.T) {
	md, err := memory.NewDesc(memory.Dims{4, 4}, memory.DataType(99), layout.NC)
	require.NoError(t, err)

	err = memory.ZeroPad(md, make([]byte, 512))
	assert.ErrorIs(t, err, memory.ErrUnimplemented)
}
