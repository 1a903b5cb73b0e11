// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout is the public API for blockmem's format enumeration
// and family classification.
//
// Every recognized physical memory format is one Format constant; the
// classification table behind Resolve maps each format to the family of
// zero-padding index arithmetic it needs:
//
//	info := layout.Resolve(layout.NChw16c)
//	// info.Family == layout.FamilyChannelBlocked, info.Tile == 16
package layout

import "github.com/born-ml/blockmem/internal/layout"

// Format identifies one physical memory layout.
type Format = layout.Format

// Family identifies a zero-padding convention.
type Family = layout.Family

// Info is the classification record for a format.
type Info = layout.Info

// Order is the block-level memory order class of a format.
type Order = layout.Order

// JointRule selects the in-tile index formula of a jointly-blocked format.
type JointRule = layout.JointRule

// Resolve classifies a format.
func Resolve(f Format) Info { return layout.Resolve(f) }

// Formats returns every defined format.
func Formats() []Format { return layout.Formats() }

// Family constants.
const (
	FamilyUnsupported        Family = layout.FamilyUnsupported
	FamilyPlain              Family = layout.FamilyPlain
	FamilyChannelBlocked     Family = layout.FamilyChannelBlocked
	FamilyWeightOutBlocked   Family = layout.FamilyWeightOutBlocked
	FamilyWeightInBlocked    Family = layout.FamilyWeightInBlocked
	FamilyWeightJointBlocked Family = layout.FamilyWeightJointBlocked
	FamilyWeightGroupBlocked Family = layout.FamilyWeightGroupBlocked
	FamilyGenericBlocked     Family = layout.FamilyGenericBlocked
)

// Format constants.
const (
	FormatUndef Format = layout.FormatUndef

	X     Format = layout.X
	NC    Format = layout.NC
	NCw   Format = layout.NCw
	NChw  Format = layout.NChw
	NCdhw Format = layout.NCdhw
	NHWC  Format = layout.NHWC
	OIw   Format = layout.OIw
	OIhw  Format = layout.OIhw
	OIdhw Format = layout.OIdhw
	Goihw Format = layout.Goihw

	NCw8c    Format = layout.NCw8c
	NCw16c   Format = layout.NCw16c
	NChw8c   Format = layout.NChw8c
	NChw16c  Format = layout.NChw16c
	NCdhw8c  Format = layout.NCdhw8c
	NCdhw16c Format = layout.NCdhw16c

	Oiw16o    Format = layout.Oiw16o
	Owi8o     Format = layout.Owi8o
	Owi16o    Format = layout.Owi16o
	Ohwi8o    Format = layout.Ohwi8o
	Ohwi16o   Format = layout.Ohwi16o
	Oihw16o   Format = layout.Oihw16o
	Oidhw16o  Format = layout.Oidhw16o
	Odhwi8o   Format = layout.Odhwi8o
	Odhwi16o  Format = layout.Odhwi16o
	GOiw16o   Format = layout.GOiw16o
	GOwi8o    Format = layout.GOwi8o
	GOwi16o   Format = layout.GOwi16o
	GOhwi8o   Format = layout.GOhwi8o
	GOhwi16o  Format = layout.GOhwi16o
	GOihw16o  Format = layout.GOihw16o
	GOidhw16o Format = layout.GOidhw16o
	GOdhwi8o  Format = layout.GOdhwi8o
	GOdhwi16o Format = layout.GOdhwi16o

	OIhw8i   Format = layout.OIhw8i
	OIhw16i  Format = layout.OIhw16i
	OIdhw8i  Format = layout.OIdhw8i
	OIdhw16i Format = layout.OIdhw16i

	OIw8i8o       Format = layout.OIw8i8o
	OIw8o8i       Format = layout.OIw8o8i
	OIw16i16o     Format = layout.OIw16i16o
	OIw16o16i     Format = layout.OIw16o16i
	OIw8i16o2i    Format = layout.OIw8i16o2i
	OIw8o16i2o    Format = layout.OIw8o16i2o
	IOw16o16i     Format = layout.IOw16o16i
	OIhw8i8o      Format = layout.OIhw8i8o
	OIhw8o8i      Format = layout.OIhw8o8i
	OIhw16i16o    Format = layout.OIhw16i16o
	OIhw16o16i    Format = layout.OIhw16o16i
	OIhw4i16o4i   Format = layout.OIhw4i16o4i
	OIhw8i16o2i   Format = layout.OIhw8i16o2i
	OIhw8o16i2o   Format = layout.OIhw8o16i2o
	IOhw16o16i    Format = layout.IOhw16o16i
	OIdhw8i8o     Format = layout.OIdhw8i8o
	OIdhw8o8i     Format = layout.OIdhw8o8i
	OIdhw16i16o   Format = layout.OIdhw16i16o
	OIdhw16o16i   Format = layout.OIdhw16o16i
	OIdhw8i16o2i  Format = layout.OIdhw8i16o2i
	GOIw8i8o      Format = layout.GOIw8i8o
	GOIw8o8i      Format = layout.GOIw8o8i
	GOIw16i16o    Format = layout.GOIw16i16o
	GOIw16o16i    Format = layout.GOIw16o16i
	GOIw8i16o2i   Format = layout.GOIw8i16o2i
	GOIw8o16i2o   Format = layout.GOIw8o16i2o
	GIOw16o16i    Format = layout.GIOw16o16i
	GOIhw8i8o     Format = layout.GOIhw8i8o
	GOIhw8o8i     Format = layout.GOIhw8o8i
	GOIhw16i16o   Format = layout.GOIhw16i16o
	GOIhw16o16i   Format = layout.GOIhw16o16i
	GOIhw4i16o4i  Format = layout.GOIhw4i16o4i
	GOIhw8i16o2i  Format = layout.GOIhw8i16o2i
	GOIhw8o16i2o  Format = layout.GOIhw8o16i2o
	GIOhw16o16i   Format = layout.GIOhw16o16i
	GOIdhw8i8o    Format = layout.GOIdhw8i8o
	GOIdhw8o8i    Format = layout.GOIdhw8o8i
	GOIdhw16i16o  Format = layout.GOIdhw16i16o
	GOIdhw16o16i  Format = layout.GOIdhw16o16i
	GOIdhw8i16o2i Format = layout.GOIdhw8i16o2i

	Goihw8g  Format = layout.Goihw8g
	Goihw16g Format = layout.Goihw16g

	BlockedCustom Format = layout.BlockedCustom
	WinoFmt       Format = layout.WinoFmt
)
