package tensor

import "fmt"

// Dims represents the logical sizes of a tensor, one entry per axis.
type Dims []int

// Product returns the total number of elements spanned by the dims.
func (d Dims) Product() int {
	if len(d) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range d {
		n *= dim
	}
	return n
}

// ProductFrom returns the product of the axes starting at axis k.
// k past the last axis yields 1.
func (d Dims) ProductFrom(k int) int {
	n := 1
	for _, dim := range d[min(k, len(d)):] {
		n *= dim
	}
	return n
}

// Validate checks that every axis size is positive.
func (d Dims) Validate() error {
	for i, dim := range d {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at axis %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two dims are equal.
func (d Dims) Equal(other Dims) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the dims.
func (d Dims) Clone() Dims {
	clone := make(Dims, len(d))
	copy(clone, d)
	return clone
}
