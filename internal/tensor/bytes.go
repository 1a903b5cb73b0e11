package tensor

import (
	"fmt"
	"unsafe"
)

// SliceOf reinterprets a raw byte buffer as a slice of n elements of T.
// Panics if the buffer is too small to hold them.
func SliceOf[T Scalar](data []byte, n int) []T {
	var zero T
	need := n * int(unsafe.Sizeof(zero))
	if len(data) < need {
		panic(fmt.Sprintf("buffer too small: need %d bytes for %d %s elements, have %d",
			need, n, inferDataType(zero), len(data)))
	}
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy reinterpretation, bounds checked above
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
}
