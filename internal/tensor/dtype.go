// Package tensor provides the element-type and dimension plumbing shared
// by the blockmem memory-layout packages.
package tensor

// Scalar is a constraint for supported buffer element types.
// It uses Go generics to ensure compile-time type safety.
type Scalar interface {
	~float32 | ~int32 | ~int16 | ~int8 | ~uint8
}

// DataType represents runtime type information for buffer elements.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Int32
	Int16
	Int8
	Uint8
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Int16:
		return 2
	case Int8, Uint8:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Int16:
		return "int16"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Scalar](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case int32:
		return Int32
	case int16:
		return Int16
	case int8:
		return Int8
	case uint8:
		return Uint8
	default:
		panic("unsupported type")
	}
}

// Infer reports the DataType of the type parameter T.
func Infer[T Scalar]() DataType {
	var zero T
	return inferDataType(zero)
}
