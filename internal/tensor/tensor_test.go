package tensor

import "testing"

// DataType tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Int32, 4},
		{Int16, 2},
		{Int8, 1},
		{Uint8, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Int32, "int32"},
		{Int16, "int16"},
		{Int8, "int8"},
		{Uint8, "uint8"},
		{DataType(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("DataType.String() = %q, want %q", got, tt.str)
		}
	}
}

func TestInfer(t *testing.T) {
	if dt := Infer[float32](); dt != Float32 {
		t.Errorf("Infer[float32]() = %v, want Float32", dt)
	}
	if dt := Infer[int32](); dt != Int32 {
		t.Errorf("Infer[int32]() = %v, want Int32", dt)
	}
	if dt := Infer[int16](); dt != Int16 {
		t.Errorf("Infer[int16]() = %v, want Int16", dt)
	}
	if dt := Infer[int8](); dt != Int8 {
		t.Errorf("Infer[int8]() = %v, want Int8", dt)
	}
	if dt := Infer[uint8](); dt != Uint8 {
		t.Errorf("Infer[uint8]() = %v, want Uint8", dt)
	}
}

// Dims tests

func TestDimsProduct(t *testing.T) {
	tests := []struct {
		dims     Dims
		expected int
	}{
		{Dims{}, 1},
		{Dims{5}, 5},
		{Dims{3, 4}, 12},
		{Dims{2, 3, 4}, 24},
		{Dims{1, 1, 1}, 1},
	}

	for _, tt := range tests {
		if got := tt.dims.Product(); got != tt.expected {
			t.Errorf("Dims%v.Product() = %d, want %d", tt.dims, got, tt.expected)
		}
	}
}

func TestDimsProductFrom(t *testing.T) {
	d := Dims{2, 3, 4, 5}
	tests := []struct {
		k        int
		expected int
	}{
		{0, 120},
		{1, 60},
		{2, 20},
		{3, 5},
		{4, 1},
		{9, 1},
	}

	for _, tt := range tests {
		if got := d.ProductFrom(tt.k); got != tt.expected {
			t.Errorf("ProductFrom(%d) = %d, want %d", tt.k, got, tt.expected)
		}
	}
}

func TestDimsValidate(t *testing.T) {
	if err := (Dims{2, 3, 4}).Validate(); err != nil {
		t.Errorf("Validate() on valid dims returned %v", err)
	}
	if err := (Dims{2, 0, 4}).Validate(); err == nil {
		t.Error("Validate() accepted a zero dim")
	}
	if err := (Dims{-1}).Validate(); err == nil {
		t.Error("Validate() accepted a negative dim")
	}
}

func TestDimsEqualClone(t *testing.T) {
	d := Dims{2, 3, 4}
	c := d.Clone()
	if !d.Equal(c) {
		t.Errorf("Clone not equal: %v vs %v", d, c)
	}
	c[0] = 9
	if d[0] == 9 {
		t.Error("Clone shares storage with the original")
	}
	if d.Equal(Dims{2, 3}) {
		t.Error("Equal true for different ranks")
	}
	if d.Equal(Dims{2, 3, 5}) {
		t.Error("Equal true for different sizes")
	}
}

// SliceOf tests

func TestSliceOf(t *testing.T) {
	buf := make([]byte, 4*4)
	f := SliceOf[float32](buf, 4)
	if len(f) != 4 {
		t.Fatalf("len = %d, want 4", len(f))
	}
	f[2] = 1.0
	// float32(1.0) is 0x3f800000 little-endian.
	if buf[8+3] != 0x3f {
		t.Errorf("write through SliceOf not visible in backing bytes")
	}

	u := SliceOf[uint8](buf, 16)
	if u[11] != 0x3f {
		t.Errorf("uint8 view disagrees with backing bytes")
	}
}

func TestSliceOfTooSmall(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SliceOf did not panic on a short buffer")
		}
	}()
	SliceOf[int32](make([]byte, 7), 2)
}
