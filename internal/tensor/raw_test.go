package tensor

import (
	"strings"
	"testing"
)

// RawTensor Tests

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{3, 2}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(Shape{3, 2}) {
		t.Errorf("Shape() = %v, want [3 2]", raw.Shape())
	}
	if raw.DType() != Float32 {
		t.Errorf("DType() = %s, want float32", raw.DType())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}

	// Memory is zero-initialized
	for i, v := range raw.AsFloat32() {
		if v != 0 {
			t.Errorf("element %d = %f, want 0 (zero-initialized)", i, v)
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}, Float32, CPU); err == nil {
		t.Error("NewRaw should reject shape with zero dimension")
	}
}

func TestRawTensorAsFloat32(t *testing.T) {
	raw, _ := NewRaw(Shape{3}, Float32, CPU)
	data := raw.AsFloat32()

	if len(data) != 3 {
		t.Errorf("AsFloat32 length = %d, want 3", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if raw.AsFloat32()[0] != 42 {
		t.Error("AsFloat32 should return zero-copy slice")
	}
}

func TestRawTensorAsFloat64(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float64, CPU)
	data := raw.AsFloat64()

	if len(data) != 4 {
		t.Errorf("AsFloat64 length = %d, want 4", len(data))
	}

	data[3] = 1.5
	if raw.AsFloat64()[3] != 1.5 {
		t.Error("AsFloat64 should return zero-copy slice")
	}
}

func TestRawTensorAsWrongDType(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float32, CPU)

	defer func() {
		if recover() == nil {
			t.Error("AsInt32 on a float32 tensor should panic")
		}
	}()
	raw.AsInt32()
}

func TestRawTensorClone(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float32, CPU)
	raw.AsFloat32()[0] = 7

	clone := raw.Clone()

	if raw.IsUnique() {
		t.Error("Original should not be unique after Clone()")
	}
	if clone.AsFloat32()[0] != 7 {
		t.Error("Clone should share the buffer")
	}

	clone.Release()
	if !raw.IsUnique() {
		t.Error("Original should be unique again after clone Release()")
	}
}

func TestRawTensorForceNonUnique(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float32, CPU)

	if !raw.IsUnique() {
		t.Error("New RawTensor should be unique initially")
	}

	restore := raw.ForceNonUnique()
	if raw.IsUnique() {
		t.Error("After ForceNonUnique(), IsUnique() should return false")
	}

	restore()
	if !raw.IsUnique() {
		t.Error("After restore, IsUnique() should return true again")
	}
}

func TestRawTensorString(t *testing.T) {
	raw, _ := FromSlice([]float32{1, 2, 3}, Shape{3}, CPU)
	s := raw.String()

	if !strings.Contains(s, "float32") || !strings.Contains(s, "[3]") {
		t.Errorf("String() = %q, want dtype and shape included", s)
	}
	if !strings.Contains(s, "1, 2, 3") {
		t.Errorf("String() = %q, want element values included", s)
	}

	// Large tensors are elided
	big, _ := NewRaw(Shape{100}, Float32, CPU)
	if !strings.Contains(big.String(), "more") {
		t.Errorf("String() on large tensor should elide elements, got %q", big.String())
	}
}
