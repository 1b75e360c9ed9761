package driver

import "testing"

// rowMajorStride returns the element strides for a row-major array of
// the given shape, matching C-contiguous layout.
func rowMajorStride(shape []int) []int64 {
	stride := make([]int64, len(shape))
	acc := int64(1)
	for i := len(shape) - 1; i >= 0; i-- {
		stride[i] = acc
		acc *= int64(shape[i])
	}
	return stride
}

func TestIter_VisitsEveryLineOnce(t *testing.T) {
	shape := []int{2, 3, 4}
	stride := rowMajorStride(shape)

	for axis := 0; axis < len(shape); axis++ {
		axis := axis
		it := NewIter(shape, stride, axis)
		seen := map[int64]bool{}
		count := 0
		for !it.Done() {
			seen[it.Offset()] = true
			count++
			it.Advance()
		}

		wantLines := 1
		for i, n := range shape {
			if i != axis {
				wantLines *= n
			}
		}
		if count != wantLines {
			t.Fatalf("axis %d: visited %d lines, want %d", axis, count, wantLines)
		}
		if len(seen) != wantLines {
			t.Fatalf("axis %d: %d distinct offsets, want %d", axis, len(seen), wantLines)
		}
	}
}

func TestIter_OffsetsCoverFullLine(t *testing.T) {
	shape := []int{3, 5}
	stride := rowMajorStride(shape)
	it := NewIter(shape, stride, 1)

	touched := make([]bool, 15)
	for !it.Done() {
		for i := 0; i < it.Len(); i++ {
			touched[it.Offset()+int64(i)*it.Stride()] = true
		}
		it.Advance()
	}
	for i, ok := range touched {
		if !ok {
			t.Fatalf("element %d never touched", i)
		}
	}
}

func TestIter_ZeroExtentIsImmediatelyDone(t *testing.T) {
	it := NewIter([]int{0, 3}, rowMajorStride([]int{0, 3}), 1)
	if !it.Done() {
		t.Fatal("expected Done() on zero-extent shape")
	}
}
