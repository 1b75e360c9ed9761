package scratch

import (
	"testing"
	"unsafe"
)

func TestBytes_Aligned(t *testing.T) {
	for _, n := range []int{1, 7, 64, 1000} {
		buf := Bytes(n)
		if len(buf) != n {
			t.Fatalf("Bytes(%d): len = %d", n, len(buf))
		}
		addr := uintptr(unsafe.Pointer(&buf[0]))
		if addr%8 != 0 {
			t.Errorf("Bytes(%d): address %#x not 8-byte aligned", n, addr)
		}
	}
}

func TestBytes_Zero(t *testing.T) {
	if Bytes(0) != nil {
		t.Error("Bytes(0) should be nil")
	}
}

func TestComplex128_Usable(t *testing.T) {
	buf := Complex128(8)
	if len(buf) != 8 {
		t.Fatalf("len = %d, want 8", len(buf))
	}
	for i := range buf {
		buf[i] = complex(float64(i), -float64(i))
	}
	for i := range buf {
		if real(buf[i]) != float64(i) {
			t.Errorf("buf[%d] = %v", i, buf[i])
		}
	}
}

func TestFloat64_Usable(t *testing.T) {
	buf := Float64(5)
	for i := range buf {
		buf[i] = float64(i) * 1.5
	}
	if buf[4] != 6 {
		t.Errorf("buf[4] = %v, want 6", buf[4])
	}
}
