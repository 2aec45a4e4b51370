package accum

import "testing"

func TestAccumulateNonZeroSaturates(t *testing.T) {
	const n = 3000
	src := make([]int16, n)
	src[0] = 200
	dst := make([]byte, n)
	accumulateNonZero(dst, src)
	for i, v := range dst {
		if v != 200 {
			t.Fatalf("dst[%d] = %d, want 200", i, v)
		}
	}
	for i, v := range src {
		if v != 0 {
			t.Fatalf("src[%d] = %d, want 0 after accumulation", i, v)
		}
	}
}

func TestAccumulateNonZeroClampsAbove255(t *testing.T) {
	const n = 5000
	src := make([]int16, n)
	src[0] = 300
	dst := make([]byte, n)
	accumulateNonZero(dst, src)
	for i, v := range dst {
		if v != 255 {
			t.Fatalf("dst[%d] = %d, want 255", i, v)
		}
	}
}

func TestAccumulateEvenOddFolds(t *testing.T) {
	const n = 3000
	src := make([]int16, n)
	src[0] = 300
	dst := make([]byte, n)
	accumulateEvenOdd(dst, src)
	for i, v := range dst {
		if v != 212 {
			t.Fatalf("dst[%d] = %d, want 212", i, v)
		}
	}
}

func TestMatteFillerDispatchesByRule(t *testing.T) {
	src := []int16{200, 0, 0}
	dst := make([]byte, 3)
	f := MatteFiller{Rule: NonZero}
	f.FillRow(dst, src)
	want := []byte{200, 200, 200}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestColorFillerSourceOverOpaqueWhite(t *testing.T) {
	src := []int16{255, 0}
	dst := make([]byte, 8) // 2 RGBA8 pixels
	f := ColorFiller{Rule: NonZero, R: 255, G: 255, B: 255, A: 255}
	f.FillRow(dst, src)
	if dst[0] != 255 || dst[1] != 255 || dst[2] != 255 || dst[3] != 255 {
		t.Fatalf("pixel 0 = %v, want opaque white", dst[0:4])
	}
}
