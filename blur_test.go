package im2latex

import (
	"math"
	"testing"
)

func TestGaussianKernelNormalized(t *testing.T) {
	for _, sigma := range []float64{0.3, 0.8, 1.15, 3} {
		k := gaussianKernel3(sigma)
		sum := k[0] + k[1] + k[2]
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("sigma %f: kernel sum should be 1 but got %f", sigma, sum)
		}
		if k[0] != k[2] {
			t.Errorf("sigma %f: kernel should be symmetric", sigma)
		}
	}
}

func TestBlurConstant(t *testing.T) {
	img := NewImage(4, 6, 3)
	for i := range img.Data {
		img.Data[i] = 137
	}
	out := (&Blur{SigmaX: 1.15}).Apply([]*Image{img}, nil)[0]
	for i, v := range out.Data {
		if v != 137 {
			t.Fatalf("value %d: should be 137 but got %d", i, v)
		}
	}
}

func TestBlurSymmetric(t *testing.T) {
	img := NewImage(1, 5, 1)
	img.Data[2] = 255
	out := (&Blur{SigmaX: 1.15}).Apply([]*Image{img}, nil)[0]
	if out.At(0, 1, 0) != out.At(0, 3, 0) {
		t.Errorf("sides should match: %d vs %d", out.At(0, 1, 0), out.At(0, 3, 0))
	}
	if out.At(0, 2, 0) <= out.At(0, 1, 0) {
		t.Errorf("center %d should stay above side %d",
			out.At(0, 2, 0), out.At(0, 1, 0))
	}
	if out.At(0, 0, 0) != 0 || out.At(0, 4, 0) != 0 {
		t.Errorf("far pixels should stay 0: %d and %d",
			out.At(0, 0, 0), out.At(0, 4, 0))
	}
}
