package im2latex

import (
	"math"
	"math/rand"
	"testing"
)

func TestRescaleUniformFactor(t *testing.T) {
	probe := rand.New(rand.NewSource(4))
	f := 0.7 + (1.3-0.7)*probe.Float64()

	rs := &Rescale{ScaleMin: 0.7, ScaleMax: 1.3}
	imgs := []*Image{NewImage(40, 60, 1), NewImage(20, 100, 1)}
	out := rs.Apply(imgs, rand.New(rand.NewSource(4)))

	for i, img := range imgs {
		wantH := int(math.Round(float64(img.Height) * f))
		wantW := int(math.Round(float64(img.Width) * f))
		if out[i].Height != wantH || out[i].Width != wantW {
			t.Errorf("image %d: shape should be %dx%d but got %dx%d",
				i, wantH, wantW, out[i].Height, out[i].Width)
		}
	}
}

func TestRescaleDegenerateRange(t *testing.T) {
	rs := &Rescale{ScaleMin: 1, ScaleMax: 1}
	src := patternImage(9, 11, 3)
	out := rs.Apply([]*Image{src}, nil)[0]
	if out.Height != 9 || out.Width != 11 {
		t.Fatalf("shape should be 9x11 but got %dx%d", out.Height, out.Width)
	}
	for i, v := range out.Data {
		if v != src.Data[i] {
			t.Fatalf("value %d: should be %d but got %d", i, src.Data[i], v)
		}
	}
}
