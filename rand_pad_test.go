package im2latex

import (
	"math/rand"
	"testing"
)

func TestRandomPadZeroBounds(t *testing.T) {
	src := patternImage(5, 7, 3)
	out := (&RandomPad{}).Apply([]*Image{src}, nil)[0]
	if out.Height != 5 || out.Width != 7 {
		t.Fatalf("shape should be 5x7 but got %dx%d", out.Height, out.Width)
	}
	for i, v := range out.Data {
		if v != src.Data[i] {
			t.Fatalf("value %d: should be %d but got %d", i, src.Data[i], v)
		}
	}
}

func TestRandomPadContent(t *testing.T) {
	src := patternImage(6, 6, 1)
	probe := rand.New(rand.NewSource(11))
	left := probe.Intn(10)
	right := probe.Intn(20)
	bottom := probe.Intn(5)
	top := probe.Intn(8)

	rp := &RandomPad{PadLeft: 10, PadRight: 20, PadBottom: 5, PadTop: 8}
	out := rp.Apply([]*Image{src}, rand.New(rand.NewSource(11)))[0]

	if out.Height != 6+top+bottom || out.Width != 6+left+right {
		t.Fatalf("shape should be %dx%d but got %dx%d",
			6+top+bottom, 6+left+right, out.Height, out.Width)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if out.At(y+top, x+left, 0) != src.At(y, x, 0) {
				t.Fatalf("pixel (%d,%d): should be %d but got %d",
					y, x, src.At(y, x, 0), out.At(y+top, x+left, 0))
			}
		}
	}
	if top > 0 && out.At(0, 0, 0) != WhiteValue {
		t.Error("top border should be white")
	}
}

func TestRandomPadUniformAcrossBatch(t *testing.T) {
	imgs := []*Image{NewImage(5, 5, 1), NewImage(9, 3, 1)}
	rp := &RandomPad{PadLeft: 6, PadRight: 6, PadBottom: 6, PadTop: 6}
	out := rp.Apply(imgs, rand.New(rand.NewSource(2)))
	if out[0].Height-5 != out[1].Height-9 {
		t.Errorf("vertical padding differs: %d vs %d",
			out[0].Height-5, out[1].Height-9)
	}
	if out[0].Width-5 != out[1].Width-3 {
		t.Errorf("horizontal padding differs: %d vs %d",
			out[0].Width-5, out[1].Width-3)
	}
}
