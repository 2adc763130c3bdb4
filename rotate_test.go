package im2latex

import (
	"math/rand"
	"testing"
)

func TestRotateZeroAngle(t *testing.T) {
	src := patternImage(13, 17, 3)
	out := (&Rotate{Angle: 0}).Apply([]*Image{src}, nil)[0]
	if out.Height != src.Height || out.Width != src.Width {
		t.Fatalf("shape should be %dx%d but got %dx%d",
			src.Height, src.Width, out.Height, out.Width)
	}
	for i, v := range out.Data {
		if v != src.Data[i] {
			t.Fatalf("value %d: should be %d but got %d", i, src.Data[i], v)
		}
	}
}

func TestRotateSharedCanvas(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	imgs := []*Image{patternImage(20, 30, 1), patternImage(20, 30, 1)}
	out := (&Rotate{Angle: 30}).Apply(imgs, r)
	if len(out) != 2 {
		t.Fatalf("len should be 2 but got %d", len(out))
	}
	if out[0].Height != out[1].Height || out[0].Width != out[1].Width {
		t.Errorf("canvases differ: %dx%d vs %dx%d",
			out[0].Height, out[0].Width, out[1].Height, out[1].Width)
	}
	if out[0].Height < 20 || out[0].Width < 30 {
		t.Errorf("canvas %dx%d should not be smaller than the input",
			out[0].Height, out[0].Width)
	}
}

func TestRotateDeterministic(t *testing.T) {
	src := patternImage(10, 14, 1)
	out1 := (&Rotate{Angle: 15}).Apply([]*Image{src}, rand.New(rand.NewSource(5)))
	out2 := (&Rotate{Angle: 15}).Apply([]*Image{src}, rand.New(rand.NewSource(5)))
	if out1[0].Height != out2[0].Height || out1[0].Width != out2[0].Width {
		t.Fatal("seeded runs disagree on shape")
	}
	for i, v := range out1[0].Data {
		if v != out2[0].Data[i] {
			t.Fatalf("value %d: seeded runs disagree", i)
		}
	}
}
