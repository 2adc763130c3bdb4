package im2latex

import "testing"

func TestRandomNoiseZeroIntensity(t *testing.T) {
	src := patternImage(6, 9, 3)
	out := (&RandomNoise{Intensity: 0}).Apply([]*Image{src}, nil)[0]
	for i, v := range out.Data {
		if v != src.Data[i] {
			t.Fatalf("value %d: should be %d but got %d", i, src.Data[i], v)
		}
	}
}

func TestRandomNoiseWraparound(t *testing.T) {
	// A constant image has zero standard deviation, so every
	// noise draw equals the mean exactly and the modular
	// addition is fully deterministic: 200+200 wraps to 144.
	src := NewImage(3, 3, 1)
	for i := range src.Data {
		src.Data[i] = 200
	}
	out := (&RandomNoise{Intensity: 1}).Apply([]*Image{src}, nil)[0]
	for i, v := range out.Data {
		if v != 144 {
			t.Fatalf("value %d: should be 144 but got %d", i, v)
		}
	}
}
