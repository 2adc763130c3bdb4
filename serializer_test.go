package im2latex

import (
	"reflect"
	"testing"

	"github.com/unixpickle/serializer"
)

func TestTransformSerialize(t *testing.T) {
	transforms := []Transform{
		&ResizePad{TargetHeight: 96, TargetWidth: 480},
		&CropPad{TargetHeight: 96, TargetWidth: 480},
		&Resize{TargetHeight: 64, TargetWidth: 256},
		&RandomPad{PadLeft: 50, PadRight: 50, PadBottom: 20, PadTop: 20},
		&Blur{SigmaX: 1.15},
		&Shift{ShiftX: 10, ShiftY: 5},
		&RandomNoise{Intensity: 0.1},
		&Erosion{KernelSize: 3, Iterations: 1},
		&Dilation{KernelSize: 3, Iterations: 3},
		&RandomBolding{
			KernelSize:   3,
			Iterations:   1,
			Threshold:    160,
			ResThreshold: 190,
			SigmaX:       0.8,
			Distr:        0.7,
		},
		&Rescale{ScaleMin: 0.7, ScaleMax: 1.3},
		&Rotate{Angle: 3},
		&Bin{Threshold: 120},
		&AdaptiveBin{BlockSize: 11, MeanC: 10},
	}
	for _, tf := range transforms {
		chain := Chain{tf}
		data, err := serializer.SerializeAny(chain)
		if err != nil {
			t.Errorf("%T: %s", tf, err)
			continue
		}
		var newChain Chain
		if err := serializer.DeserializeAny(data, &newChain); err != nil {
			t.Errorf("%T: %s", tf, err)
			continue
		}
		if !reflect.DeepEqual(chain, newChain) {
			t.Errorf("%T: incorrect result", tf)
		}
	}
}

func TestChainSerialize(t *testing.T) {
	chain := Chain{
		&Rescale{ScaleMin: 0.7, ScaleMax: 1.3},
		&Blur{SigmaX: 1.15},
		&ResizePad{TargetHeight: 96, TargetWidth: 480},
	}
	data, err := serializer.SerializeAny(chain)
	if err != nil {
		t.Fatal(err)
	}
	var newChain Chain
	if err := serializer.DeserializeAny(data, &newChain); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(chain, newChain) {
		t.Fatal("chains not equal")
	}
}
