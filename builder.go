package im2latex

import (
	"fmt"

	"github.com/unixpickle/essentials"
)

// Default parameters applied by BuildChain when a
// configuration entry leaves them unset.
const (
	DefaultErosionKernel    = 3
	DefaultErosionIters     = 1
	DefaultDilationKernel   = 3
	DefaultDilationIters    = 3
	DefaultBoldingKernel    = 3
	DefaultBoldingIters     = 1
	DefaultBoldingThreshold = 160
	DefaultBoldingResThresh = 190
	DefaultBoldingSigma     = 0.8
	DefaultBoldingDistr     = 0.7
)

// A TransformConfig is one entry of a declarative
// transform list: a transform name plus its parameters.
// Only the parameters the named transform uses are read.
type TransformConfig struct {
	Name string `toml:"name" json:"name"`

	// TargetShape is (height, width).
	TargetShape []int `toml:"target_shape" json:"target_shape"`

	// Pads is (left, right, bottom, top).
	Pads []int `toml:"pads" json:"pads"`

	// Shifts is (x, y).
	Shifts []int `toml:"shifts" json:"shifts"`

	// Scales is (min, max).
	Scales []float64 `toml:"scales" json:"scales"`

	Threshold    float64 `toml:"threshold" json:"threshold"`
	ResThreshold float64 `toml:"res_threshold" json:"res_threshold"`
	Angle        float64 `toml:"angle" json:"angle"`
	Intensity    float64 `toml:"intensivity" json:"intensivity"`
	KernelSize   int     `toml:"kernel_size" json:"kernel_size"`
	Iterations   int     `toml:"iterations" json:"iterations"`
	BlockSize    int     `toml:"block_size" json:"block_size"`
	SigmaX       float64 `toml:"sigmaX" json:"sigmaX"`
	Distr        float64 `toml:"distr" json:"distr"`
	MeanC        float64 `toml:"mean_c" json:"mean_c"`
}

// BuildChain builds an ordered transform chain from
// configuration entries.
// Unrecognized transform names are reported as errors
// rather than skipped.
func BuildChain(cfgs []TransformConfig) (Chain, error) {
	res := make(Chain, 0, len(cfgs))
	for i, cfg := range cfgs {
		t, err := buildTransform(&cfg)
		if err != nil {
			return nil, essentials.AddCtx(fmt.Sprintf("build transform %d", i), err)
		}
		res = append(res, t)
	}
	return res, nil
}

func buildTransform(cfg *TransformConfig) (Transform, error) {
	switch cfg.Name {
	case "ResizePad":
		h, w, err := targetShape(cfg)
		if err != nil {
			return nil, err
		}
		return &ResizePad{TargetHeight: h, TargetWidth: w}, nil
	case "CropPad":
		h, w, err := targetShape(cfg)
		if err != nil {
			return nil, err
		}
		return &CropPad{TargetHeight: h, TargetWidth: w}, nil
	case "Resize":
		h, w, err := targetShape(cfg)
		if err != nil {
			return nil, err
		}
		return &Resize{TargetHeight: h, TargetWidth: w}, nil
	case "RandomPad":
		if len(cfg.Pads) != 4 {
			return nil, fmt.Errorf("pads should have 4 entries, not %d", len(cfg.Pads))
		}
		return &RandomPad{
			PadLeft:   cfg.Pads[0],
			PadRight:  cfg.Pads[1],
			PadBottom: cfg.Pads[2],
			PadTop:    cfg.Pads[3],
		}, nil
	case "Blur":
		sigma := cfg.SigmaX
		if sigma == 0 {
			sigma = DefaultBlurSigma
		}
		return &Blur{SigmaX: sigma}, nil
	case "Shift":
		if len(cfg.Shifts) != 2 {
			return nil, fmt.Errorf("shifts should have 2 entries, not %d", len(cfg.Shifts))
		}
		return &Shift{ShiftX: cfg.Shifts[0], ShiftY: cfg.Shifts[1]}, nil
	case "RandomNoise":
		return &RandomNoise{Intensity: cfg.Intensity}, nil
	case "Erosion":
		return &Erosion{
			KernelSize: intOrDefault(cfg.KernelSize, DefaultErosionKernel),
			Iterations: intOrDefault(cfg.Iterations, DefaultErosionIters),
		}, nil
	case "Dilation":
		return &Dilation{
			KernelSize: intOrDefault(cfg.KernelSize, DefaultDilationKernel),
			Iterations: intOrDefault(cfg.Iterations, DefaultDilationIters),
		}, nil
	case "RandomBolding":
		return &RandomBolding{
			KernelSize:   intOrDefault(cfg.KernelSize, DefaultBoldingKernel),
			Iterations:   intOrDefault(cfg.Iterations, DefaultBoldingIters),
			Threshold:    floatOrDefault(cfg.Threshold, DefaultBoldingThreshold),
			ResThreshold: floatOrDefault(cfg.ResThreshold, DefaultBoldingResThresh),
			SigmaX:       floatOrDefault(cfg.SigmaX, DefaultBoldingSigma),
			Distr:        floatOrDefault(cfg.Distr, DefaultBoldingDistr),
		}, nil
	case "Rescale":
		if len(cfg.Scales) != 2 {
			return nil, fmt.Errorf("scales should have 2 entries, not %d", len(cfg.Scales))
		}
		return &Rescale{ScaleMin: cfg.Scales[0], ScaleMax: cfg.Scales[1]}, nil
	case "Rotate":
		return &Rotate{Angle: cfg.Angle}, nil
	case "Bin":
		return &Bin{Threshold: cfg.Threshold}, nil
	case "AdaptiveBin":
		if cfg.BlockSize < 3 || cfg.BlockSize%2 == 0 {
			return nil, fmt.Errorf("block_size should be an odd number >= 3, not %d",
				cfg.BlockSize)
		}
		return &AdaptiveBin{
			BlockSize: cfg.BlockSize,
			MeanC:     floatOrDefault(cfg.MeanC, DefaultAdaptiveMeanC),
		}, nil
	default:
		return nil, fmt.Errorf("unknown transform: %q", cfg.Name)
	}
}

func targetShape(cfg *TransformConfig) (height, width int, err error) {
	if len(cfg.TargetShape) != 2 {
		return 0, 0, fmt.Errorf("target_shape should have 2 entries, not %d",
			len(cfg.TargetShape))
	}
	if cfg.TargetShape[0] < 1 || cfg.TargetShape[1] < 1 {
		return 0, 0, fmt.Errorf("target_shape out of range: %v", cfg.TargetShape)
	}
	return cfg.TargetShape[0], cfg.TargetShape[1], nil
}

func intOrDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func floatOrDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
