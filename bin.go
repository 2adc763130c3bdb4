package im2latex

import (
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var b Bin
	serializer.RegisterTypedDeserializer(b.SerializerType(), DeserializeBin)
	var a AdaptiveBin
	serializer.RegisterTypedDeserializer(a.SerializerType(), DeserializeAdaptiveBin)
}

// A Bin transform binarizes images at a fixed threshold:
// intensities strictly above Threshold become 255, all
// others 0.
// Multi-channel images are thresholded per channel.
type Bin struct {
	Threshold float64
}

// DeserializeBin deserializes a Bin.
func DeserializeBin(d []byte) (*Bin, error) {
	var thresh serializer.Float64
	if err := serializer.DeserializeAny(d, &thresh); err != nil {
		return nil, essentials.AddCtx("deserialize Bin", err)
	}
	return &Bin{Threshold: float64(thresh)}, nil
}

// Apply binarizes a batch.
func (b *Bin) Apply(imgs []*Image, r *rand.Rand) []*Image {
	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		res[i] = threshold255(img, b.Threshold, false)
	}
	return res
}

// SerializerType returns the unique ID used to serialize
// a Bin with the serializer package.
func (b *Bin) SerializerType() string {
	return "github.com/ygnn123/im2latex.Bin"
}

// Serialize serializes the Bin.
func (b *Bin) Serialize() ([]byte, error) {
	return serializer.SerializeAny(serializer.Float64(b.Threshold))
}

// DefaultAdaptiveMeanC is the mean offset used by
// AdaptiveBin when none is configured.
const DefaultAdaptiveMeanC = 10

// An AdaptiveBin transform converts images to grayscale
// and binarizes each pixel against the mean of its
// BlockSize x BlockSize neighborhood minus MeanC.
type AdaptiveBin struct {
	BlockSize int
	MeanC     float64
}

// DeserializeAdaptiveBin deserializes an AdaptiveBin.
func DeserializeAdaptiveBin(d []byte) (*AdaptiveBin, error) {
	var block serializer.Int
	var meanC serializer.Float64
	if err := serializer.DeserializeAny(d, &block, &meanC); err != nil {
		return nil, essentials.AddCtx("deserialize AdaptiveBin", err)
	}
	return &AdaptiveBin{BlockSize: int(block), MeanC: float64(meanC)}, nil
}

// Apply binarizes a batch.
// Results are single-channel.
func (ab *AdaptiveBin) Apply(imgs []*Image, r *rand.Rand) []*Image {
	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		gray := grayscale(img)
		out := NewImage(gray.Height, gray.Width, 1)
		for y := 0; y < gray.Height; y++ {
			for x := 0; x < gray.Width; x++ {
				t := blockMean(gray, y, x, ab.BlockSize) - ab.MeanC
				if float64(gray.At(y, x, 0)) > t {
					out.Set(y, x, 0, 255)
				}
			}
		}
		res[i] = out
	}
	return res
}

// SerializerType returns the unique ID used to serialize
// an AdaptiveBin with the serializer package.
func (ab *AdaptiveBin) SerializerType() string {
	return "github.com/ygnn123/im2latex.AdaptiveBin"
}

// Serialize serializes the AdaptiveBin.
func (ab *AdaptiveBin) Serialize() ([]byte, error) {
	return serializer.SerializeAny(
		serializer.Int(ab.BlockSize),
		serializer.Float64(ab.MeanC),
	)
}

// grayscale converts a BGR image to single-channel using
// the standard BT.601 weights.
// Single-channel input is copied through.
func grayscale(img *Image) *Image {
	if img.Depth == 1 {
		return img.Clone()
	}
	if img.Depth != 3 {
		panic("grayscale conversion requires 1 or 3 channels")
	}
	res := NewImage(img.Height, img.Width, 1)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			v := 0.114*float64(img.At(y, x, 0)) +
				0.587*float64(img.At(y, x, 1)) +
				0.299*float64(img.At(y, x, 2))
			res.Set(y, x, 0, clampByte(v))
		}
	}
	return res
}

// threshold255 maps every intensity to 255 or 0.
// With orEqual set, values equal to the threshold also map
// to 255.
func threshold255(img *Image, thresh float64, orEqual bool) *Image {
	res := NewImage(img.Height, img.Width, img.Depth)
	for i, v := range img.Data {
		pass := float64(v) > thresh
		if orEqual {
			pass = float64(v) >= thresh
		}
		if pass {
			res.Data[i] = 255
		}
	}
	return res
}

// blockMean averages a square window centered at (y, x) on
// a single-channel image, clamping the window to the image
// bounds by edge replication.
func blockMean(img *Image, y, x, blockSize int) float64 {
	lo := -(blockSize / 2)
	hi := blockSize - 1 - blockSize/2
	var sum float64
	for dy := lo; dy <= hi; dy++ {
		sy := clampIndex(y+dy, img.Height)
		for dx := lo; dx <= hi; dx++ {
			sx := clampIndex(x+dx, img.Width)
			sum += float64(img.At(sy, sx, 0))
		}
	}
	return sum / float64(blockSize*blockSize)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	} else if i >= n {
		return n - 1
	}
	return i
}
