package im2latex

import (
	"math"
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var n RandomNoise
	serializer.RegisterTypedDeserializer(n.SerializerType(), DeserializeRandomNoise)
}

// A RandomNoise transform adds Gaussian noise matched to
// each image's own mean and standard deviation, scaled by
// Intensity.
//
// The noise term is combined with the image using 8-bit
// modular arithmetic: overflow wraps around rather than
// saturating.
// The wraparound is a deliberate, reproducible artifact of
// the augmentation, kept for parity with models trained on
// it.
type RandomNoise struct {
	Intensity float64
}

// DeserializeRandomNoise deserializes a RandomNoise.
func DeserializeRandomNoise(d []byte) (*RandomNoise, error) {
	var intensity serializer.Float64
	if err := serializer.DeserializeAny(d, &intensity); err != nil {
		return nil, essentials.AddCtx("deserialize RandomNoise", err)
	}
	return &RandomNoise{Intensity: float64(intensity)}, nil
}

// Apply adds noise to a batch, drawing a fresh noise field
// per image.
func (rn *RandomNoise) Apply(imgs []*Image, r *rand.Rand) []*Image {
	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		mean, std := meanStd(img.Data)
		out := NewImage(img.Height, img.Width, img.Depth)
		for j, v := range img.Data {
			noise := wrapByte(randNormal(r, mean, std))
			scaled := wrapByte(float64(noise) * rn.Intensity)
			out.Data[j] = v + scaled
		}
		res[i] = out
	}
	return res
}

// SerializerType returns the unique ID used to serialize
// a RandomNoise with the serializer package.
func (rn *RandomNoise) SerializerType() string {
	return "github.com/ygnn123/im2latex.RandomNoise"
}

// Serialize serializes the RandomNoise.
func (rn *RandomNoise) Serialize() ([]byte, error) {
	return serializer.SerializeAny(serializer.Float64(rn.Intensity))
}

// wrapByte truncates a float toward zero and wraps it into
// the unsigned 8-bit range.
func wrapByte(v float64) uint8 {
	return uint8(int64(math.Trunc(v)))
}

// meanStd computes the mean and population standard
// deviation of the intensities.
func meanStd(data []uint8) (mean, std float64) {
	if len(data) == 0 {
		return 0, 0
	}
	for _, v := range data {
		mean += float64(v)
	}
	mean /= float64(len(data))
	for _, v := range data {
		d := float64(v) - mean
		std += d * d
	}
	return mean, math.Sqrt(std / float64(len(data)))
}
