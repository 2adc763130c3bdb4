package im2latex

import (
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var b Blur
	serializer.RegisterTypedDeserializer(b.SerializerType(), DeserializeBlur)
}

// DefaultBlurSigma is the standard deviation used by Blur
// when none is configured.
const DefaultBlurSigma = 1.15

// A Blur transform applies a fixed 3x3 Gaussian blur with
// a configurable standard deviation.
// It is deterministic for a given sigma.
type Blur struct {
	SigmaX float64
}

// DeserializeBlur deserializes a Blur.
func DeserializeBlur(d []byte) (*Blur, error) {
	var sigma serializer.Float64
	if err := serializer.DeserializeAny(d, &sigma); err != nil {
		return nil, essentials.AddCtx("deserialize Blur", err)
	}
	return &Blur{SigmaX: float64(sigma)}, nil
}

// Apply blurs a batch.
func (b *Blur) Apply(imgs []*Image, r *rand.Rand) []*Image {
	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		res[i] = blur3(img, b.SigmaX)
	}
	return res
}

// SerializerType returns the unique ID used to serialize
// a Blur with the serializer package.
func (b *Blur) SerializerType() string {
	return "github.com/ygnn123/im2latex.Blur"
}

// Serialize serializes the Blur.
func (b *Blur) Serialize() ([]byte, error) {
	return serializer.SerializeAny(serializer.Float64(b.SigmaX))
}
