package im2latex

import (
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var r Rescale
	serializer.RegisterTypedDeserializer(r.SerializerType(), DeserializeRescale)
}

// A Rescale transform resizes every image in a batch by a
// single factor drawn uniformly from [ScaleMin, ScaleMax).
// The factor applies to both axes, so the aspect ratio is
// preserved up to pixel rounding.
type Rescale struct {
	ScaleMin float64
	ScaleMax float64
}

// DeserializeRescale deserializes a Rescale.
func DeserializeRescale(d []byte) (*Rescale, error) {
	var min, max serializer.Float64
	if err := serializer.DeserializeAny(d, &min, &max); err != nil {
		return nil, essentials.AddCtx("deserialize Rescale", err)
	}
	return &Rescale{ScaleMin: float64(min), ScaleMax: float64(max)}, nil
}

// Apply rescales a batch.
// Every image receives the same sampled factor.
func (rs *Rescale) Apply(imgs []*Image, r *rand.Rand) []*Image {
	f := randUniform(r, rs.ScaleMin, rs.ScaleMax)
	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		res[i] = resizeScale(img, f, f)
	}
	return res
}

// SerializerType returns the unique ID used to serialize
// a Rescale with the serializer package.
func (rs *Rescale) SerializerType() string {
	return "github.com/ygnn123/im2latex.Rescale"
}

// Serialize serializes the Rescale.
func (rs *Rescale) Serialize() ([]byte, error) {
	return serializer.SerializeAny(
		serializer.Float64(rs.ScaleMin),
		serializer.Float64(rs.ScaleMax),
	)
}
