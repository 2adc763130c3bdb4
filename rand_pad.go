package im2latex

import (
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var p RandomPad
	serializer.RegisterTypedDeserializer(p.SerializerType(), DeserializeRandomPad)
}

// A RandomPad transform surrounds every image in a batch
// with white borders whose widths are drawn uniformly from
// [0, bound), one draw per side per call.
// A zero bound disables padding on that side.
type RandomPad struct {
	PadLeft   int
	PadRight  int
	PadBottom int
	PadTop    int
}

// DeserializeRandomPad deserializes a RandomPad.
func DeserializeRandomPad(d []byte) (*RandomPad, error) {
	var l, r, b, t serializer.Int
	if err := serializer.DeserializeAny(d, &l, &r, &b, &t); err != nil {
		return nil, essentials.AddCtx("deserialize RandomPad", err)
	}
	return &RandomPad{
		PadLeft:   int(l),
		PadRight:  int(r),
		PadBottom: int(b),
		PadTop:    int(t),
	}, nil
}

// Apply pads a batch.
// Every image receives the same sampled border widths.
func (rp *RandomPad) Apply(imgs []*Image, r *rand.Rand) []*Image {
	left := randIntn(r, rp.PadLeft)
	right := randIntn(r, rp.PadRight)
	bottom := randIntn(r, rp.PadBottom)
	top := randIntn(r, rp.PadTop)
	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		res[i] = border(img, top, bottom, left, right)
	}
	return res
}

// SerializerType returns the unique ID used to serialize
// a RandomPad with the serializer package.
func (rp *RandomPad) SerializerType() string {
	return "github.com/ygnn123/im2latex.RandomPad"
}

// Serialize serializes the RandomPad.
func (rp *RandomPad) Serialize() ([]byte, error) {
	return serializer.SerializeAny(
		serializer.Int(rp.PadLeft),
		serializer.Int(rp.PadRight),
		serializer.Int(rp.PadBottom),
		serializer.Int(rp.PadTop),
	)
}
