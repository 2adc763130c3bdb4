package im2latex

import (
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var r Resize
	serializer.RegisterTypedDeserializer(r.SerializerType(), DeserializeResize)
}

// A Resize transform scales every image to a fixed shape
// with bilinear interpolation.
// The aspect ratio is not preserved.
type Resize struct {
	TargetHeight int
	TargetWidth  int
}

// DeserializeResize deserializes a Resize.
func DeserializeResize(d []byte) (*Resize, error) {
	var h, w serializer.Int
	if err := serializer.DeserializeAny(d, &h, &w); err != nil {
		return nil, essentials.AddCtx("deserialize Resize", err)
	}
	return &Resize{TargetHeight: int(h), TargetWidth: int(w)}, nil
}

// Apply resizes a batch.
func (rs *Resize) Apply(imgs []*Image, r *rand.Rand) []*Image {
	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		res[i] = resizeBilinear(img, rs.TargetHeight, rs.TargetWidth)
	}
	return res
}

// SerializerType returns the unique ID used to serialize
// a Resize with the serializer package.
func (rs *Resize) SerializerType() string {
	return "github.com/ygnn123/im2latex.Resize"
}

// Serialize serializes the Resize.
func (rs *Resize) Serialize() ([]byte, error) {
	return serializer.SerializeAny(
		serializer.Int(rs.TargetHeight),
		serializer.Int(rs.TargetWidth),
	)
}
