package im2latex

import (
	"math"
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var r ResizePad
	serializer.RegisterTypedDeserializer(r.SerializerType(), DeserializeResizePad)
}

// A ResizePad normalizer scales every image to fit a fixed
// canvas, preserving the aspect ratio, then pads the
// bottom and right edges with white so the result has
// exactly the canvas shape.
//
// There is no content loss, but images larger than the
// canvas shrink.
type ResizePad struct {
	TargetHeight int
	TargetWidth  int
}

// DeserializeResizePad deserializes a ResizePad.
func DeserializeResizePad(d []byte) (*ResizePad, error) {
	var h, w serializer.Int
	if err := serializer.DeserializeAny(d, &h, &w); err != nil {
		return nil, essentials.AddCtx("deserialize ResizePad", err)
	}
	return &ResizePad{TargetHeight: int(h), TargetWidth: int(w)}, nil
}

// Apply normalizes a batch to the canvas shape.
//
// It panics if a result misses the canvas shape, since
// that indicates a bug in the normalizer rather than bad
// data.
func (rp *ResizePad) Apply(imgs []*Image, r *rand.Rand) []*Image {
	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		scale := math.Min(float64(rp.TargetHeight)/float64(img.Height),
			float64(rp.TargetWidth)/float64(img.Width))
		scaled := resizeScale(img, scale, scale)
		out := border(scaled, 0, rp.TargetHeight-scaled.Height,
			0, rp.TargetWidth-scaled.Width)
		if out.Height != rp.TargetHeight || out.Width != rp.TargetWidth {
			panic("output shape does not match the target shape")
		}
		res[i] = out
	}
	return res
}

// SerializerType returns the unique ID used to serialize
// a ResizePad with the serializer package.
func (rp *ResizePad) SerializerType() string {
	return "github.com/ygnn123/im2latex.ResizePad"
}

// Serialize serializes the ResizePad.
func (rp *ResizePad) Serialize() ([]byte, error) {
	return serializer.SerializeAny(
		serializer.Int(rp.TargetHeight),
		serializer.Int(rp.TargetWidth),
	)
}
