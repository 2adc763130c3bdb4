package im2latex

import (
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var c CropPad
	serializer.RegisterTypedDeserializer(c.SerializerType(), DeserializeCropPad)
}

// A CropPad normalizer crops every image to the canvas
// from the top-left corner, then pads the bottom and right
// edges with white.
//
// Content beyond the canvas is discarded; nothing is ever
// scaled.
type CropPad struct {
	TargetHeight int
	TargetWidth  int
}

// DeserializeCropPad deserializes a CropPad.
func DeserializeCropPad(d []byte) (*CropPad, error) {
	var h, w serializer.Int
	if err := serializer.DeserializeAny(d, &h, &w); err != nil {
		return nil, essentials.AddCtx("deserialize CropPad", err)
	}
	return &CropPad{TargetHeight: int(h), TargetWidth: int(w)}, nil
}

// Apply normalizes a batch to the canvas shape.
func (cp *CropPad) Apply(imgs []*Image, r *rand.Rand) []*Image {
	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		newH := img.Height
		if newH > cp.TargetHeight {
			newH = cp.TargetHeight
		}
		newW := img.Width
		if newW > cp.TargetWidth {
			newW = cp.TargetWidth
		}
		cropped := crop(img, newH, newW)
		res[i] = border(cropped, 0, cp.TargetHeight-newH, 0, cp.TargetWidth-newW)
	}
	return res
}

// SerializerType returns the unique ID used to serialize
// a CropPad with the serializer package.
func (cp *CropPad) SerializerType() string {
	return "github.com/ygnn123/im2latex.CropPad"
}

// Serialize serializes the CropPad.
func (cp *CropPad) Serialize() ([]byte, error) {
	return serializer.SerializeAny(
		serializer.Int(cp.TargetHeight),
		serializer.Int(cp.TargetWidth),
	)
}
