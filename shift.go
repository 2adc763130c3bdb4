package im2latex

import (
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var s Shift
	serializer.RegisterTypedDeserializer(s.SerializerType(), DeserializeShift)
}

// A Shift transform translates every image in a batch by a
// single random offset drawn from [0, ShiftX) x [0, ShiftY),
// filling uncovered pixels with white.
// The canvas size is unchanged, so content may be clipped
// at the far edge.
type Shift struct {
	ShiftX int
	ShiftY int
}

// DeserializeShift deserializes a Shift.
func DeserializeShift(d []byte) (*Shift, error) {
	var x, y serializer.Int
	if err := serializer.DeserializeAny(d, &x, &y); err != nil {
		return nil, essentials.AddCtx("deserialize Shift", err)
	}
	return &Shift{ShiftX: int(x), ShiftY: int(y)}, nil
}

// Apply shifts a batch.
// Every image receives the same sampled offset.
func (s *Shift) Apply(imgs []*Image, r *rand.Rand) []*Image {
	tx := randIntn(r, s.ShiftX)
	ty := randIntn(r, s.ShiftY)
	m := affine2x3{1, 0, float64(tx), 0, 1, float64(ty)}
	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		res[i] = warpAffine(img, m, img.Height, img.Width)
	}
	return res
}

// SerializerType returns the unique ID used to serialize
// a Shift with the serializer package.
func (s *Shift) SerializerType() string {
	return "github.com/ygnn123/im2latex.Shift"
}

// Serialize serializes the Shift.
func (s *Shift) Serialize() ([]byte, error) {
	return serializer.SerializeAny(serializer.Int(s.ShiftX), serializer.Int(s.ShiftY))
}
