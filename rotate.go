package im2latex

import (
	"math"
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var r Rotate
	serializer.RegisterTypedDeserializer(r.SerializerType(), DeserializeRotate)
}

// A Rotate transform rotates every image in a batch by a
// single random angle drawn from [-Angle, Angle) degrees.
//
// The rotation matrix is computed around the first image's
// center, the canvas grows to the bounding box of the
// rotated corners so no content is clipped, and the same
// adjusted matrix is applied to every image.
// Uncovered pixels are white.
//
// An Angle bound of 0 degenerates to a byte-exact no-op.
type Rotate struct {
	Angle float64
}

// DeserializeRotate deserializes a Rotate.
func DeserializeRotate(d []byte) (*Rotate, error) {
	var angle serializer.Float64
	if err := serializer.DeserializeAny(d, &angle); err != nil {
		return nil, essentials.AddCtx("deserialize Rotate", err)
	}
	return &Rotate{Angle: float64(angle)}, nil
}

// Apply rotates a batch.
func (ro *Rotate) Apply(imgs []*Image, r *rand.Rand) []*Image {
	if len(imgs) == 0 {
		return nil
	}
	angle := randUniform(r, -ro.Angle, ro.Angle)

	first := imgs[0]
	cx := float64(first.Width / 2)
	cy := float64(first.Height / 2)
	m := rotationMatrix(cx, cy, angle)

	w := float64(first.Width)
	h := float64(first.Height)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		x, y := m.apply(pt[0], pt[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	m[2] -= math.Floor(minX)
	m[5] -= math.Floor(minY)
	outW := int(math.Ceil(maxX) - math.Floor(minX))
	outH := int(math.Ceil(maxY) - math.Floor(minY))

	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		res[i] = warpAffine(img, m, outH, outW)
	}
	return res
}

// SerializerType returns the unique ID used to serialize
// a Rotate with the serializer package.
func (ro *Rotate) SerializerType() string {
	return "github.com/ygnn123/im2latex.Rotate"
}

// Serialize serializes the Rotate.
func (ro *Rotate) Serialize() ([]byte, error) {
	return serializer.SerializeAny(serializer.Float64(ro.Angle))
}
