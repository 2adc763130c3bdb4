package im2latex

import (
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var e Erosion
	serializer.RegisterTypedDeserializer(e.SerializerType(), DeserializeErosion)
	var d Dilation
	serializer.RegisterTypedDeserializer(d.SerializerType(), DeserializeDilation)
}

// An Erosion transform applies morphological erosion with
// a square all-ones kernel.
type Erosion struct {
	KernelSize int
	Iterations int
}

// DeserializeErosion deserializes an Erosion.
func DeserializeErosion(d []byte) (*Erosion, error) {
	var k, iters serializer.Int
	if err := serializer.DeserializeAny(d, &k, &iters); err != nil {
		return nil, essentials.AddCtx("deserialize Erosion", err)
	}
	return &Erosion{KernelSize: int(k), Iterations: int(iters)}, nil
}

// Apply erodes a batch.
func (e *Erosion) Apply(imgs []*Image, r *rand.Rand) []*Image {
	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		res[i] = erode(img, e.KernelSize, e.Iterations)
	}
	return res
}

// SerializerType returns the unique ID used to serialize
// an Erosion with the serializer package.
func (e *Erosion) SerializerType() string {
	return "github.com/ygnn123/im2latex.Erosion"
}

// Serialize serializes the Erosion.
func (e *Erosion) Serialize() ([]byte, error) {
	return serializer.SerializeAny(
		serializer.Int(e.KernelSize),
		serializer.Int(e.Iterations),
	)
}

// A Dilation transform applies morphological dilation with
// a square all-ones kernel.
type Dilation struct {
	KernelSize int
	Iterations int
}

// DeserializeDilation deserializes a Dilation.
func DeserializeDilation(d []byte) (*Dilation, error) {
	var k, iters serializer.Int
	if err := serializer.DeserializeAny(d, &k, &iters); err != nil {
		return nil, essentials.AddCtx("deserialize Dilation", err)
	}
	return &Dilation{KernelSize: int(k), Iterations: int(iters)}, nil
}

// Apply dilates a batch.
func (dl *Dilation) Apply(imgs []*Image, r *rand.Rand) []*Image {
	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		res[i] = dilate(img, dl.KernelSize, dl.Iterations)
	}
	return res
}

// SerializerType returns the unique ID used to serialize
// a Dilation with the serializer package.
func (dl *Dilation) SerializerType() string {
	return "github.com/ygnn123/im2latex.Dilation"
}

// Serialize serializes the Dilation.
func (dl *Dilation) Serialize() ([]byte, error) {
	return serializer.SerializeAny(
		serializer.Int(dl.KernelSize),
		serializer.Int(dl.Iterations),
	)
}

// erode takes the neighborhood minimum, per channel.
func erode(img *Image, kernelSize, iterations int) *Image {
	return morph(img, kernelSize, iterations, false)
}

// dilate takes the neighborhood maximum, per channel.
func dilate(img *Image, kernelSize, iterations int) *Image {
	return morph(img, kernelSize, iterations, true)
}

// morph runs iterated min/max filtering with a square
// window anchored at its center.
// Neighbors outside the image are ignored.
func morph(img *Image, kernelSize, iterations int, max bool) *Image {
	if kernelSize < 1 {
		panic("kernel size out of range")
	}
	lo := -(kernelSize / 2)
	hi := kernelSize - 1 - kernelSize/2
	cur := img
	for iter := 0; iter < iterations; iter++ {
		next := NewImage(cur.Height, cur.Width, cur.Depth)
		for y := 0; y < cur.Height; y++ {
			for x := 0; x < cur.Width; x++ {
				for z := 0; z < cur.Depth; z++ {
					best := cur.At(y, x, z)
					for dy := lo; dy <= hi; dy++ {
						sy := y + dy
						if sy < 0 || sy >= cur.Height {
							continue
						}
						for dx := lo; dx <= hi; dx++ {
							sx := x + dx
							if sx < 0 || sx >= cur.Width {
								continue
							}
							v := cur.At(sy, sx, z)
							if (max && v > best) || (!max && v < best) {
								best = v
							}
						}
					}
					next.Set(y, x, z, best)
				}
			}
		}
		cur = next
	}
	if cur == img {
		return img.Clone()
	}
	return cur
}
