package im2latex

import (
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	var b RandomBolding
	serializer.RegisterTypedDeserializer(b.SerializerType(), DeserializeRandomBolding)
}

// A RandomBolding transform imitates the artifacts of
// scanned or photographed formulas after binarization.
//
// Each image is eroded and binarized at Threshold, blurred
// and re-binarized, then composited with the original
// through a shuffled binary mask covering a Distr fraction
// of the entries (original where the mask is set, blurred
// elsewhere).
// The composite is blurred once more and binarized at
// ResThreshold.
type RandomBolding struct {
	KernelSize   int
	Iterations   int
	Threshold    float64
	ResThreshold float64
	SigmaX       float64
	Distr        float64
}

// DeserializeRandomBolding deserializes a RandomBolding.
func DeserializeRandomBolding(d []byte) (*RandomBolding, error) {
	var kernel, iters serializer.Int
	var thresh, resThresh, sigma, distr serializer.Float64
	err := serializer.DeserializeAny(d, &kernel, &iters, &thresh, &resThresh,
		&sigma, &distr)
	if err != nil {
		return nil, essentials.AddCtx("deserialize RandomBolding", err)
	}
	return &RandomBolding{
		KernelSize:   int(kernel),
		Iterations:   int(iters),
		Threshold:    float64(thresh),
		ResThreshold: float64(resThresh),
		SigmaX:       float64(sigma),
		Distr:        float64(distr),
	}, nil
}

// Apply bolds a batch.
// The composite mask is drawn per image.
func (rb *RandomBolding) Apply(imgs []*Image, r *rand.Rand) []*Image {
	res := make([]*Image, len(imgs))
	for i, img := range imgs {
		res[i] = rb.boldOne(img, r)
	}
	return res
}

func (rb *RandomBolding) boldOne(img *Image, r *rand.Rand) *Image {
	eroded := erode(img, rb.KernelSize, rb.Iterations)
	eroded = threshold255(eroded, rb.Threshold, true)
	blurred := blur3(eroded, rb.SigmaX)
	blurred = threshold255(blurred, rb.Threshold, true)

	mask := make([]uint8, len(img.Data))
	ones := int(float64(len(mask)) * rb.Distr)
	for i := 0; i < ones && i < len(mask); i++ {
		mask[i] = 1
	}
	randShuffle(r, len(mask), func(i, j int) {
		mask[i], mask[j] = mask[j], mask[i]
	})

	comp := NewImage(img.Height, img.Width, img.Depth)
	for i := range comp.Data {
		if mask[i] == 1 {
			comp.Data[i] = img.Data[i]
		} else {
			comp.Data[i] = blurred.Data[i]
		}
	}
	comp = blur3(comp, rb.SigmaX)
	return threshold255(comp, rb.ResThreshold, true)
}

// SerializerType returns the unique ID used to serialize
// a RandomBolding with the serializer package.
func (rb *RandomBolding) SerializerType() string {
	return "github.com/ygnn123/im2latex.RandomBolding"
}

// Serialize serializes the RandomBolding.
func (rb *RandomBolding) Serialize() ([]byte, error) {
	return serializer.SerializeAny(
		serializer.Int(rb.KernelSize),
		serializer.Int(rb.Iterations),
		serializer.Float64(rb.Threshold),
		serializer.Float64(rb.ResThreshold),
		serializer.Float64(rb.SigmaX),
		serializer.Float64(rb.Distr),
	)
}
