package im2latex

import "github.com/unixpickle/anyvec"

// ToTensor converts an image to the numeric training
// format: a channel-major vector of intensities scaled to
// [0, 1].
func ToTensor(c anyvec.Creator, img *Image) anyvec.Vector {
	return c.MakeVectorData(c.MakeNumericList(tensorData(img)))
}

// Stack converts a batch of images into a single
// batch-first vector in the ToTensor format.
// It panics if the images do not share one shape.
func Stack(c anyvec.Creator, imgs []*Image) anyvec.Vector {
	if len(imgs) == 0 {
		return c.MakeVector(0)
	}
	first := imgs[0]
	data := make([]float64, 0, len(imgs)*len(first.Data))
	for _, img := range imgs {
		if !img.SameShape(first) {
			panic("mismatching image shapes")
		}
		data = append(data, tensorData(img)...)
	}
	return c.MakeVectorData(c.MakeNumericList(data))
}

func tensorData(img *Image) []float64 {
	res := make([]float64, img.Depth*img.Height*img.Width)
	var idx int
	for z := 0; z < img.Depth; z++ {
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				res[idx] = float64(img.At(y, x, z)) / 0xff
				idx++
			}
		}
	}
	return res
}
