package im2latex

import "math"

// gaussianKernel3 returns the normalized 1-D Gaussian
// kernel of size 3 for the given standard deviation.
// A non-positive sigma falls back to 0.8, the conventional
// value for a 3-tap kernel.
func gaussianKernel3(sigma float64) [3]float64 {
	if sigma <= 0 {
		sigma = 0.8
	}
	var k [3]float64
	var sum float64
	for i := range k {
		d := float64(i - 1)
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// blur3 applies a separable 3x3 Gaussian blur with
// mirrored (reflect-101) edge handling.
func blur3(img *Image, sigma float64) *Image {
	k := gaussianKernel3(sigma)
	tmp := make([]float64, len(img.Data))
	rowSize := img.Width * img.Depth
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			for z := 0; z < img.Depth; z++ {
				var sum float64
				for dx := -1; dx <= 1; dx++ {
					sx := reflect101(x+dx, img.Width)
					sum += k[dx+1] * float64(img.At(y, sx, z))
				}
				tmp[y*rowSize+x*img.Depth+z] = sum
			}
		}
	}
	res := NewImage(img.Height, img.Width, img.Depth)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			for z := 0; z < img.Depth; z++ {
				var sum float64
				for dy := -1; dy <= 1; dy++ {
					sy := reflect101(y+dy, img.Height)
					sum += k[dy+1] * tmp[sy*rowSize+x*img.Depth+z]
				}
				res.Set(y, x, z, clampByte(sum))
			}
		}
	}
	return res
}

// reflect101 mirrors an out-of-range index across the
// border without repeating the edge sample.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	if i < 0 {
		return -i
	} else if i >= n {
		return 2*n - 2 - i
	}
	return i
}
