package im2latex

import "math"

// An affine2x3 is a row-major 2x3 matrix mapping source
// coordinates to destination coordinates:
//
//	dstX = m[0]*x + m[1]*y + m[2]
//	dstY = m[3]*x + m[4]*y + m[5]
type affine2x3 [6]float64

func (a affine2x3) apply(x, y float64) (float64, float64) {
	return a[0]*x + a[1]*y + a[2], a[3]*x + a[4]*y + a[5]
}

// invert returns the inverse mapping.
// The linear part must be non-singular.
func (a affine2x3) invert() affine2x3 {
	det := a[0]*a[4] - a[1]*a[3]
	var inv affine2x3
	inv[0] = a[4] / det
	inv[1] = -a[1] / det
	inv[3] = -a[3] / det
	inv[4] = a[0] / det
	inv[2] = -(inv[0]*a[2] + inv[1]*a[5])
	inv[5] = -(inv[3]*a[2] + inv[4]*a[5])
	return inv
}

// rotationMatrix builds the matrix for a counter-clockwise
// rotation (in degrees) around the point (cx, cy).
func rotationMatrix(cx, cy, degrees float64) affine2x3 {
	rad := degrees * math.Pi / 180
	alpha := math.Cos(rad)
	beta := math.Sin(rad)
	return affine2x3{
		alpha, beta, (1-alpha)*cx - beta*cy,
		-beta, alpha, beta*cx + (1-alpha)*cy,
	}
}

// warpAffine applies the forward transform m to an image,
// producing an outH x outW result.
// Destination pixels with no source are white.
func warpAffine(img *Image, m affine2x3, outH, outW int) *Image {
	inv := m.invert()
	res := NewImage(outH, outW, img.Depth)
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			sx, sy := inv.apply(float64(x), float64(y))
			for z := 0; z < img.Depth; z++ {
				res.Set(y, x, z, sampleBilinear(img, sy, sx, z))
			}
		}
	}
	return res
}

// sampleBilinear samples channel z at a fractional
// position, treating everything outside the image as
// white.
func sampleBilinear(img *Image, sy, sx float64, z int) uint8 {
	y1 := int(math.Floor(sy))
	x1 := int(math.Floor(sx))
	fy := sy - float64(y1)
	fx := sx - float64(x1)
	top := (1-fx)*pixelOrWhite(img, y1, x1, z) + fx*pixelOrWhite(img, y1, x1+1, z)
	bottom := (1-fx)*pixelOrWhite(img, y1+1, x1, z) + fx*pixelOrWhite(img, y1+1, x1+1, z)
	return clampByte((1-fy)*top + fy*bottom)
}

func pixelOrWhite(img *Image, y, x, z int) float64 {
	if y < 0 || y >= img.Height || x < 0 || x >= img.Width {
		return WhiteValue
	}
	return float64(img.At(y, x, z))
}
