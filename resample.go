package im2latex

import "math"

// resizeBilinear resizes an image to the given dimensions
// using bilinear interpolation.
func resizeBilinear(img *Image, outH, outW int) *Image {
	if outH == img.Height && outW == img.Width {
		return img.Clone()
	}
	var yScale, xScale float64
	if outH > 1 {
		yScale = float64(img.Height-1) / float64(outH-1)
	}
	if outW > 1 {
		xScale = float64(img.Width-1) / float64(outW-1)
	}
	res := NewImage(outH, outW, img.Depth)
	for y := 0; y < outH; y++ {
		sy := yScale * float64(y)
		y1 := int(sy)
		y2 := y1 + 1
		if y2 >= img.Height {
			y2 = img.Height - 1
		}
		fy := sy - float64(y1)
		for x := 0; x < outW; x++ {
			sx := xScale * float64(x)
			x1 := int(sx)
			x2 := x1 + 1
			if x2 >= img.Width {
				x2 = img.Width - 1
			}
			fx := sx - float64(x1)
			for z := 0; z < img.Depth; z++ {
				top := (1-fx)*float64(img.At(y1, x1, z)) + fx*float64(img.At(y1, x2, z))
				bottom := (1-fx)*float64(img.At(y2, x1, z)) + fx*float64(img.At(y2, x2, z))
				res.Set(y, x, z, clampByte((1-fy)*top+fy*bottom))
			}
		}
	}
	return res
}

// resizeScale resizes by per-axis factors, rounding the
// output dimensions to the nearest pixel (minimum 1).
func resizeScale(img *Image, fx, fy float64) *Image {
	outW := int(math.Round(float64(img.Width) * fx))
	outH := int(math.Round(float64(img.Height) * fy))
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	return resizeBilinear(img, outH, outW)
}
