package im2latex

import (
	"fmt"
	"math"
)

// WhiteValue is the background intensity used to fill
// padded and uncovered regions.
const WhiteValue = 255

// An Image is a dense height x width x channel array of
// 8-bit intensities in BGR channel order.
type Image struct {
	Height int
	Width  int
	Depth  int

	// Data is row-major: Data[(y*Width+x)*Depth+z].
	Data []uint8
}

// NewImage creates a zero-filled image.
func NewImage(height, width, depth int) *Image {
	return &Image{
		Height: height,
		Width:  width,
		Depth:  depth,
		Data:   make([]uint8, height*width*depth),
	}
}

// NewImageData creates an image backed by data.
// It panics if the data length does not match the
// dimensions.
func NewImageData(height, width, depth int, data []uint8) *Image {
	if len(data) != height*width*depth {
		panic(fmt.Sprintf("incorrect data size: %d (expected %d)",
			len(data), height*width*depth))
	}
	return &Image{Height: height, Width: width, Depth: depth, Data: data}
}

// At returns the intensity at row y, column x, channel z.
func (im *Image) At(y, x, z int) uint8 {
	return im.Data[(y*im.Width+x)*im.Depth+z]
}

// Set sets the intensity at row y, column x, channel z.
func (im *Image) Set(y, x, z int, v uint8) {
	im.Data[(y*im.Width+x)*im.Depth+z] = v
}

// Clone returns a deep copy of the image.
func (im *Image) Clone() *Image {
	return NewImageData(im.Height, im.Width, im.Depth,
		append([]uint8{}, im.Data...))
}

// SameShape reports whether two images have identical
// dimensions.
func (im *Image) SameShape(other *Image) bool {
	return im.Height == other.Height && im.Width == other.Width &&
		im.Depth == other.Depth
}

// border surrounds an image with white padding.
func border(img *Image, top, bottom, left, right int) *Image {
	if top < 0 || bottom < 0 || left < 0 || right < 0 {
		panic("negative border size")
	}
	res := NewImage(img.Height+top+bottom, img.Width+left+right, img.Depth)
	for i := range res.Data {
		res.Data[i] = WhiteValue
	}
	for y := 0; y < img.Height; y++ {
		srcRow := y * img.Width * img.Depth
		dstRow := ((y+top)*res.Width + left) * img.Depth
		copy(res.Data[dstRow:dstRow+img.Width*img.Depth],
			img.Data[srcRow:srcRow+img.Width*img.Depth])
	}
	return res
}

// crop takes the top-left height x width region of an
// image.
// The region must fit inside the image.
func crop(img *Image, height, width int) *Image {
	if height > img.Height || width > img.Width {
		panic("crop region exceeds image bounds")
	}
	res := NewImage(height, width, img.Depth)
	for y := 0; y < height; y++ {
		srcRow := y * img.Width * img.Depth
		dstRow := y * width * img.Depth
		copy(res.Data[dstRow:dstRow+width*img.Depth],
			img.Data[srcRow:srcRow+width*img.Depth])
	}
	return res
}

// clampByte rounds a float intensity and clips it to the
// 8-bit range.
func clampByte(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	} else if v > 255 {
		return 255
	}
	return uint8(v)
}
