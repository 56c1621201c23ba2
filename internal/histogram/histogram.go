package histogram

import (
	"image"
	"image/color"

	"github.com/spakin/netpbm"
)

// Bins is the number of intensity levels of an 8-bit grayscale image.
const Bins = 256

// Counts is an occupancy histogram: Counts[v] is the number of pixels with
// intensity v.
type Counts [Bins]int64

// Bin is one non-empty histogram entry.
type Bin struct {
	Level int
	Count int64
}

// FromImage counts the 8-bit gray intensity of every pixel of img.
// Graymaps with a maxval below 255 are counted by raw sample value, not
// rescaled. Other images are converted with color.GrayModel.
func FromImage(img image.Image) Counts {
	switch g := img.(type) {
	case *image.Gray:
		return FromGray(g)
	case *netpbm.GrayM:
		return countPix(g.Pix, g.Stride, g.Rect)
	}
	var c Counts
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			c[gray.Y]++
		}
	}
	return c
}

// FromGray counts the pixels of g, honouring its stride and bounds.
func FromGray(g *image.Gray) Counts {
	return countPix(g.Pix, g.Stride, g.Rect)
}

// countPix counts one-byte samples laid out like image.Gray.Pix.
func countPix(pix []uint8, stride int, r image.Rectangle) Counts {
	var c Counts
	w := r.Dx()
	for y := 0; y < r.Dy(); y++ {
		for _, v := range pix[y*stride : y*stride+w] {
			c[v]++
		}
	}
	return c
}

// NonZero returns the bins with a non-zero count, by ascending level.
func NonZero(c Counts) []Bin {
	bins := make([]Bin, 0)
	for level, n := range c {
		if n != 0 {
			bins = append(bins, Bin{Level: level, Count: n})
		}
	}
	return bins
}

// Total is the sum of all bins.
func (c Counts) Total() int64 {
	var n int64
	for _, v := range c {
		n += v
	}
	return n
}
