package histogram

import (
	"image"
	"image/color"
	"reflect"
	"testing"
)

func filledGray(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestFromImageSingleLevel(t *testing.T) {
	c := FromImage(filledGray(4, 3, 7))
	bins := NonZero(c)
	if !reflect.DeepEqual(bins, []Bin{{Level: 7, Count: 12}}) {
		t.Fatalf("Bad bins %v", bins)
	}
	if c.Total() != 12 {
		t.Fatalf("Bad total %d", c.Total())
	}
}

func TestFromImageConvertsColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.RGBA{R: 7, G: 7, B: 7, A: 255})
		}
	}
	img.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	bins := NonZero(FromImage(img))
	if !reflect.DeepEqual(bins, []Bin{{Level: 7, Count: 3}, {Level: 255, Count: 1}}) {
		t.Fatalf("Bad bins %v", bins)
	}
}

func TestFromGraySubImage(t *testing.T) {
	img := filledGray(4, 4, 1)
	img.SetGray(0, 0, color.Gray{Y: 9})
	img.SetGray(3, 3, color.Gray{Y: 9})
	sub := img.SubImage(image.Rect(1, 1, 4, 4)).(*image.Gray)
	bins := NonZero(FromImage(sub))
	if !reflect.DeepEqual(bins, []Bin{{Level: 1, Count: 8}, {Level: 9, Count: 1}}) {
		t.Fatalf("Bad bins %v", bins)
	}
}

func TestNonZeroEmpty(t *testing.T) {
	var c Counts
	if bins := NonZero(c); len(bins) != 0 {
		t.Fatalf("Expected no bins, got %v", bins)
	}
}

func TestEqual(t *testing.T) {
	var a, b Counts
	a[0], a[100], a[255] = 5, 6, 7
	b = a
	if !Equal(a, b) {
		t.Fatal("Identical histograms must compare equal")
	}
	if d := Diff(a, b); len(d) != 0 {
		t.Fatalf("Unexpected diff %v", d)
	}

	b[42] = 1
	if Equal(a, b) {
		t.Fatal("A differing empty bin must break equality")
	}
	d := Diff(a, b)
	if !reflect.DeepEqual(d, []Mismatch{{Level: 42, Computed: 0, Reference: 1}}) {
		t.Fatalf("Bad diff %v", d)
	}
	if d[0].Delta() != -1 {
		t.Fatalf("Bad delta %d", d[0].Delta())
	}
}
