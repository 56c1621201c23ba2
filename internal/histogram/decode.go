package histogram

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxPixels bounds the size of an image accepted by Decode. Headers are
// checked before any pixel memory is allocated.
const MaxPixels = 1 << 28

var ErrImageTooLarge = errors.New("image too large")

// Decode reads the header of an image to check its dimensions, then rewinds
// r and decodes the pixels with any registered decoder. PGM and the other
// netpbm formats are registered by github.com/spakin/netpbm.
func Decode(r io.ReadSeeker) (image.Image, string, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, "", err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > MaxPixels/cfg.Height {
		return nil, "", fmt.Errorf("%s image of %dx%d pixels: %w", format, cfg.Width, cfg.Height, ErrImageTooLarge)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, "", err
	}
	return image.Decode(r)
}

// LoadImage decodes the image at filepath and returns it together with the
// format name.
func LoadImage(filepath string) (image.Image, string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, format, err := Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", filepath, err)
	}
	return img, format, nil
}

// FromFile loads an image and returns its grayscale histogram.
func FromFile(filepath string) (Counts, string, error) {
	img, format, err := LoadImage(filepath)
	if err != nil {
		return Counts{}, "", err
	}
	return FromImage(img), format, nil
}
