// Package resize scales still images down to a bounded size for upload.
package resize

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // webp sources can be decoded, not encoded
)

// ErrDisabled is returned when resizing is turned off.
var ErrDisabled = errors.New("resize disabled")

type Resizer struct {
	maxDim  int
	quality int
	dryRun  bool
}

// New returns a Resizer that fits images within maxDim on their long edge.
// maxDim <= 0 disables resizing.
func New(maxDim, quality int, dryRun bool) *Resizer {
	if quality < 1 || quality > 100 {
		quality = 90
	}
	return &Resizer{maxDim: maxDim, quality: quality, dryRun: dryRun}
}

// Resize decodes src, applies EXIF orientation, scales it to fit and encodes
// it to dest in the format implied by dest's extension. Images already within
// bounds are re-encoded at their own size.
func (r *Resizer) Resize(src, dest string) error {
	if r.maxDim <= 0 {
		return ErrDisabled
	}

	format, err := imaging.FormatFromFilename(dest)
	if err != nil {
		return fmt.Errorf("output format: %w", err)
	}

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode %s: %w", src, err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > r.maxDim || h > r.maxDim {
		if w >= h {
			img = imaging.Resize(img, r.maxDim, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, r.maxDim, imaging.Lanczos)
		}
	}

	if r.dryRun {
		return nil
	}

	partPath := dest + ".part"
	if err := encode(partPath, img, format, r.quality); err != nil {
		os.Remove(partPath)
		return err
	}
	return os.Rename(partPath, dest)
}

func encode(path string, img image.Image, format imaging.Format, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = imaging.Encode(f, img, format, imaging.JPEGQuality(quality))
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
