package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const jpegQuality = 90

// ErrEmptyRegion means no crop rectangle was finalized before apply.
var ErrEmptyRegion = errors.New("crop region is empty")

// Region is a rectangular sub-area of an image in pixel coordinates.
// Coordinates are float64 because selections arrive as scaled fractions of
// the displayed image.
type Region struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ScaleToNatural converts a region captured against the displayed image
// into natural (intrinsic) pixel coordinates. Skipping this conversion
// produces offset crops whenever the display size differs from the natural
// size, which is the common case.
func ScaleToNatural(r Region, naturalW, naturalH, displayW, displayH int) Region {
	if displayW <= 0 || displayH <= 0 {
		return r
	}
	sx := float64(naturalW) / float64(displayW)
	sy := float64(naturalH) / float64(displayH)
	return Region{
		X:      r.X * sx,
		Y:      r.Y * sy,
		Width:  r.Width * sx,
		Height: r.Height * sy,
	}
}

// CenteredRegion builds the default selection for an aspect preset: 90% of
// the image width, clamped to the image height, centered.
func CenteredRegion(aspect float64, imageW, imageH int) Region {
	w := 0.9 * float64(imageW)
	h := w / aspect
	if h > float64(imageH) {
		h = float64(imageH)
		w = h * aspect
	}
	return Region{
		X:      (float64(imageW) - w) / 2,
		Y:      (float64(imageH) - h) / 2,
		Width:  w,
		Height: h,
	}
}

// FreeRegion is the default selection for free-form mode: the centered
// half of the image.
func FreeRegion(imageW, imageH int) Region {
	return Region{
		X:      float64(imageW) / 4,
		Y:      float64(imageH) / 4,
		Width:  float64(imageW) / 2,
		Height: float64(imageH) / 2,
	}
}

// Crop rasterizes the selected sub-rectangle of img into a new image of the
// region's size. The region is clamped to the image bounds; pixel density
// is preserved (no rescaling).
func Crop(img image.Image, r Region) (image.Image, error) {
	if r.Empty() {
		return nil, ErrEmptyRegion
	}

	bounds := img.Bounds()
	src := image.Rect(
		bounds.Min.X+int(r.X+0.5),
		bounds.Min.Y+int(r.Y+0.5),
		bounds.Min.X+int(r.X+r.Width+0.5),
		bounds.Min.Y+int(r.Y+r.Height+0.5),
	).Intersect(bounds)
	if src.Empty() {
		return nil, ErrEmptyRegion
	}

	dst := image.NewRGBA(image.Rect(0, 0, src.Dx(), src.Dy()))
	draw.Copy(dst, image.Point{}, img, src, draw.Src, nil)
	return dst, nil
}

// EncodeDataURI compresses img to JPEG and wraps it as a data URI, the
// displayable reference the article list stores.
func EncodeDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode JPEG: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
