// Package resize loads a master image and resamples it to square icons.
package resize

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"math"
	"os"

	"golang.org/x/image/draw"
)

var (
	// ErrMissingSource is returned by Load when the master file does not exist.
	ErrMissingSource = errors.New("master image not found")
	// ErrDecode is returned when the master exists but cannot be read or decoded.
	ErrDecode = errors.New("cannot decode master image")
)

// Lanczos3 is a windowed-sinc kernel with a support of 3 pixels.
var Lanczos3 = &draw.Kernel{Support: 3, At: lanczos3}

func lanczos3(t float64) float64 {
	if t == 0 {
		return 1
	}
	if t >= 3 {
		return 0
	}
	return sinc(t) * sinc(t/3)
}

func sinc(x float64) float64 {
	x *= math.Pi
	return math.Sin(x) / x
}

// Decode reads any registered image format (PNG, JPEG, GIF).
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// Load opens and decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSource, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()
	return Decode(f)
}

// ToRGBA returns img as an *image.RGBA anchored at the origin, copying only
// when img is some other color model or offset.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Square resamples src to a size×size image with the Lanczos3 kernel.
// The alpha channel is carried through; src is not modified.
func Square(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	Lanczos3.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
