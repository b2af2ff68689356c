package resize

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestLanczosKernel(t *testing.T) {
	if got := lanczos3(0); got != 1 {
		t.Errorf("lanczos3(0) = %v, want 1", got)
	}
	for _, x := range []float64{1, 2} {
		if got := lanczos3(x); math.Abs(got) > 1e-12 {
			t.Errorf("lanczos3(%v) = %v, want 0", x, got)
		}
	}
	if got := lanczos3(3.5); got != 0 {
		t.Errorf("lanczos3(3.5) = %v, want 0 outside support", got)
	}
}

func TestSquareDimensions(t *testing.T) {
	src := solid(300, 200, color.NRGBA{10, 20, 30, 255})
	for _, size := range []int{72, 192, 512} {
		got := Square(src, size).Bounds()
		if got.Dx() != size || got.Dy() != size {
			t.Errorf("Square(%d) bounds = %v", size, got)
		}
	}
}

func TestSquarePreservesAlpha(t *testing.T) {
	src := solid(64, 64, color.NRGBA{0, 0, 0, 0})
	dst := Square(src, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a := dst.RGBAAt(x, y).A; a != 0 {
				t.Fatalf("alpha at (%d,%d) = %d, want 0", x, y, a)
			}
		}
	}
}

func TestSquareSolidColorStaysSolid(t *testing.T) {
	want := color.RGBA{200, 100, 50, 255}
	dst := Square(solid(100, 100, want), 37)
	got := dst.RGBAAt(18, 18)
	if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) || !near(got.A, 255) {
		t.Errorf("center pixel = %v, want %v", got, want)
	}
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func TestToRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if ToRGBA(rgba) != rgba {
		t.Error("ToRGBA copied an image that was already RGBA")
	}

	gray := image.NewGray(image.Rect(2, 2, 6, 5))
	gray.SetGray(2, 2, color.Gray{Y: 128})
	out := ToRGBA(gray)
	if out.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("bounds = %v, want (0,0)-(4,3)", out.Bounds())
	}
	if got := out.RGBAAt(0, 0); got != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("pixel (0,0) = %v", got)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, ErrMissingSource) {
		t.Errorf("Load missing = %v, want ErrMissingSource", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(p, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(p)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Load corrupt = %v, want ErrDecode", err)
	}
}

func TestLoadPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(8, 6, color.White)); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(t.TempDir(), "m.png")
	if err := os.WriteFile(p, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	img, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("bounds = %v", b)
	}
}
