// Package icon draws the placeholder app icon: a white disc on a blue
// square with a two-line label, at any edge length.
package icon

import (
	"fmt"
	"image"
	"sync"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Mavwarf/pwaicons/internal/config"
)

// Fonts holds the typefaces for the two labels.
type Fonts struct {
	Primary   *truetype.Font
	Secondary *truetype.Font
}

var loadDefault = sync.OnceValues(func() (*Fonts, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse Go Bold: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse Go Regular: %w", err)
	}
	return &Fonts{Primary: bold, Secondary: regular}, nil
})

// DefaultFonts returns the embedded Go fonts, parsed once.
func DefaultFonts() (*Fonts, error) {
	return loadDefault()
}

// Draw renders the placeholder at size×size using the default fonts.
func Draw(size int) (image.Image, error) {
	fonts, err := DefaultFonts()
	if err != nil {
		return nil, err
	}
	return DrawWith(size, fonts), nil
}

// DrawWith renders the placeholder with the given fonts. A nil fonts value
// means no font is available: labels are drawn with gg's built-in bitmap
// face and laid out from approximate metrics.
func DrawWith(size int, fonts *Fonts) image.Image {
	dc := gg.NewContext(size, size)
	dc.SetColor(config.Background)
	dc.Clear()

	var primary, secondary Extent
	var primaryFace, secondaryFace font.Face
	if fonts != nil {
		primaryFace = newFace(fonts.Primary, config.PrimaryFontSize(size))
		secondaryFace = newFace(fonts.Secondary, config.SecondaryFontSize(size))
		defer primaryFace.Close()
		defer secondaryFace.Close()
		primary = measure(dc, primaryFace, config.PrimaryText)
		secondary = measure(dc, secondaryFace, config.SecondaryText)
	} else {
		primary, secondary = FallbackExtents(size)
	}

	g := Layout(size, primary, secondary)

	dc.SetColor(config.Circle)
	dc.DrawCircle(g.CX, g.CY, g.R)
	dc.Fill()

	if primaryFace != nil {
		dc.SetFontFace(primaryFace)
	}
	dc.SetColor(config.PrimaryLabel)
	dc.DrawString(config.PrimaryText, g.Primary.X, g.Primary.Bottom())

	if secondaryFace != nil {
		dc.SetFontFace(secondaryFace)
	}
	dc.SetColor(config.SecondaryLabel)
	dc.DrawString(config.SecondaryText, g.Secondary.X, g.Secondary.Bottom())

	return dc.Image()
}

func newFace(f *truetype.Font, px int) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func measure(dc *gg.Context, face font.Face, s string) Extent {
	dc.SetFontFace(face)
	w, h := dc.MeasureString(s)
	return Extent{W: w, H: h}
}

// Extent is the measured width and height of a label.
type Extent struct {
	W, H float64
}

// FallbackExtents approximates label extents when no font is available.
func FallbackExtents(size int) (primary, secondary Extent) {
	s := float64(size)
	h := s / config.FallbackHeightDivisor
	primary = Extent{
		W: float64(utf8.RuneCountInString(config.PrimaryText)) * s / config.PrimaryWidthK,
		H: h,
	}
	secondary = Extent{
		W: float64(utf8.RuneCountInString(config.SecondaryText)) * s / config.SecondaryWidthK,
		H: h,
	}
	return primary, secondary
}

// Box is a label's bounding box; X, Y is the top-left corner.
type Box struct {
	X, Y, W, H float64
}

// Bottom returns the y coordinate of the box's lower edge, used as baseline.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Geometry is the placement of every element in a placeholder icon.
type Geometry struct {
	CX, CY, R float64
	Primary   Box
	Secondary Box
}

// Layout places the disc and both labels. The disc is inset by size/8 on
// every side. The primary label is centered, then lifted by size/20; the
// secondary label sits size/30 below it.
func Layout(size int, primary, secondary Extent) Geometry {
	s := float64(size)
	margin := s / config.MarginDivisor
	g := Geometry{
		CX: s / 2,
		CY: s / 2,
		R:  (s - 2*margin) / 2,
	}
	g.Primary = Box{
		X: (s - primary.W) / 2,
		Y: g.CY - primary.H/2 - s/config.LiftDivisor,
		W: primary.W,
		H: primary.H,
	}
	g.Secondary = Box{
		X: (s - secondary.W) / 2,
		Y: g.Primary.Bottom() + s/config.GapDivisor,
		W: secondary.W,
		H: secondary.H,
	}
	return g
}
