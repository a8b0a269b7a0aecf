package pixfilter

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

// Pixmap errors.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("pixfilter: invalid dimensions")

	// ErrBufferSize is returned when a data buffer does not hold exactly
	// width*height*4 bytes.
	ErrBufferSize = errors.New("pixfilter: buffer length != width*height*4")
)

// Pixmap represents a rectangular RGBA8 pixel buffer.
//
// The data is non-premultiplied, channel order R,G,B,A, row-major with no
// padding between rows. The length invariant len(data) == width*height*4
// holds for every Pixmap; it is established by the constructors and never
// re-derived per pixel access.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromData creates a pixmap over an existing RGBA8 buffer.
// The buffer is used directly, not copied. This is the single point where
// the width*height*4 length invariant is validated.
func FromData(width, height int, data []uint8) (*Pixmap, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != width*height*4 {
		return nil, ErrBufferSize
	}
	return &Pixmap{width: width, height: height, data: data}, nil
}

// FromImage creates a pixmap from any decoded image, converting to
// non-premultiplied RGBA8.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	if pm.width == 0 || pm.height == 0 {
		return pm
	}

	dst := &image.NRGBA{
		Pix:    pm.data,
		Stride: pm.width * 4,
		Rect:   image.Rect(0, 0, pm.width, pm.height),
	}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return pm
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
// Mutating the returned slice mutates the pixmap.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return the zero color.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.NRGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// ToImage converts the pixmap to a freshly allocated image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
