package pixfilter

import (
	"image"
	"image/color"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(10, 20)

	if pm.Width() != 10 {
		t.Errorf("Width() = %d, want 10", pm.Width())
	}
	if pm.Height() != 20 {
		t.Errorf("Height() = %d, want 20", pm.Height())
	}
	if len(pm.Data()) != 10*20*4 {
		t.Errorf("len(Data()) = %d, want %d", len(pm.Data()), 10*20*4)
	}
}

func TestNewPixmapNegativeDimensions(t *testing.T) {
	pm := NewPixmap(-5, -3)

	if pm.Width() != 0 || pm.Height() != 0 {
		t.Errorf("dimensions = %dx%d, want 0x0", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 0 {
		t.Errorf("len(Data()) = %d, want 0", len(pm.Data()))
	}
}

func TestFromData(t *testing.T) {
	data := make([]uint8, 4*3*4)
	pm, err := FromData(4, 3, data)
	if err != nil {
		t.Fatalf("FromData() = %v", err)
	}

	// Buffer must be shared, not copied.
	data[0] = 42
	if pm.Data()[0] != 42 {
		t.Error("FromData should wrap the buffer, not copy it")
	}
}

func TestFromDataLengthMismatch(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		dataLen int
	}{
		{name: "too short", w: 4, h: 3, dataLen: 4*3*4 - 1},
		{name: "too long", w: 4, h: 3, dataLen: 4*3*4 + 1},
		{name: "empty for nonzero dims", w: 2, h: 2, dataLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromData(tt.w, tt.h, make([]uint8, tt.dataLen))
			if err != ErrBufferSize {
				t.Errorf("FromData() error = %v, want ErrBufferSize", err)
			}
		})
	}
}

func TestFromDataInvalidDimensions(t *testing.T) {
	_, err := FromData(-1, 3, nil)
	if err != ErrInvalidDimensions {
		t.Errorf("FromData() error = %v, want ErrInvalidDimensions", err)
	}
}

func TestSetGetPixel(t *testing.T) {
	pm := NewPixmap(3, 3)
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 255}

	pm.SetPixel(1, 2, c)

	if got := pm.GetPixel(1, 2); got != c {
		t.Errorf("GetPixel(1,2) = %v, want %v", got, c)
	}

	// Raw layout: row-major, 4 bytes per pixel.
	i := (2*3 + 1) * 4
	if pm.Data()[i] != 10 || pm.Data()[i+1] != 20 || pm.Data()[i+2] != 30 || pm.Data()[i+3] != 255 {
		t.Error("SetPixel wrote wrong bytes")
	}
}

func TestSetGetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(2, 2)

	// Must not panic.
	pm.SetPixel(-1, 0, color.NRGBA{R: 255})
	pm.SetPixel(2, 0, color.NRGBA{R: 255})
	pm.SetPixel(0, 2, color.NRGBA{R: 255})

	if got := pm.GetPixel(5, 5); got != (color.NRGBA{}) {
		t.Errorf("GetPixel out of bounds = %v, want zero color", got)
	}
	for _, b := range pm.Data() {
		if b != 0 {
			t.Fatal("out-of-bounds SetPixel mutated the buffer")
		}
	}
}

func TestClear(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(color.NRGBA{R: 1, G: 2, B: 3, A: 4})

	for i := 0; i < len(pm.Data()); i += 4 {
		if pm.Data()[i] != 1 || pm.Data()[i+1] != 2 || pm.Data()[i+2] != 3 || pm.Data()[i+3] != 4 {
			t.Fatalf("pixel at byte %d not cleared", i)
		}
	}
}

func TestFromImageToImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 80), B: 7, A: 255})
		}
	}

	pm := FromImage(src)
	back := pm.ToImage()

	for i, b := range src.Pix {
		if back.Pix[i] != b {
			t.Fatalf("round trip mismatch at byte %d: got %d, want %d", i, back.Pix[i], b)
		}
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	// Images whose bounds do not start at the origin must still convert.
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.SetNRGBA(5, 5, color.NRGBA{R: 200, A: 255})

	pm := FromImage(src)

	if pm.Width() != 3 || pm.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(0, 0); got.R != 200 {
		t.Errorf("GetPixel(0,0).R = %d, want 200", got.R)
	}
}

func TestPixmapImplementsImage(t *testing.T) {
	var _ image.Image = (*Pixmap)(nil)

	pm := NewPixmap(2, 2)
	if pm.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", pm.Bounds())
	}
	if pm.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() should be NRGBAModel")
	}
}
