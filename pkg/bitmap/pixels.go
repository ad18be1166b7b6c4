package bitmap

import (
	"image"

	"github.com/pkg/errors"
)

// PixelBuffer holds decoded raster data in row-major order, 3 or 4
// bytes per pixel. The byte order within a pixel is BGR(A) — the order
// the panel consumes, as transmitted by the vendor application.
type PixelBuffer struct {
	Width    int
	Height   int
	Channels int
	Data     []byte
}

func (p *PixelBuffer) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return errors.Errorf("invalid dimensions %dx%d", p.Width, p.Height)
	}
	if p.Channels != 3 && p.Channels != 4 {
		return errors.Errorf("unsupported channel count %d", p.Channels)
	}
	if want := p.Width * p.Height * p.Channels; len(p.Data) != want {
		return errors.Errorf("pixel data is %d bytes, want %d", len(p.Data), want)
	}
	return nil
}

// at returns the pixel bytes at row r, column c.
func (p *PixelBuffer) at(r, c int) []byte {
	i := (r*p.Width + c) * p.Channels
	return p.Data[i : i+p.Channels]
}

// FromImage converts an image into the panel's BGRA byte order.
func FromImage(src image.Image) *PixelBuffer {
	b := src.Bounds()
	p := &PixelBuffer{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: 4,
		Data:     make([]byte, b.Dx()*b.Dy()*4),
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := src.At(x, y).RGBA()
			p.Data[i+0] = byte(bl >> 8)
			p.Data[i+1] = byte(g >> 8)
			p.Data[i+2] = byte(r >> 8)
			p.Data[i+3] = byte(a >> 8)
			i += 4
		}
	}
	return p
}
