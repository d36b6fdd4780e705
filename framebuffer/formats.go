package framebuffer

import (
	"image"
	"image/color"
)

// Stores pixels in BGR with 15bit (5:5:5), the native format of the bitmap
// display modes and the palettes. Pixels are halfwords because VRAM ignores
// byte writes.
type BGR555 struct {
	Pix    []uint16
	Stride int
	Rect   image.Rectangle
}

func NewBGR555(r image.Rectangle) *BGR555 {
	return &BGR555{
		Pix:    make([]uint16, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

type colorBGR555 uint16

func (c colorBGR555) RGBA() (r, g, b, a uint32) {
	return uint32(c<<11) & 0xf800, uint32(c<<6) & 0xf800,
		uint32(c<<1) & 0xf800, 0xffff
}

var BGR555Model color.Model = color.ModelFunc(bgr555Model)

func bgr555Model(c color.Color) color.Color {
	if _, ok := c.(colorBGR555); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return colorBGR555((r&0xf800)>>11 | (g&0xf800)>>6 | (b&0xf800)>>1)
}

func (p *BGR555) ColorModel() color.Model { return BGR555Model }

func (p *BGR555) Bounds() image.Rectangle {
	return p.Rect
}

func (p *BGR555) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	return colorBGR555(p.Pix[p.PixOffset(x, y)])
}

func (p *BGR555) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	col, _ := bgr555Model(c).(colorBGR555)
	p.Pix[p.PixOffset(x, y)] = uint16(col)
}

func (p *BGR555) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}
