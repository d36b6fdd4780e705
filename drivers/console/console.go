// Package console renders text written to it to the screen.
//
// Intended for logs and test output, rendering is slow and clobbers the whole
// framebuffer on every write.
package console

import (
	"bytes"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/clktmr/gba/agb/keypad"
	"github.com/clktmr/gba/framebuffer"
)

type Console struct {
	buf    bytes.Buffer
	scroll image.Point
}

var face = basicfont.Face7x13

func NewConsole() *Console { return &Console{} }

func (v *Console) Write(p []byte) (n int, err error) {
	n, err = v.buf.Write(p)
	v.Draw()
	return
}

// Update scrolls the console with the dpad.
func (v *Console) Update(input keypad.State) {
	switch {
	case input.Pressed(keypad.Up):
		v.scroll.Y += 1
	case input.Pressed(keypad.Down):
		v.scroll.Y -= 1
	case input.Pressed(keypad.Left):
		v.scroll.X += face.Advance
	case input.Pressed(keypad.Right):
		v.scroll.X -= face.Advance
	default:
		return
	}
	v.Draw()
}

// FIXME sync via mutex with Write?
func (v *Console) Draw() {
	fb := framebuffer.VRAM()
	bounds := fb.Bounds()

	height := 0
	b := v.buf.Bytes()
	bb := b
	lines := b[:0]
	maxLines := bounds.Dy() / face.Height
	lineCnt := 0
	skipped := 0
	for height < bounds.Dy() {
		lineCnt++

		idx := bytes.LastIndexByte(bb, '\n')
		if idx == -1 {
			lines = b
			break
		}
		bb, lines = b[:idx], b[idx:]

		if skipped < v.scroll.Y {
			skipped++
		} else {
			height += face.Height
		}
	}

	v.scroll.Y = min(max(0, skipped), lineCnt-maxLines)

	draw.Draw(fb, bounds, image.Black, image.Point{}, draw.Src)
	d := font.Drawer{Dst: fb, Src: image.White, Face: face}
	y := bounds.Min.Y + face.Ascent
	for line := range bytes.Lines(bytes.TrimPrefix(lines, []byte{'\n'})) {
		d.Dot = fixed.P(bounds.Min.X+v.scroll.X, y)
		d.DrawBytes(bytes.TrimSuffix(line, []byte{'\n'}))
		y += face.Height
	}
}
