// Package framebuffer provides draw.Image implementations for the bitmap
// display modes.
package framebuffer

import (
	"image"
	"unsafe"

	"github.com/clktmr/gba/agb/cpu"
	"github.com/clktmr/gba/agb/video"
)

// Framebuffer is the mode 3 bitmap in VRAM. Implements draw.Image, so all the
// drawing tools from the standard library can be used. All rendering done
// this way is without hardware acceleration and rather slow, but a rumble
// cartridge leaves the PPU mostly idle anyway.
//
// Mode 3 has a single page, there is no buffer to swap. Draw during vblank to
// avoid tearing.
type Framebuffer struct {
	BGR555
}

var vram = &Framebuffer{BGR555{
	Pix:    unsafe.Slice((*uint16)(unsafe.Pointer(cpu.VRAM)), video.Width*video.Height),
	Stride: video.Width,
	Rect:   image.Rect(0, 0, video.Width, video.Height),
}}

// VRAM returns the framebuffer. Only valid while mode 3 is set up, see
// [video.SetupMode3].
func VRAM() *Framebuffer {
	return vram
}

// Clear fills the whole framebuffer with a single color, given in the native
// pixel format.
func (fb *Framebuffer) Clear(c uint16) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}
