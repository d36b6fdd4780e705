package video

import (
	"embedded/mmio"
	"unsafe"

	"github.com/clktmr/gba/agb/cpu"
	"github.com/clktmr/gba/debug"
)

// Native resolution of the LCD
const (
	Width  = 240
	Height = 160
)

const (
	charBlockSize   = 0x4000 // tile data granularity in BGxCNT
	screenBlockSize = 0x800  // tile map granularity in BGxCNT
)

// SetupMode3 switches the display to the linear 15 bit bitmap mode. The
// framebuffer is read directly from the start of VRAM, see the framebuffer
// package.
func SetupMode3() {
	regs.control.Store(3 | bg2Enable)
}

// SetupMode0BG0 switches the display to tiled mode with only background 0
// enabled, reading tile data from charBlock and the tile map from
// screenBlock.
func SetupMode0BG0(charBlock, screenBlock int) {
	debug.Assert(charBlock < 4 && screenBlock < 32, "video: block out of range")
	regs.bg[0].Store(uint16(charBlock)<<2 | uint16(screenBlock)<<8)
	regs.control.Store(0 | bg0Enable)
}

// Blank forces the display to output white and gives the CPU full VRAM
// bandwidth, useful while uploading large amounts of data.
func Blank(v bool) {
	if v {
		regs.control.Store(regs.control.Load() | forcedBlank)
	} else {
		regs.control.Store(regs.control.Load() &^ forcedBlank)
	}
}

// VCount returns the scanline currently being drawn. Values of 160 and above
// are inside the vertical blanking period.
func VCount() int {
	return int(regs.vcount.Load())
}

// State records the display configuration for later restore, e.g. around a
// temporarily shown screen.
type State struct {
	control, bg0 uint16
}

func Save() State {
	return State{regs.control.Load(), regs.bg[0].Load()}
}

func (st State) Restore() {
	regs.bg[0].Store(st.bg0)
	regs.control.Store(st.control)
}

// LoadTiles copies 4 bit tile data into the given char block.
func LoadTiles(charBlock int, data []byte) {
	debug.Assert(charBlock < 4, "video: block out of range")
	store16(cpu.VRAM+uintptr(charBlock)*charBlockSize, data)
}

// LoadMap copies a tile map into the given screen block.
func LoadMap(screenBlock int, data []byte) {
	debug.Assert(screenBlock < 32, "video: block out of range")
	store16(cpu.VRAM+uintptr(screenBlock)*screenBlockSize, data)
}

// LoadPalette copies 15 bit background palette entries, 2 bytes each, little
// endian.
func LoadPalette(data []byte) {
	store16(cpu.Palette, data)
}

// VRAM and palette RAM ignore 8 bit writes, copy in 16 bit units.
func store16(addr uintptr, data []byte) {
	debug.Assert(len(data)%2 == 0, "video: odd data length")
	for i := 0; i < len(data); i += 2 {
		reg := (*mmio.U16)(unsafe.Pointer(addr + uintptr(i)))
		reg.Store(uint16(data[i]) | uint16(data[i+1])<<8)
	}
}
