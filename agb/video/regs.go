// The display controller reads tile or bitmap data from VRAM and outputs it to
// the LCD, 160 visible lines per frame followed by a vertical blanking period.
package video

import (
	"embedded/mmio"
	"unsafe"

	"github.com/clktmr/gba/agb/cpu"
)

var regs *registers = (*registers)(unsafe.Pointer(baseAddr))

const baseAddr = uintptr(cpu.IO)

type statusFlags uint16

const (
	inVBlank   statusFlags = 1 << 0 // read-only
	inHBlank   statusFlags = 1 << 1 // read-only
	vCountHit  statusFlags = 1 << 2 // read-only
	vblankIrq  statusFlags = 1 << 3
	hblankIrq  statusFlags = 1 << 4
	vcountIrq  statusFlags = 1 << 5
)

type registers struct {
	control mmio.U16              // DISPCNT
	_       mmio.U16              // green swap, undocumented
	status  mmio.R16[statusFlags] // DISPSTAT
	vcount  mmio.U16              // current scanline, 160-227 during vblank
	bg      [4]mmio.U16           // BG0CNT-BG3CNT
}

// DISPCNT bits
const (
	modeMask    = 0x7
	forcedBlank = 1 << 7
	bg0Enable   = 1 << 8
	bg1Enable   = 1 << 9
	bg2Enable   = 1 << 10
	bg3Enable   = 1 << 11
)
