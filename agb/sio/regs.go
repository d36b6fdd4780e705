// The serial interface connects the console to link cables and accessories
// over the four pins of the EXT connector. It supports several mutually
// exclusive modes, selected via RCNT and SIOCNT. Only the normal modes are
// implemented here, which shift a single word between two devices per
// transfer.
//
// Transfers are slow compared to the CPU. Blocking on a transfer should be
// avoided, use the serial interrupt instead.
package sio

import (
	"embedded/mmio"
	"unsafe"

	"github.com/clktmr/gba/agb/cpu"
)

var regs *registers = (*registers)(unsafe.Pointer(baseAddr))

const baseAddr = uintptr(cpu.IO | 0x0120)

type controlFlags uint16

const (
	clkInternal controlFlags = 1 << 0 // supply the shift clock ourselves
	clk2MHz     controlFlags = 1 << 1 // 2 MHz instead of 256 KHz internal clock
	siState     controlFlags = 1 << 2 // state of the SI pin, read-only
	soIdle      controlFlags = 1 << 3 // SO level during inactivity
	start       controlFlags = 1 << 7 // writing starts a transfer, reads back as busy
	width32     controlFlags = 1 << 12
	irqEnable   controlFlags = 1 << 14
)

type registers struct {
	data32  mmio.U32               // received and sent word in 32 bit mode
	multi2  mmio.U16               // multiplayer mode only
	multi3  mmio.U16               // multiplayer mode only
	control mmio.R16[controlFlags] // SIOCNT
	data8   mmio.U16               // received and sent byte in 8 bit mode
	_       [4]mmio.U16
	mode    mmio.U16 // RCNT, must select serial mode (bits 14-15 zero)
}
