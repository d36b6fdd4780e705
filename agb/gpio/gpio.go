// Package gpio exposes the general purpose I/O block found on some game paks.
//
// The four GPIO lines live in the cartridge address space and are wired to
// extra hardware on the pak, e.g. a real-time clock, a solar sensor or a
// rumble motor. Which lines are connected to what is decided by the pak's
// board, the console itself always exposes the registers.
package gpio

import (
	"embedded/mmio"
	"unsafe"

	"github.com/clktmr/gba/agb/cpu"
	"github.com/clktmr/gba/debug"
)

var regs *registers = (*registers)(unsafe.Pointer(baseAddr))

const baseAddr = uintptr(cpu.ROM | 0xc4)

type registers struct {
	data      mmio.U16 // levels of the four lines in bits 0-3
	direction mmio.U16 // 1 drives the line, 0 reads it
	control   mmio.U16 // bit 0 makes this block readable
}

// Pin is a single GPIO line.
type Pin uint8

// Line assignments used by official game paks.
const (
	RTCSCK Pin = 0 // S-3511 clock
	RTCSIO Pin = 1 // S-3511 data
	RTCCS  Pin = 2 // S-3511 chip select
	Rumble Pin = 3 // motor driver of rumble paks
)

const numPins = 4

// Enable makes the GPIO registers readable. Writes work regardless.
func Enable() {
	regs.control.Store(1)
}

func Disable() {
	regs.control.Store(0)
}

// Output configures the pin to drive its line.
func (p Pin) Output() {
	debug.Assert(p < numPins, "gpio: no such pin")
	Enable()
	regs.direction.Store(regs.direction.Load() | 1<<p)
}

// Input configures the pin to read its line.
func (p Pin) Input() {
	debug.Assert(p < numPins, "gpio: no such pin")
	Enable()
	regs.direction.Store(regs.direction.Load() &^ (1 << p))
}

func (p Pin) Set(v bool) {
	if v {
		regs.data.Store(regs.data.Load() | 1<<p)
	} else {
		regs.data.Store(regs.data.Load() &^ (1 << p))
	}
}

func (p Pin) Get() bool {
	return regs.data.Load()&(1<<p) != 0
}
