// Package mgba provides logging via the debug interface of the mGBA emulator.
//
// Real hardware ignores the involved registers, probing is required before
// use. See https://github.com/mgba-emu/mgba/blob/master/opt/libgba/mgba.c for
// the reference implementation shipped with the emulator.
package mgba

import (
	"unsafe"

	"embedded/mmio"

	"github.com/clktmr/gba/agb/cpu"
)

var regs *registers = (*registers)(unsafe.Pointer(baseAddr))

const baseAddr uintptr = cpu.IO | 0xfff600
const bufferSize = 256

const (
	enableReq = 0xc0de
	enableAck = 0x1dea
)

// Log levels of the emulator. Messages below the emulator's configured level
// are dropped silently.
type Level uint16

const (
	Fatal Level = iota
	Error
	Warn
	Info
	Debug

	send Level = 0x100
)

type registers struct {
	str    [bufferSize / 2]mmio.U16
	flags  mmio.R16[Level]
	_      [0x3f]mmio.U16
	enable mmio.U16
}

// MGBA writes each Write as a single log message.
type MGBA struct {
	level Level
}

// Probe enables the debug interface. Returns nil if we aren't running inside
// the emulator.
func Probe() *MGBA {
	regs.enable.Store(enableReq)
	if regs.enable.Load() == enableAck {
		return &MGBA{level: Info}
	}
	return nil
}

// SetLevel changes the level subsequent messages are reported with.
func (v *MGBA) SetLevel(level Level) {
	v.level = level
}

func (v *MGBA) Write(p []byte) (n int, err error) {
	// The string register rejects byte writes, like all of VRAM. Pack the
	// message into halfword stores.
	for len(p) > 0 {
		msg := p
		if len(msg) > bufferSize {
			msg = msg[:bufferSize]
		}
		for i := 0; i < len(msg); i += 2 {
			hw := uint16(msg[i])
			if i+1 < len(msg) {
				hw |= uint16(msg[i+1]) << 8
			}
			regs.str[i/2].Store(hw)
		}
		if len(msg) < bufferSize && len(msg)%2 == 0 {
			regs.str[len(msg)/2].Store(0)
		}
		regs.flags.Store(v.level | send)
		n += len(msg)
		p = p[len(msg):]
	}
	return n, nil
}
