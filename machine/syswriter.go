package machine

import (
	"embedded/mmio"
	"unsafe"

	"github.com/clktmr/gba/agb/cpu"
)

var regs *registers = (*registers)(unsafe.Pointer(baseAddr))

const baseAddr uintptr = cpu.IO | 0xfff600
const bufferSize = 256

type registers struct {
	str   [bufferSize / 2]mmio.U16
	flags mmio.U16
}

const flagSend = 0x100 | 2 // log level warn

// Writes to the mGBA debug registers, regardless if the emulator is present
// or not. Real hardware ignores these addresses. Only intended as a fail safe
// logger in very early boot, see drivers/mgba for the probed version.
//
//go:nowritebarrierrec
//go:nosplit
//go:linkname DefaultWrite runtime.defaultWrite
func DefaultWrite(fd int, p []byte) int {
	written := len(p)
	for len(p) > 0 {
		n := len(p)
		if n > bufferSize {
			n = bufferSize
		}

		for i := 0; i < n/2; i++ {
			regs.str[i].Store(uint16(p[2*i]) | uint16(p[2*i+1])<<8)
		}
		if n%2 != 0 {
			regs.str[n/2].Store(uint16(p[n-1]))
		} else if n < bufferSize {
			regs.str[n/2].Store(0)
		}

		regs.flags.Store(flagSend)
		p = p[n:]
	}

	return written
}

type defaultWriter int

const DefaultWriter defaultWriter = 0

func (v defaultWriter) Write(p []byte) (int, error) {
	return DefaultWrite(int(v), p), nil
}
