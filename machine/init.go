//go:build gba

package machine

import (
	"embedded/mmio"
	"unsafe"

	"github.com/clktmr/gba/agb/cpu"
)

func init() {
	// Unlock the emulator's debug interface as early as possible so no
	// DefaultWrite output is dropped.
	enable := (*mmio.U16)(unsafe.Pointer(cpu.IO | 0xfff780))
	enable.Store(0xc0de)
}
