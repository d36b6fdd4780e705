// Package machine is imported by the runtime and allows the target to implement
// some hooks, most importantly rt0.
package machine

import (
	"unsafe"

	"github.com/clktmr/gba/agb/cpu"
)

type ResetType uint8

const (
	ResetCold ResetType = 0
	ResetWarm ResetType = 1
)

// Set by the BIOS before jumping to the ROM entry point. Nonzero after a soft
// reset.
var Reset ResetType = *(*ResetType)(unsafe.Pointer(cpu.IWRAM | 0x7ffa))
