package agb

import (
	"embedded/mmio"
	"unsafe"

	"github.com/clktmr/gba/agb/cpu"
)

var regs *registers = (*registers)(unsafe.Pointer(baseAddr))

const baseAddr = uintptr(cpu.IO | 0x0200)

// All interrupt sources are routed to the single IRQ line of the ARM7TDMI.
// They must be dispatched by reading the pending register in the IRQ handler.
type InterruptFlag uint16

const (
	IntrVBlank  InterruptFlag = 1 << iota // start of the vertical blanking period
	IntrHBlank                            // start of a horizontal blanking period
	IntrVCount                            // VCOUNT reached the value in DISPSTAT
	IntrTimer0                            // timer 0 overflow
	IntrTimer1                            // timer 1 overflow
	IntrTimer2                            // timer 2 overflow
	IntrTimer3                            // timer 3 overflow
	IntrSerial                            // serial transfer completed
	IntrDMA0                              // DMA channel 0 finished
	IntrDMA1                              // DMA channel 1 finished
	IntrDMA2                              // DMA channel 2 finished
	IntrDMA3                              // DMA channel 3 finished
	IntrKeypad                            // key combination in KEYCNT pressed
	IntrGamePak                           // cartridge raised IREQ or was removed

	IntrLast
)

type registers struct {
	enable  mmio.R16[InterruptFlag] // IE
	pending mmio.R16[InterruptFlag] // IF, write a flag to acknowledge it
	_       mmio.U16
	_       mmio.U16 // WAITCNT lives in its own block
	master  mmio.U16 // IME, bit 0 gates all interrupts
}

// The BIOS idle functions (Halt, IntrWait, VBlankIntrWait) wait on their own
// flag word in IWRAM, which must be updated by the IRQ handler in addition to
// acknowledging IF.
var biosFlags *mmio.R16[InterruptFlag] = (*mmio.R16[InterruptFlag])(unsafe.Pointer(uintptr(cpu.IWRAM | 0x7ff8)))
