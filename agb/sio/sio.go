package sio

// Normal8 drives the serial unit in 8 bit normal mode, exchanging one byte per
// transfer with the external device. The zero value is ready for use after a
// call to Setup.
type Normal8 struct{}

// Setup puts the serial unit into 8 bit normal mode with an external shift
// clock, i.e. the device on the other end of the link drives the exchange.
//
// Completed transfers raise the serial interrupt, but it stays masked. To use
// it, install a handler with agb.SetHandler and unmask with
// agb.EnableInterrupts. Without it transfers can still be tracked by polling
// Busy.
func (Normal8) Setup() {
	regs.mode.Store(0) // serial mode, details selected in SIOCNT
	regs.control.Store(soIdle | irqEnable)
}

// Begin starts the transfer of a single byte. It must not be called while a
// transfer is outstanding.
func (Normal8) Begin(b byte) {
	regs.data8.Store(uint16(b))
	regs.control.Store(regs.control.Load() | start)
}

// Busy reports whether a transfer is outstanding. The hardware clears the
// start bit when the last bit was shifted.
func (Normal8) Busy() bool {
	return regs.control.Load()&start != 0
}

// Data returns the byte received by the last completed transfer.
func (Normal8) Data() byte {
	return byte(regs.data8.Load())
}

// Normal32 is the 32 bit variant of [Normal8].
type Normal32 struct{}

func (Normal32) Setup() {
	regs.mode.Store(0)
	regs.control.Store(soIdle | width32 | irqEnable)
}

func (Normal32) Begin(w uint32) {
	regs.data32.Store(w)
	regs.control.Store(regs.control.Load() | start)
}

func (Normal32) Busy() bool {
	return regs.control.Load()&start != 0
}

func (Normal32) Data() uint32 {
	return regs.data32.Load()
}
