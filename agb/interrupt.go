package agb

import (
	"embedded/rtos"

	_ "unsafe" // for linkname
)

// Irq is the external interrupt line of the ARM7TDMI. All peripheral
// interrupts are routed here and dispatched by irqHandler.
const Irq rtos.IRQ = 0

var handlers = [14]func(){}

func init() {
	DisableInterrupts(^InterruptFlag(0))
	regs.master.Store(1)
	Irq.Enable(rtos.IntPrioLow, 0)
}

//go:linkname irqHandler IRQ_Handler
//go:interrupthandler
func irqHandler() {
	pending := regs.pending.Load() & regs.enable.Load()
	irq := 0
	for flag := InterruptFlag(1); flag != IntrLast; flag = flag << 1 {
		if flag&pending != 0 {
			handler := handlers[irq]
			if handler == nil {
				panic("unhandled interrupt")
			}
			handler()

			// Acknowledge in IF and mirror into the BIOS flags so
			// the IntrWait functions keep working.
			regs.pending.Store(flag)
			biosFlags.Store(biosFlags.Load() | flag)
		}
		irq += 1
	}
}

func SetHandler(int InterruptFlag, handler func()) {
	en, prio, _ := Irq.Status(0)
	Irq.Disable(0)

	irq := 0
	for flag := InterruptFlag(1); flag != IntrLast; flag = flag << 1 {
		if flag&int != 0 {
			handlers[irq] = handler
			break
		}
		irq += 1
	}

	if en {
		Irq.Enable(prio, 0)
	}
}

func Handler(int InterruptFlag) func() {
	irq := 0
	for flag := InterruptFlag(1); flag != IntrLast; flag = flag << 1 {
		if flag&int != 0 {
			return handlers[irq]
		}
		irq += 1
	}
	return nil
}

func EnableInterrupts(mask InterruptFlag) {
	regs.enable.Store(regs.enable.Load() | mask)
}

func DisableInterrupts(mask InterruptFlag) {
	regs.enable.Store(regs.enable.Load() &^ mask)
	regs.pending.Store(mask)
}
