package video

import (
	"embedded/rtos"

	"github.com/clktmr/gba/agb"
)

// VBlank can be used to wait until the next vertical blank.
var VBlank rtos.Note

func init() {
	agb.SetHandler(agb.IntrVBlank, handler)
	regs.status.Store(regs.status.Load() | vblankIrq)
	agb.EnableInterrupts(agb.IntrVBlank)
}

//go:nosplit
//go:nowritebarrierrec
func handler() {
	VBlank.Wakeup()
}
