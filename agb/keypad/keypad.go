// Package keypad reads the console's buttons.
package keypad

import (
	"embedded/mmio"
	"unsafe"

	"github.com/clktmr/gba/agb/cpu"
)

var regs *registers = (*registers)(unsafe.Pointer(baseAddr))

const baseAddr = uintptr(cpu.IO | 0x0130)

type registers struct {
	input   mmio.U16 // KEYINPUT, buttons read as 0 while held
	control mmio.U16 // KEYCNT, keypad interrupt condition
}

type Button uint16

const (
	A Button = 1 << iota
	B
	Select
	Start
	Right
	Left
	Up
	Down
	R
	L
)

const buttonMask Button = 0x03ff

// AllDirections can't be produced on a real pad. The Game Boy Player reports
// all four directions at once to signal that its extra features are unlocked.
const AllDirections = Right | Left | Up | Down

// Down returns the buttons currently held.
func Down() Button {
	return ^Button(regs.input.Load()) & buttonMask
}

type State struct {
	Down    Button
	Changed Button
}

func (s *State) Pressed(b Button) bool {
	return (s.Down&b) != 0 && (s.Changed&b) != 0
}

func (s *State) Released(b Button) bool {
	return (s.Down&b) == 0 && (s.Changed&b) != 0
}

var lastDown Button

// Poll reads the keypad and reports changes since the previous call. Call
// once per frame.
func Poll() State {
	down := Down()
	state := State{Down: down, Changed: down ^ lastDown}
	lastDown = down
	return state
}
