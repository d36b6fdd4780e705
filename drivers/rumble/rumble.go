// Package rumble makes the game pak shake.
//
// Two independent hardware paths provide rumble feedback:
//
//   - [Cart] drives a motor on the game pak itself over a cartridge GPIO
//     line, as found on official rumble paks.
//   - [GameBoyPlayer] commands the rumble feature of the Game Boy Player
//     accessory over the serial port. The accessory must first be found by
//     running a [Detector].
//
// Both consume their hardware access through narrow interfaces, implemented
// by the agb/gpio and agb/sio packages. This keeps the protocol state
// machines free of register accesses, so they can be run against a simulated
// backend.
package rumble

// Pin is the cartridge GPIO line wired to the motor driver. Implemented by
// agb/gpio.Pin.
type Pin interface {
	// Output configures the line as an output.
	Output()
	// Set drives the line high or low.
	Set(bool)
}

// Port is the byte transfer capability of the serial unit. Implemented by
// agb/sio.Normal8.
type Port interface {
	// Begin starts the transfer of a single byte.
	Begin(b byte)
	// Busy reports whether the transfer is still outstanding.
	Busy() bool
	// Data returns the byte received by the last completed transfer.
	Data() byte
}
