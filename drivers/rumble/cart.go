package rumble

// Cart is the rumble motor on the game pak itself. It has no state besides
// the level of the GPIO line.
type Cart struct {
	pin Pin
}

func NewCart(pin Pin) *Cart {
	return &Cart{pin}
}

// Start engages the motor. Unconditional and idempotent. Whether a motor is
// actually wired to the line can't be told in software, driving an
// unconnected line is harmless.
func (c *Cart) Start() {
	c.pin.Output()
	c.pin.Set(true)
}

// Stop disengages the motor.
func (c *Cart) Stop() {
	c.pin.Set(false)
}
