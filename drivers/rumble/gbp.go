package rumble

// Command selects the rumble intensity requested from the accessory. The
// values are the accessory's own command encodings.
type Command byte

const (
	Stop     Command = 0x04 // let the motor spin down
	HardStop Command = 0x15 // brake the motor immediately
	Start    Command = 0x26 // spin the motor up
)

// exchange is a single handshake step: tx is sent and rx is the only
// accepted response.
type exchange struct{ tx, rx byte }

// The Game Boy Player identifies itself with the bytes of "NINTENDO", one
// byte per transfer. The console acknowledges each expected byte by
// transmitting its complement.
var gbpHandshake = [...]exchange{
	{^byte('N'), 'N'},
	{^byte('I'), 'I'},
	{^byte('N'), 'N'},
	{^byte('T'), 'T'},
	{^byte('E'), 'E'},
	{^byte('N'), 'N'},
	{^byte('D'), 'D'},
	{^byte('O'), 'O'},
}

// Frames to wait on a single transfer before concluding that nothing is
// connected. Bounds a full detection attempt to len(gbpHandshake)*maxWait
// frames against a dead link.
const maxWait = 15

// Detector runs the detection handshake for the Game Boy Player. A mismatched
// or timed out exchange is conclusive: the accessory either answers the whole
// handshake byte for byte or is treated as absent. There are no retries, a
// new attempt needs a new Detector.
type Detector struct {
	port  Port
	steps []exchange

	step     int
	wait     int
	inFlight bool
	done     bool
	found    *GameBoyPlayer
}

// NewDetector begins a detection attempt on port. The port must be set up for
// byte transfers and must not be used elsewhere until the attempt concludes.
func NewDetector(port Port) *Detector {
	return &Detector{port: port, steps: gbpHandshake[:]}
}

// Poll advances the handshake by at most one exchange. Call once per frame.
// A true done reports the verdict: gbp is the live link if the accessory
// answered every step, nil otherwise. Once reached, the verdict is returned
// by every further call.
func (d *Detector) Poll() (gbp *GameBoyPlayer, done bool) {
	if d.done {
		return d.found, true
	}

	if !d.inFlight {
		d.port.Begin(d.steps[d.step].tx)
		d.inFlight = true
		d.wait = 0
		return nil, false
	}

	if d.port.Busy() {
		// With nothing on the other end of the link the shift clock
		// never arrives and the transfer hangs.
		if d.wait++; d.wait >= maxWait {
			d.done = true
		}
		return nil, d.done
	}
	d.inFlight = false

	if d.port.Data() != d.steps[d.step].rx {
		// A single mismatch is conclusive evidence of absence or
		// desync, don't retry the step.
		d.done = true
		return nil, true
	}

	if d.step++; d.step == len(d.steps) {
		d.done = true
		d.found = &GameBoyPlayer{port: d.port, cmd: Stop}
	}
	return d.found, d.done
}

// GameBoyPlayer is the live rumble link to the accessory, obtained from a
// successful detection. The host must call Update once per frame and forward
// every serial interrupt to HandleInterrupt.
//
// The link doesn't detect an unplugged accessory. If the status bytes go
// silent it is up to the host to abandon the link and rerun detection.
type GameBoyPlayer struct {
	port Port

	// Owned by the frame loop.
	cmd     Command
	pending byte

	// inFlight is set by Update and cleared by HandleInterrupt, status is
	// written only by HandleInterrupt. This split of field ownership is
	// what keeps the frame loop and the interrupt from racing, there is
	// no lock.
	inFlight bool
	status   byte
}

// Update exchanges one byte with the accessory. Call once per frame. If the
// previous transfer hasn't completed yet nothing is started, the command is
// simply sent one frame later.
func (gbp *GameBoyPlayer) Update() {
	if gbp.inFlight {
		return
	}
	gbp.pending = byte(gbp.cmd)
	gbp.inFlight = true
	gbp.port.Begin(gbp.pending)
}

// Start makes the accessory rumble. Takes effect with the next Update, the
// accessory only reacts to transmitted bytes.
func (gbp *GameBoyPlayer) Start() {
	gbp.cmd = Start
}

// Stop lets the accessory's motor spin down.
func (gbp *GameBoyPlayer) Stop() {
	gbp.cmd = Stop
}

// HardStop brakes the accessory's motor instead of letting it spin down.
func (gbp *GameBoyPlayer) HardStop() {
	gbp.cmd = HardStop
}

// HandleInterrupt completes the outstanding transfer. The next transfer is
// started by the next Update rather than from here, keeping the work done in
// interrupt context minimal.
//
//go:nosplit
func (gbp *GameBoyPlayer) HandleInterrupt() {
	gbp.status = gbp.port.Data()
	gbp.inFlight = false
}

// Status returns the last byte received from the accessory. Diagnostic only,
// unexpected values are not an error.
func (gbp *GameBoyPlayer) Status() byte {
	return gbp.status
}
