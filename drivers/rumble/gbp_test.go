package rumble

import (
	"bytes"
	"testing"
)

// simPort simulates the serial unit. Begin records the transmitted byte and
// leaves the transfer outstanding until the test completes it with a scripted
// response.
type simPort struct {
	sent []byte
	data byte
	busy bool
}

func (p *simPort) Begin(b byte) {
	if p.busy {
		panic("transfer started while busy")
	}
	p.sent = append(p.sent, b)
	p.busy = true
}

func (p *simPort) Busy() bool { return p.busy }
func (p *simPort) Data() byte { return p.data }

// complete finishes the outstanding transfer with the device's response.
func (p *simPort) complete(b byte) {
	if !p.busy {
		panic("no transfer outstanding")
	}
	p.data = b
	p.busy = false
}

// detect runs a full, matching handshake and returns the live link.
func detect(t *testing.T, p *simPort) *GameBoyPlayer {
	t.Helper()
	d := NewDetector(p)
	var gbp *GameBoyPlayer
	var done bool
	for _, step := range gbpHandshake {
		if g, dn := d.Poll(); g != nil || dn { // starts the transfer
			t.Fatal("verdict before handshake finished")
		}
		p.complete(step.rx)
		gbp, done = d.Poll() // consumes the response
	}
	if !done || gbp == nil {
		t.Fatal("accessory not detected")
	}
	return gbp
}

func TestDetect(t *testing.T) {
	p := &simPort{}
	detect(t, p)

	want := make([]byte, 0, len(gbpHandshake))
	for _, step := range gbpHandshake {
		want = append(want, step.tx)
	}
	if !bytes.Equal(p.sent, want) {
		t.Errorf("sent % 02x, want % 02x", p.sent, want)
	}
}

func TestDetectVerdictSticky(t *testing.T) {
	p := &simPort{}
	d := NewDetector(p)
	var gbp *GameBoyPlayer
	for gbp == nil {
		var done bool
		if gbp, done = d.Poll(); done {
			break
		}
		if p.busy {
			p.complete(gbpHandshake[d.step].rx)
		}
	}
	if gbp == nil {
		t.Fatal("accessory not detected")
	}
	for range 3 {
		got, done := d.Poll()
		if got != gbp || !done {
			t.Fatal("verdict changed after detection")
		}
	}
}

func TestDetectMismatch(t *testing.T) {
	for k := range gbpHandshake {
		p := &simPort{}
		d := NewDetector(p)
		for i := 0; i < k; i++ {
			d.Poll()
			p.complete(gbpHandshake[i].rx)
			d.Poll()
		}
		d.Poll()
		p.complete(^gbpHandshake[k].rx)
		gbp, done := d.Poll()
		if gbp != nil || !done {
			t.Errorf("mismatch at step %d not conclusive", k)
		}
		if d.step != k {
			t.Errorf("advanced to step %d after mismatch at step %d", d.step, k)
		}
		if gbp, done := d.Poll(); gbp != nil || !done {
			t.Errorf("verdict at step %d not sticky", k)
		}
	}
}

func TestDetectTimeout(t *testing.T) {
	p := &simPort{}
	d := NewDetector(p)
	d.Poll() // starts the first transfer, which never completes
	for i := 0; i < maxWait-1; i++ {
		if _, done := d.Poll(); done {
			t.Fatal("gave up before the wait budget was exhausted")
		}
	}
	if gbp, done := d.Poll(); gbp != nil || !done {
		t.Fatal("hanging transfer not treated as absence")
	}
	if d.step != 0 {
		t.Error("advanced past a hanging step")
	}
}

func TestUpdateSingleTransfer(t *testing.T) {
	p := &simPort{}
	gbp := detect(t, p)
	sent := len(p.sent)

	gbp.Update()
	if !gbp.inFlight || len(p.sent) != sent+1 {
		t.Fatal("update didn't start a transfer")
	}

	// The interrupt hasn't fired yet, further updates must not start a
	// second transfer.
	gbp.Update()
	gbp.Update()
	if len(p.sent) != sent+1 {
		t.Fatal("transfer double-started")
	}

	p.complete(0xff)
	gbp.HandleInterrupt()
	if gbp.inFlight {
		t.Fatal("interrupt didn't clear the transfer")
	}
	if gbp.Status() != 0xff {
		t.Errorf("status = %#02x, want 0xff", gbp.Status())
	}
	// The interrupt itself must not start the next transfer.
	if len(p.sent) != sent+1 {
		t.Fatal("transfer started from interrupt")
	}

	gbp.Update()
	if len(p.sent) != sent+2 {
		t.Fatal("update after completion didn't start a transfer")
	}
}

func TestCommands(t *testing.T) {
	p := &simPort{}
	gbp := detect(t, p)

	// A fresh link must command a stopped motor.
	gbp.Update()
	if gbp.pending != byte(Stop) {
		t.Errorf("default command = %#02x, want %#02x", gbp.pending, byte(Stop))
	}
	p.complete(0x00)
	gbp.HandleInterrupt()

	gbp.Start()
	if gbp.pending == byte(Start) {
		t.Error("command took effect before Update")
	}
	gbp.Update()
	if gbp.pending != byte(Start) {
		t.Errorf("rumble command = %#02x, want %#02x", gbp.pending, byte(Start))
	}
	p.complete(0x00)
	gbp.HandleInterrupt()

	gbp.HardStop()
	gbp.Update()
	if gbp.pending != byte(HardStop) {
		t.Errorf("hard stop command = %#02x, want %#02x", gbp.pending, byte(HardStop))
	}
	if byte(HardStop) == byte(Stop) {
		t.Error("hard stop shares the stop encoding")
	}
	p.complete(0x00)
	gbp.HandleInterrupt()

	// Commands are levels, not events: repeating one doesn't change the
	// pending byte.
	gbp.Stop()
	gbp.Update()
	once := gbp.pending
	p.complete(0x00)
	gbp.HandleInterrupt()
	gbp.Stop()
	gbp.Stop()
	gbp.Update()
	if gbp.pending != once {
		t.Errorf("repeated stop changed the pending byte: %#02x != %#02x", gbp.pending, once)
	}
}

func TestCustomHandshake(t *testing.T) {
	steps := []exchange{{0x55, 0xaa}, {0xaa, 0x55}, {0xfe, 0x01}}

	p := &simPort{}
	d := &Detector{port: p, steps: steps}
	for _, step := range steps {
		d.Poll()
		p.complete(step.rx)
		d.Poll()
	}
	if gbp, done := d.Poll(); !done || gbp == nil {
		t.Error("matching 3-step handshake not detected")
	}

	p = &simPort{}
	d = &Detector{port: p, steps: steps}
	d.Poll()
	p.complete(0xaa)
	d.Poll()
	d.Poll()
	p.complete(0x54)
	if gbp, done := d.Poll(); gbp != nil || !done {
		t.Error("mismatch in second exchange not conclusive")
	}
	if d.step != 1 {
		t.Errorf("step = %d after mismatch in second exchange, want 1", d.step)
	}
}
