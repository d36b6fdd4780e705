package rumble

import "testing"

type simPin struct {
	output bool
	level  bool
}

func (p *simPin) Output()    { p.output = true }
func (p *simPin) Set(v bool) { p.level = v }

func TestCart(t *testing.T) {
	p := &simPin{}
	c := NewCart(p)

	// The pin is left alone until the motor is actually used.
	if p.output || p.level {
		t.Fatal("pin touched before first use")
	}

	c.Start()
	if !p.output {
		t.Error("pin not switched to output")
	}
	if !p.level {
		t.Error("motor not running after Start")
	}

	c.Stop()
	if p.level {
		t.Error("motor still running after Stop")
	}
	if !p.output {
		t.Error("pin direction lost on Stop")
	}

	c.Stop()
	if p.level {
		t.Error("repeated Stop turned the motor on")
	}
	c.Start()
	c.Start()
	if !p.level {
		t.Error("repeated Start turned the motor off")
	}
}
