package rumble_test

import (
	"testing"
	"time"

	"github.com/clktmr/gba/agb"
	"github.com/clktmr/gba/agb/gpio"
	"github.com/clktmr/gba/agb/keypad"
	"github.com/clktmr/gba/agb/sio"
	"github.com/clktmr/gba/agb/video"
	"github.com/clktmr/gba/drivers/rumble"
	gbatesting "github.com/clktmr/gba/testing"
)

func TestMain(m *testing.M) { gbatesting.TestMain(m) }

func TestCartMotor(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}

	motor := rumble.NewCart(gpio.Rumble)
	for range 3 {
		motor.Start()
		time.Sleep(500 * time.Millisecond)
		motor.Stop()
		time.Sleep(500 * time.Millisecond)
	}
}

func TestGameBoyPlayer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}

	port := sio.Normal8{}
	port.Setup()

	detect := rumble.NewDetector(port)
	var gbp *rumble.GameBoyPlayer
	for done := false; !done; {
		video.VBlank.Clear()
		video.VBlank.Sleep(-1)
		gbp, done = detect.Poll()
	}
	if gbp == nil {
		t.Skip("no game boy player detected")
	}

	agb.SetHandler(agb.IntrSerial, gbp.HandleInterrupt)
	agb.EnableInterrupts(agb.IntrSerial)
	t.Cleanup(func() {
		agb.DisableInterrupts(agb.IntrSerial)
		agb.SetHandler(agb.IntrSerial, nil)
	})

	t.Log("Press A to rumble, B to stop, Start to end the test.")

	for {
		video.VBlank.Clear()
		video.VBlank.Sleep(-1)

		input := keypad.Poll()
		switch {
		case input.Pressed(keypad.A):
			gbp.Start()
		case input.Pressed(keypad.B):
			gbp.Stop()
		case input.Pressed(keypad.Start):
			gbp.HardStop()
			gbp.Update()
			return
		}
		gbp.Update()
	}
}
