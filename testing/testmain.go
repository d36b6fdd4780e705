// Package testing provides utilities for writing gba specific tests.
package testing

import (
	"embedded/rtos"
	"fmt"
	"io"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/clktmr/gba/agb/keypad"
	"github.com/clktmr/gba/agb/video"
	"github.com/clktmr/gba/drivers"
	"github.com/clktmr/gba/drivers/console"
	"github.com/clktmr/gba/drivers/mgba"
	"github.com/clktmr/gba/framebuffer"
	_ "github.com/clktmr/gba/machine"

	"github.com/embeddedgo/fs/termfs"
)

// TestMain should be used as TestMain for gba specific tests.
func TestMain(m *testing.M) {
	var err error

	video.SetupMode3()
	framebuffer.VRAM().Clear(0)
	guiconsole := console.NewConsole()

	// Redirect stdout and stderr to the emulator's logger and the screen.
	emu := mgba.Probe()
	var w io.Writer = guiconsole
	if emu != nil {
		w = io.MultiWriter(emu, guiconsole)
		rtos.SetSystemWriter(drivers.NewSystemWriter(emu))
	}

	fs := termfs.NewLight("termfs", nil, w)
	rtos.Mount(fs, "/dev/console")
	os.Stdout, err = os.OpenFile("/dev/console", syscall.O_WRONLY, 0)
	if err != nil {
		panic(err)
	}
	os.Stderr = os.Stdout

	// The default syswriter writes to the emulator's debug registers
	// unconditionally, which will print panics.
	if emu == nil {
		fmt.Print("\nWARN: not running in mgba, print() and panic() only go to the screen\n\n")
	}

	// TODO find a way to pass these from the 'go test' command
	os.Args = append(os.Args, "-test.v")
	os.Args = append(os.Args, "-test.bench=.")
	os.Args = append(os.Args, "-test.benchmem")

	print("Hold START to enable interactive test.. ")
	time.Sleep(500 * time.Millisecond)
	if keypad.Down()&keypad.Start == 0 {
		os.Args = append(os.Args, "-test.short")
		println("skipping")
	} else {
		println("ok")
	}

	os.Exit(m.Run())
}
