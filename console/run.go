// Package console provides a minimal game loop for the handheld.
package console

import (
	"github.com/clktmr/gba/agb/keypad"
	"github.com/clktmr/gba/agb/video"
	"github.com/clktmr/gba/framebuffer"
)

// Gamelooper represents a game instance that can be updated and drawn.
type Gamelooper interface {
	// Update is called every frame to update game logic.
	// Return an error to exit the game loop, nil to continue.
	Update(input keypad.State) error

	// Draw is called every frame during vertical blank to render the
	// game. The screen is already initialized and ready for drawing.
	Draw(screen *framebuffer.Framebuffer)
}

// Run starts the game loop in the bitmap display mode. It will initialize the
// display, then repeatedly call Update() and Draw().
//
// Mode 3 has no back buffer, so all drawing shares the vertical blank with
// Update. Games that draw a lot will overrun it and tear.
func Run(g Gamelooper) error {
	video.SetupMode3()
	screen := framebuffer.VRAM()
	screen.Clear(0)

	for {
		if err := g.Update(keypad.Poll()); err != nil {
			return err
		}

		video.VBlank.Clear()
		video.VBlank.Sleep(-1)
		g.Draw(screen)
	}
}
