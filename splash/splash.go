// Package splash displays a full screen image while the console searches for
// accessories.
//
// The embedded image data is generated with the splash subcommand of the
// gbago tool, see there for the data layout.
package splash

import (
	_ "embed"

	"github.com/clktmr/gba/agb/video"
)

//go:embed tiles.bin
var tiles []byte

//go:embed map.bin
var tilemap []byte

//go:embed palette.bin
var palette []byte

// Char block 0 spans screen blocks 0 to 7, the map must go above it.
const (
	charBlock   = 0
	screenBlock = 8
)

// Show draws the splash screen, replacing the current display setup. The
// returned function restores the previous setup.
func Show() (restore func()) {
	state := video.Save()
	video.Blank(true)
	video.LoadPalette(palette)
	video.LoadTiles(charBlock, tiles)
	video.LoadMap(screenBlock, tilemap)
	video.SetupMode0BG0(charBlock, screenBlock)
	video.Blank(false)
	return state.Restore
}
