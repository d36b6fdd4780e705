package splash

import (
	"encoding/binary"
	"image"
	"image/color"
	"testing"
)

func TestConvertUniform(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}

	tiles, tilemap, palette, err := Convert(src, false)
	if err != nil {
		t.Fatal(err)
	}

	if len(tiles) != 32 {
		t.Errorf("got %d unique tiles, want 1", len(tiles)/32)
	}
	if len(palette) != 32 {
		t.Errorf("palette size = %d, want 32", len(palette))
	}
	if len(tilemap) != tilesY*mapStride*2 {
		t.Errorf("map size = %d, want %d", len(tilemap), tilesY*mapStride*2)
	}
}

func TestConvertDedup(t *testing.T) {
	// Two solid colors, split down the middle at a tile boundary. Each
	// half collapses into a single unique tile.
	src := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBA{R: 0xff, A: 0xff}
			if x >= width/2 {
				c = color.RGBA{B: 0xff, A: 0xff}
			}
			src.Set(x, y, c)
		}
	}

	tiles, tilemap, _, err := Convert(src, false)
	if err != nil {
		t.Fatal(err)
	}

	if len(tiles) != 2*32 {
		t.Errorf("got %d unique tiles, want 2", len(tiles)/32)
	}
	for i := 0; i < len(tilemap); i += 2 {
		if id := binary.LittleEndian.Uint16(tilemap[i:]); id > 1 {
			t.Fatalf("map entry %d references tile %d", i/2, id)
		}
	}
}

func TestTilePacking(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 8, 8), make(color.Palette, 16))
	for y := range 8 {
		for x := range 8 {
			img.SetColorIndex(x, y, uint8((x+y)%16))
		}
	}

	packed := tile(img, 0, 0)
	for y := range 8 {
		for x := range 8 {
			b := packed[(y*8+x)/2]
			got := b & 0xf
			if x%2 == 1 {
				got = b >> 4
			}
			if want := uint8((x + y) % 16); got != want {
				t.Fatalf("pixel %d,%d = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestBGR555(t *testing.T) {
	for _, tc := range []struct {
		c    color.Color
		want uint16
	}{
		{color.Black, 0x0000},
		{color.White, 0x7fff},
		{color.RGBA{R: 0xff, A: 0xff}, 0x001f},
		{color.RGBA{G: 0xff, A: 0xff}, 0x03e0},
		{color.RGBA{B: 0xff, A: 0xff}, 0x7c00},
	} {
		if got := bgr555(tc.c); got != tc.want {
			t.Errorf("bgr555(%v) = %#04x, want %#04x", tc.c, got, tc.want)
		}
	}
}
