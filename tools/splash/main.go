// Package splash converts an image into the data files embedded by the splash
// package: a 16 color palette, 4 bit tiles and a tile map.
package splash

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/ericpauley/go-quantize/quantize"
	xdraw "golang.org/x/image/draw"
)

const (
	width, height  = 240, 160
	tilesX, tilesY = width / 8, height / 8

	mapStride = 32 // entries per tile map row

	// One full char block of 4 bit tiles. The tile map lives in the
	// screen block right above it.
	maxTiles = 512
)

var (
	flags = flag.NewFlagSet("splash", flag.ExitOnError)

	dither = flags.Bool("dither", false, "enable Floyd-Steinberg error diffusion")
	outdir = flags.String("o", ".", "output directory")

	imagefile string
)

const usageString = `Image to splash screen data converter.

Usage: %s [flags] <image>

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "splash")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		imagefile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	r, err := os.Open(imagefile)
	if err != nil {
		log.Fatalln(err)
	}

	src, _, err := image.Decode(r)
	if err != nil {
		log.Fatalln(err)
	}

	tiles, tilemap, palette, err := Convert(src, *dither)
	if err != nil {
		log.Fatalln(err)
	}

	for name, data := range map[string][]byte{
		"tiles.bin":   tiles,
		"map.bin":     tilemap,
		"palette.bin": palette,
	} {
		err = os.WriteFile(filepath.Join(*outdir, name), data, 0o666)
		if err != nil {
			log.Fatalln(err)
		}
	}
}

// Convert scales src to the screen size, quantizes it to 16 colors and cuts
// it into deduplicated 8x8 tiles.
func Convert(src image.Image, dither bool) (tiles, tilemap, palette []byte, err error) {
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	q := quantize.MedianCutQuantizer{}
	pal := q.Quantize(make(color.Palette, 0, 16), scaled)

	img := image.NewPaletted(scaled.Bounds(), pal)
	var d draw.Drawer = draw.Src
	if dither {
		d = draw.FloydSteinberg
	}
	d.Draw(img, img.Bounds(), scaled, image.Point{})

	var tilebuf bytes.Buffer
	index := map[[32]byte]uint16{}
	mapbuf := make([]byte, tilesY*mapStride*2)
	for ty := range tilesY {
		for tx := range tilesX {
			t := tile(img, tx, ty)
			id, ok := index[t]
			if !ok {
				id = uint16(len(index))
				if int(id) >= maxTiles {
					return nil, nil, nil,
						fmt.Errorf("more than %d unique tiles, simplify the image", maxTiles)
				}
				index[t] = id
				tilebuf.Write(t[:])
			}
			binary.LittleEndian.PutUint16(mapbuf[(ty*mapStride+tx)*2:], id)
		}
	}

	palbuf := make([]byte, 16*2)
	for i, c := range pal {
		binary.LittleEndian.PutUint16(palbuf[i*2:], bgr555(c))
	}

	return tilebuf.Bytes(), mapbuf, palbuf, nil
}

// tile packs an 8x8 block into the 4 bit tile format, two pixels per byte,
// low nibble first.
func tile(img *image.Paletted, tx, ty int) (out [32]byte) {
	for y := range 8 {
		for x := 0; x < 8; x += 2 {
			lo := img.ColorIndexAt(tx*8+x, ty*8+y)
			hi := img.ColorIndexAt(tx*8+x+1, ty*8+y)
			out[(y*8+x)/2] = lo&0xf | hi<<4
		}
	}
	return
}

func bgr555(c color.Color) uint16 {
	r, g, b, _ := c.RGBA()
	return uint16(b>>11)<<10 | uint16(g>>11)<<5 | uint16(r>>11)
}
