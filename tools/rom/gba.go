package rom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"
)

const romBase = 0x0800_0000
const headerSize = 0xc0

type header struct {
	entry uint32
	title string
	code  string
	maker string
	logo  []byte
}

// writeROMHeader writes the cartridge header checked by the BIOS on boot. The
// logo area is zeroed unless data is given. The BIOS compares it against the
// original compressed image and refuses to boot on mismatch, but emulators
// and most flashcarts skip the check.
func writeROMHeader(rom *os.File, h header) error {
	if len(h.logo) > 0x9c {
		return errors.New("logo data too large")
	}
	if h.entry < romBase+headerSize || h.entry%4 != 0 {
		return fmt.Errorf("bad entry point %#08x", h.entry)
	}

	hdr := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(hdr[0x00:], branch(h.entry))
	copy(hdr[0x04:0xa0], h.logo)
	copy(hdr[0xa0:0xac], strings.ToUpper(h.title))
	copy(hdr[0xac:0xb0], h.code)
	copy(hdr[0xb0:0xb2], h.maker)
	hdr[0xb2] = 0x96 // fixed value
	hdr[0xbd] = complement(hdr)

	_, err := rom.WriteAt(hdr, 0)
	return err
}

// branch encodes the ARM instruction at the reset vector that jumps over the
// header to the entry point.
func branch(entry uint32) uint32 {
	return 0xea00_0000 | (entry-romBase-8)/4&0x00ff_ffff
}

// complement makes the header bytes from 0xa0 to 0xbd sum to -0x19, checked
// by the BIOS.
func complement(hdr []byte) byte {
	sum := byte(0x19)
	for _, b := range hdr[0xa0:0xbd] {
		sum += b
	}
	return -sum
}
