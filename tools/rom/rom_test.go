package rom

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestBranch(t *testing.T) {
	// A ROM entered right after the header must encode "b +0xb8".
	if got := branch(romBase + headerSize); got != 0xea00002e {
		t.Errorf("branch(%#08x) = %#08x, want 0xea00002e", romBase+headerSize, got)
	}
}

func TestROMHeader(t *testing.T) {
	rom, err := os.Create(filepath.Join(t.TempDir(), "test.gba"))
	if err != nil {
		t.Fatal(err)
	}
	defer rom.Close()

	err = writeROMHeader(rom, header{
		entry: romBase + headerSize,
		title: "rumble",
		code:  "AGBE",
		maker: "01",
	})
	if err != nil {
		t.Fatal(err)
	}

	hdr := make([]byte, headerSize)
	if _, err := rom.ReadAt(hdr, 0); err != nil {
		t.Fatal(err)
	}

	if got := binary.LittleEndian.Uint32(hdr[0x00:]); got != 0xea00002e {
		t.Errorf("reset vector = %#08x, want 0xea00002e", got)
	}
	if got := string(hdr[0xa0:0xa6]); got != "RUMBLE" {
		t.Errorf("title = %q, want %q", got, "RUMBLE")
	}
	if hdr[0xb2] != 0x96 {
		t.Errorf("fixed byte = %#02x, want 0x96", hdr[0xb2])
	}

	// The BIOS requires the bytes from 0xa0 through the checksum to sum up
	// to -0x19.
	sum := byte(0x19)
	for _, b := range hdr[0xa0:0xbe] {
		sum += b
	}
	if sum != 0 {
		t.Errorf("header checksum doesn't cancel, sum = %#02x", sum)
	}
}

func TestROMHeaderRejects(t *testing.T) {
	rom, err := os.Create(filepath.Join(t.TempDir(), "test.gba"))
	if err != nil {
		t.Fatal(err)
	}
	defer rom.Close()

	if err := writeROMHeader(rom, header{entry: romBase}); err == nil {
		t.Error("entry inside the header not rejected")
	}
	if err := writeROMHeader(rom, header{entry: romBase + headerSize + 2}); err == nil {
		t.Error("unaligned entry not rejected")
	}
	if err := writeROMHeader(rom, header{
		entry: romBase + headerSize,
		logo:  make([]byte, 0x9d),
	}); err == nil {
		t.Error("oversized logo not rejected")
	}
}
