package cpu

// The CPU's clock speed
const ClockSpeed = 16.777216e6

// Base addresses of the memory map. The bus is flat and unmapped, there is
// neither an MMU nor a data cache.
const (
	EWRAM   uintptr = 0x0200_0000 // 256 KiB, 16 bit bus
	IWRAM   uintptr = 0x0300_0000 // 32 KiB, 32 bit bus
	IO      uintptr = 0x0400_0000
	Palette uintptr = 0x0500_0000
	VRAM    uintptr = 0x0600_0000 // no 8 bit writes
	OAM     uintptr = 0x0700_0000
	ROM     uintptr = 0x0800_0000 // cartridge, includes GPIO and mirrors
	SRAM    uintptr = 0x0e00_0000 // cartridge save memory, 8 bit bus
)
