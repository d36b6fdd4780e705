// The agb package provides a hardware abstraction layer for the Game Boy
// Advance.
//
// It implements low-level access to the hardware. All hardware capabilities are
// directly exposed and in general unsafe. Use the higher level libraries to
// write applications instead.
package agb

// AGB: the hardware codename of the Game Boy Advance
// https://problemkaputt.de/gbatek.htm
