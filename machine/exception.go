package machine

var excNames = [8]string{
	0: "Reset",
	1: "Undefined Instruction",
	2: "Software Interrupt",
	3: "Prefetch Abort",
	4: "Data Abort",
	6: "Interrupt",
	7: "Fast Interrupt",
}

//go:nosplit
func Exception(vector, pc, cpsr, lr uint32) {
	var buf [8]byte
	DefaultWrite(0, []byte("Unhandled "))
	DefaultWrite(0, []byte(excNames[vector&7]))
	DefaultWrite(0, []byte(" Exception"))

	DefaultWrite(0, []byte("\npc   0x"))
	DefaultWrite(0, itoa(buf[:], pc))
	DefaultWrite(0, []byte("\ncpsr 0x"))
	DefaultWrite(0, itoa(buf[:], cpsr))
	DefaultWrite(0, []byte("\nlr   0x"))
	DefaultWrite(0, itoa(buf[:], lr))
	DefaultWrite(0, []byte("\n"))
}

//go:nosplit
func itoa(buf []byte, num uint32) []byte {
	for i := range 8 {
		char := byte(num>>(28-(4*i))) & 0xf
		if char > 9 {
			char += 'a' - 10
		} else {
			char += '0'
		}
		buf[i] = char
	}
	return buf
}
