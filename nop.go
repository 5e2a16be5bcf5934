// Completion: 100% - Instruction implementation complete
package main

import (
	"fmt"
	"os"
)

// NOP - no-operation padding
//
// x86 has recommended multi-byte NOP encodings up to 9 bytes; the payloads
// use them to hit an exact stream length without a sled of single 90s.

var x86NopForms = map[int][]byte{
	1: {0x90},
	2: {0x66, 0x90},
	3: {0x0F, 0x1F, 0x00},
	4: {0x0F, 0x1F, 0x40, 0x00},
	5: {0x0F, 0x1F, 0x44, 0x00, 0x00},
	6: {0x66, 0x0F, 0x1F, 0x44, 0x00, 0x00},
	7: {0x0F, 0x1F, 0x80, 0x00, 0x00, 0x00, 0x00},
	8: {0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	9: {0x66, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
}

// Nop emits a no-op of the given width in bytes. On ARM the width must be
// a multiple of 4; each word is the canonical MOV r0, r0.
func (o *Out) Nop(width int) {
	switch o.arch {
	case ArchX86, ArchX86_64:
		o.nopX86(width)
	case ArchARM:
		o.nopARM(width)
	}
}

func (o *Out) nopX86(width int) {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "nop (%d bytes): ", width)
	}

	for width > 0 {
		n := width
		if n > 9 {
			n = 9
		}
		o.writer.WriteBytes(x86NopForms[n])
		width -= n
	}

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

func (o *Out) nopARM(width int) {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "nop (%d bytes): ", width)
	}

	// MOV r0, r0 per word; trailing width < 4 is dropped
	for i := 0; i < width/4; i++ {
		o.WriteWord(0xE1A00000)
	}

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}
