// Completion: 100% - Instruction implementation complete
package main

import (
	"fmt"
	"os"
)

// Short unconditional jump (x86/x86_64 only; ARM branches live in branch.go)

// JmpShort emits EB rel8. The offset is relative to the end of the
// instruction, so jumping back to the start of an n-byte stream that ends
// with this jump takes an offset of -n.
func (o *Out) JmpShort(offset int8) {
	switch o.arch {
	case ArchX86, ArchX86_64:
		o.jmpX86Short(offset)
	}
}

func (o *Out) jmpX86Short(offset int8) {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "jmp %d: ", offset)
	}

	o.Write(0xEB)
	o.Write(uint8(offset))

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}
