// Completion: 100% - Instruction implementation complete
package main

import (
	"fmt"
	"os"
)

// INC instruction - increment register by 1

func (o *Out) IncReg(reg string) {
	switch o.arch {
	case ArchX86:
		o.incX86Reg(reg)
	case ArchX86_64:
		o.incX64Reg(reg)
	case ArchARM:
		o.incARMReg(reg)
	}
}

// x86 single-byte INC r32 (40+rd, the legacy form REX stole in long mode)
func (o *Out) incX86Reg(reg string) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "inc %s: ", reg)
	}

	o.Write(0x40 + (regInfo.Encoding & 7))

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// x86_64 INC r64 (REX.W + FF /0)
func (o *Out) incX64Reg(reg string) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "inc %s: ", reg)
	}

	rex := uint8(0x48)
	if (regInfo.Encoding & 8) != 0 {
		rex |= 0x01 // REX.B
	}
	o.Write(rex)
	o.Write(0xFF)
	o.Write(0xC0 | (regInfo.Encoding & 7)) // ModR/M, /0

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// ARM has no INC; ADD Rd, Rd, #1
func (o *Out) incARMReg(reg string) {
	o.AddImmToReg(reg, 1)
}
