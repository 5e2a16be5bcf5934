// Completion: 100% - Instruction implementation complete
package main

import (
	"fmt"
	"os"
)

// DEC instruction - decrement register by 1

func (o *Out) DecReg(reg string) {
	switch o.arch {
	case ArchX86:
		o.decX86Reg(reg)
	case ArchX86_64:
		o.decX64Reg(reg)
	case ArchARM:
		o.decARMReg(reg)
	}
}

// x86 single-byte DEC r32 (48+rd)
func (o *Out) decX86Reg(reg string) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "dec %s: ", reg)
	}

	o.Write(0x48 + (regInfo.Encoding & 7))

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// x86_64 DEC r64 (REX.W + FF /1)
func (o *Out) decX64Reg(reg string) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "dec %s: ", reg)
	}

	rex := uint8(0x48)
	if (regInfo.Encoding & 8) != 0 {
		rex |= 0x01 // REX.B
	}
	o.Write(rex)
	o.Write(0xFF)
	o.Write(0xC8 | (regInfo.Encoding & 7)) // ModR/M, /1

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// ARM SUB Rd, Rd, #1
// Format: cond 0010010 0 S Rn Rd imm12
func (o *Out) decARMReg(reg string) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "sub %s, %s, #1: ", reg, reg)
	}

	instr := uint32(0xE2400001) |
		(uint32(regInfo.Encoding&15) << 16) |
		(uint32(regInfo.Encoding&15) << 12)
	o.WriteWord(instr)

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}
