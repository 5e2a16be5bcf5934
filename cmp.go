// Completion: 100% - Instruction implementation complete
package main

import (
	"fmt"
	"os"
)

// CMP immediate - compare register against a constant

func (o *Out) CmpImmToReg(reg string, imm uint32) {
	switch o.arch {
	case ArchX86:
		o.cmpX86ImmToReg(reg, imm)
	case ArchX86_64:
		o.cmpX64ImmToReg(reg, imm)
	case ArchARM:
		o.cmpARMImmToReg(reg, imm)
	}
}

// x86 CMP: short form 3D id for the accumulator, 81 /7 otherwise
func (o *Out) cmpX86ImmToReg(reg string, imm uint32) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "cmp %s, %d: ", reg, imm)
	}

	if regInfo.Encoding == 0 {
		o.Write(0x3D)
	} else {
		o.Write(0x81)
		o.Write(0xF8 | (regInfo.Encoding & 7)) // ModR/M, /7
	}
	o.WriteUnsigned(uint(imm))

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// x86_64 CMP with REX.W
func (o *Out) cmpX64ImmToReg(reg string, imm uint32) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "cmp %s, %d: ", reg, imm)
	}

	rex := uint8(0x48)
	if (regInfo.Encoding & 8) != 0 {
		rex |= 0x01
	}
	o.Write(rex)
	if regInfo.Encoding == 0 {
		o.Write(0x3D)
	} else {
		o.Write(0x81)
		o.Write(0xF8 | (regInfo.Encoding & 7))
	}
	o.WriteUnsigned(uint(imm))

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// ARM CMP Rn, #imm8
// Format: cond 0011010 1 Rn 0000 imm12 (S is implicit in CMP)
func (o *Out) cmpARMImmToReg(reg string, imm uint32) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "cmp %s, #%d: ", reg, imm)
	}

	instr := uint32(0xE3500000) |
		(uint32(regInfo.Encoding&15) << 16) | // Rn
		(imm & 0xFF)
	o.WriteWord(instr)

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}
