// Completion: 100% - Instruction implementation complete
package main

import (
	"fmt"
	"os"
)

// MOV immediate - load a constant into a register
// Every payload starts by seeding a counter register this way

func (o *Out) MovImmToReg(reg string, imm uint64) {
	switch o.arch {
	case ArchX86:
		o.movX86ImmToReg(reg, imm)
	case ArchX86_64:
		o.movX64ImmToReg(reg, imm)
	case ArchARM:
		o.movARMImmToReg(reg, imm)
	}
}

// x86 MOV r32, imm32 (B8+rd id)
func (o *Out) movX86ImmToReg(reg string, imm uint64) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "mov %s, %d: ", reg, imm)
	}

	o.Write(0xB8 + (regInfo.Encoding & 7))
	o.WriteUnsigned(uint(imm))

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// x86_64 MOV r64, imm64 (REX.W + B8+rd io, the movabs form)
func (o *Out) movX64ImmToReg(reg string, imm uint64) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "mov %s, %d: ", reg, imm)
	}

	rex := uint8(0x48)
	if (regInfo.Encoding & 8) != 0 {
		rex |= 0x01 // REX.B
	}
	o.Write(rex)
	o.Write(0xB8 + (regInfo.Encoding & 7))

	// 64-bit immediate, little-endian
	o.WriteUnsigned(uint(imm & 0xFFFFFFFF))
	o.WriteUnsigned(uint(imm >> 32))

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// ARM MOV Rd, #imm8
// Format: cond 0011101 0 S 0000 Rd imm12 (AL condition, S=0)
// Only plain 8-bit immediates are needed here, so no rotation is encoded.
func (o *Out) movARMImmToReg(reg string, imm uint64) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "mov %s, #%d: ", reg, imm)
	}

	instr := uint32(0xE3A00000) |
		(uint32(regInfo.Encoding&15) << 12) | // Rd
		uint32(imm&0xFF)
	o.WriteWord(instr)

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}
