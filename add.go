// Completion: 100% - Instruction implementation complete
package main

import (
	"fmt"
	"os"
)

// ADD immediate - add a constant to a register

func (o *Out) AddImmToReg(reg string, imm uint32) {
	switch o.arch {
	case ArchX86:
		o.addX86ImmToReg(reg, imm)
	case ArchX86_64:
		o.addX64ImmToReg(reg, imm)
	case ArchARM:
		o.addARMImmToReg(reg, imm)
	}
}

// x86 ADD: short form 05 id for the accumulator, 81 /0 otherwise
func (o *Out) addX86ImmToReg(reg string, imm uint32) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "add %s, %d: ", reg, imm)
	}

	if regInfo.Encoding == 0 {
		o.Write(0x05) // ADD EAX, imm32
	} else {
		o.Write(0x81)
		o.Write(0xC0 | (regInfo.Encoding & 7)) // ModR/M, /0
	}
	o.WriteUnsigned(uint(imm))

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// x86_64 ADD: REX.W prefix, then the same accumulator short form
func (o *Out) addX64ImmToReg(reg string, imm uint32) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "add %s, %d: ", reg, imm)
	}

	rex := uint8(0x48)
	if (regInfo.Encoding & 8) != 0 {
		rex |= 0x01 // REX.B
	}
	o.Write(rex)
	if regInfo.Encoding == 0 {
		o.Write(0x05) // ADD RAX, imm32 (sign-extended)
	} else {
		o.Write(0x81)
		o.Write(0xC0 | (regInfo.Encoding & 7))
	}
	o.WriteUnsigned(uint(imm))

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// ARM ADD Rd, Rn, #imm8 with Rd = Rn
// Format: cond 0010100 0 S Rn Rd imm12
func (o *Out) addARMImmToReg(reg string, imm uint32) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "add %s, %s, #%d: ", reg, reg, imm)
	}

	instr := uint32(0xE2800000) |
		(uint32(regInfo.Encoding&15) << 16) | // Rn
		(uint32(regInfo.Encoding&15) << 12) | // Rd
		(imm & 0xFF)
	o.WriteWord(instr)

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}
