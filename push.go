// Completion: 100% - Instruction implementation complete
package main

import (
	"fmt"
	"os"
)

// PUSH/POP - stack save and restore of a single register

func (o *Out) PushReg(reg string) {
	switch o.arch {
	case ArchX86, ArchX86_64:
		o.pushX86Reg(reg)
	case ArchARM:
		o.pushARMReg(reg)
	}
}

func (o *Out) PopReg(reg string) {
	switch o.arch {
	case ArchX86, ArchX86_64:
		o.popX86Reg(reg)
	case ArchARM:
		o.popARMReg(reg)
	}
}

// PUSH r (50+rd) - same single-byte form in 32-bit and 64-bit mode
func (o *Out) pushX86Reg(reg string) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "push %s: ", reg)
	}

	if (regInfo.Encoding & 8) != 0 {
		o.Write(0x41) // REX.B for r8-r15
	}
	o.Write(0x50 + (regInfo.Encoding & 7))

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// POP r (58+rd)
func (o *Out) popX86Reg(reg string) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "pop %s: ", reg)
	}

	if (regInfo.Encoding & 8) != 0 {
		o.Write(0x41)
	}
	o.Write(0x58 + (regInfo.Encoding & 7))

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// ARM PUSH {reg} = STMDB sp!, {reg}
func (o *Out) pushARMReg(reg string) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "push {%s}: ", reg)
	}

	instr := uint32(0xE92D0000) | (uint32(1) << (regInfo.Encoding & 15))
	o.WriteWord(instr)

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}

// ARM POP {reg} = LDMIA sp!, {reg}
func (o *Out) popARMReg(reg string) {
	regInfo, ok := GetRegister(o.arch, reg)
	if !ok {
		return
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "pop {%s}: ", reg)
	}

	instr := uint32(0xE8BD0000) | (uint32(1) << (regInfo.Encoding & 15))
	o.WriteWord(instr)

	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}
