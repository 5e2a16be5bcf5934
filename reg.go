// Completion: 100% - Utility module complete
package main

// Register definitions for all supported architectures

type Register struct {
	Name     string
	Size     int   // Size in bits
	Encoding uint8 // Encoding for instruction generation
}

// 32-bit x86 general purpose registers
var x86Registers = map[string]Register{
	"eax": {Name: "eax", Size: 32, Encoding: 0},
	"ecx": {Name: "ecx", Size: 32, Encoding: 1},
	"edx": {Name: "edx", Size: 32, Encoding: 2},
	"ebx": {Name: "ebx", Size: 32, Encoding: 3},
	"esp": {Name: "esp", Size: 32, Encoding: 4},
	"ebp": {Name: "ebp", Size: 32, Encoding: 5},
	"esi": {Name: "esi", Size: 32, Encoding: 6},
	"edi": {Name: "edi", Size: 32, Encoding: 7},
}

// x86_64 general purpose registers
var x86_64Registers = map[string]Register{
	"rax": {Name: "rax", Size: 64, Encoding: 0},
	"rcx": {Name: "rcx", Size: 64, Encoding: 1},
	"rdx": {Name: "rdx", Size: 64, Encoding: 2},
	"rbx": {Name: "rbx", Size: 64, Encoding: 3},
	"rsp": {Name: "rsp", Size: 64, Encoding: 4},
	"rbp": {Name: "rbp", Size: 64, Encoding: 5},
	"rsi": {Name: "rsi", Size: 64, Encoding: 6},
	"rdi": {Name: "rdi", Size: 64, Encoding: 7},
	"r8":  {Name: "r8", Size: 64, Encoding: 8},
	"r9":  {Name: "r9", Size: 64, Encoding: 9},
	"r10": {Name: "r10", Size: 64, Encoding: 10},
	"r11": {Name: "r11", Size: 64, Encoding: 11},
	"r12": {Name: "r12", Size: 64, Encoding: 12},
	"r13": {Name: "r13", Size: 64, Encoding: 13},
	"r14": {Name: "r14", Size: 64, Encoding: 14},
	"r15": {Name: "r15", Size: 64, Encoding: 15},
}

// 32-bit ARM registers (A32 encoding numbers)
var armRegisters = map[string]Register{
	"r0":  {Name: "r0", Size: 32, Encoding: 0},
	"r1":  {Name: "r1", Size: 32, Encoding: 1},
	"r2":  {Name: "r2", Size: 32, Encoding: 2},
	"r3":  {Name: "r3", Size: 32, Encoding: 3},
	"r4":  {Name: "r4", Size: 32, Encoding: 4},
	"r5":  {Name: "r5", Size: 32, Encoding: 5},
	"r6":  {Name: "r6", Size: 32, Encoding: 6},
	"r7":  {Name: "r7", Size: 32, Encoding: 7},
	"r8":  {Name: "r8", Size: 32, Encoding: 8},
	"r9":  {Name: "r9", Size: 32, Encoding: 9},
	"r10": {Name: "r10", Size: 32, Encoding: 10},
	"r11": {Name: "r11", Size: 32, Encoding: 11},
	"r12": {Name: "r12", Size: 32, Encoding: 12},
	"r13": {Name: "r13", Size: 32, Encoding: 13},
	"r14": {Name: "r14", Size: 32, Encoding: 14},
	"r15": {Name: "r15", Size: 32, Encoding: 15},
	"sp":  {Name: "sp", Size: 32, Encoding: 13},
	"lr":  {Name: "lr", Size: 32, Encoding: 14},
	"pc":  {Name: "pc", Size: 32, Encoding: 15},
}

func GetRegister(arch Arch, regName string) (Register, bool) {
	switch arch {
	case ArchX86:
		reg, ok := x86Registers[regName]
		return reg, ok
	case ArchX86_64:
		reg, ok := x86_64Registers[regName]
		return reg, ok
	case ArchARM:
		reg, ok := armRegisters[regName]
		return reg, ok
	}
	return Register{}, false
}
