// Completion: 100% - Payload definitions complete
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// payload.go - The four fixture payloads
//
// A Payload is an immutable byte sequence plus its destination filename.
// Each builder assembles its instruction stream through the per-mnemonic
// encoders, then seals the buffer. The resulting bytes are fixed fixture
// data for a VM under test; the streams loop back on themselves and are
// not meant to terminate when actually executed.

type Payload struct {
	Name     string
	Filename string
	buf      *SafeBuffer
}

// Bytes returns the sealed payload content
func (p *Payload) Bytes() []byte {
	return p.buf.Bytes()
}

// Size returns the payload length in bytes
func (p *Payload) Size() int {
	return p.buf.Len()
}

// WriteFile writes the payload into dir, overwriting any existing file,
// and returns the full path
func (p *Payload) WriteFile(dir string) (string, error) {
	if !p.buf.IsCommitted() {
		panic(fmt.Sprintf("Payload(%s): writing an unsealed payload", p.Name))
	}
	path := filepath.Join(dir, p.Filename)
	if err := os.WriteFile(path, p.Bytes(), 0o644); err != nil {
		return path, fmt.Errorf("could not write %s: %w", path, err)
	}
	return path, nil
}

// BuildX86Payload assembles the 23-byte 32-bit x86 loop body:
// seed a counter, bump it around, and jump back to the start.
func BuildX86Payload() *Payload {
	sb := NewSafeBuffer("x86")
	o := NewOut(ArchX86, sb.Writer())

	o.MovImmToReg("eax", 1)
	o.AddImmToReg("eax", 100)
	o.IncReg("eax")
	o.DecReg("eax")
	o.PushReg("eax")
	o.PopReg("eax")
	o.Nop(7)
	o.JmpShort(-23) // back to the mov

	sb.Commit()
	return &Payload{Name: "x86", Filename: "x86_test.bin", buf: sb}
}

// BuildARMPayload assembles four little-endian A32 instruction words.
// The BNE displacement is a historical placeholder from the VM's own
// fixtures and is kept bit-exact rather than recomputed.
func BuildARMPayload() *Payload {
	sb := NewSafeBuffer("arm")
	o := NewOut(ArchARM, sb.Writer())

	o.MovImmToReg("r0", 1)
	o.AddImmToReg("r0", 100)
	o.CmpImmToReg("r0", 50)
	o.BranchNotEqual(-28)

	sb.Commit()
	return &Payload{Name: "ARM", Filename: "arm_test.bin", buf: sb}
}

// BuildX64Payload assembles the 26-byte x86-64 loop body. The load uses
// the movabs form so the stream carries a full 64-bit immediate.
func BuildX64Payload() *Payload {
	sb := NewSafeBuffer("x64")
	o := NewOut(ArchX86_64, sb.Writer())

	o.MovImmToReg("rax", 1)
	o.AddImmToReg("rax", 100)
	o.IncReg("rax")
	o.DecReg("rax")
	o.PushReg("rax")
	o.PopReg("rax")
	o.JmpShort(-26) // back to the mov

	sb.Commit()
	return &Payload{Name: "x64", Filename: "x64_test.bin", buf: sb}
}

// BuildSimplePayload assembles the architecture-agnostic 8-byte fixture
func BuildSimplePayload() *Payload {
	sb := NewSafeBuffer("simple")
	sb.Writer().WriteBytes([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	sb.Commit()
	return &Payload{Name: "simple", Filename: "test_payload.bin", buf: sb}
}
