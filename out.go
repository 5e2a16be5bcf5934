// Completion: 100% - Instruction implementation complete
package main

type Out struct {
	arch   Arch
	writer Writer
}

// NewOut creates a new Out instance bound to one architecture and one
// output buffer
func NewOut(arch Arch, writer Writer) *Out {
	return &Out{
		arch:   arch,
		writer: writer,
	}
}

func (o *Out) Write(b uint8) {
	o.writer.Write(b)
}

func (o *Out) WriteUnsigned(i uint) {
	o.writer.WriteUnsigned(i)
}

func (o *Out) WriteWord(w uint32) {
	o.writer.WriteWord(w)
}
