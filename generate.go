// Completion: 100% - Orchestration complete
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// generate.go - Top-level generation and verification
//
// The four payloads are built and written in a fixed order. The first
// write failure aborts the rest of the sequence; files already written
// stay on disk.

// BuildAllPayloads assembles the four payloads in generation order
func BuildAllPayloads() []*Payload {
	return []*Payload{
		BuildX86Payload(),
		BuildARMPayload(),
		BuildX64Payload(),
		BuildSimplePayload(),
	}
}

// payloadForArch builds the single payload belonging to one architecture
func payloadForArch(arch Arch) *Payload {
	switch arch {
	case ArchX86:
		return BuildX86Payload()
	case ArchARM:
		return BuildARMPayload()
	case ArchX86_64:
		return BuildX64Payload()
	}
	return nil
}

func banner(line string) {
	fmt.Println(strings.Repeat("=", 50))
	if line != "" {
		fmt.Println(line)
		fmt.Println(strings.Repeat("=", 50))
	}
}

// GenerateAll writes all payloads into dir and returns the payloads that
// were written successfully
func GenerateAll(dir string) ([]*Payload, error) {
	payloads := BuildAllPayloads()

	if !QuietMode {
		banner(versionString + " - VM test payload generator")
	}

	if VerboseMode {
		total := 0
		for _, p := range payloads {
			total += p.Size()
		}
		if free, ok := diskFree(dir); ok {
			fmt.Fprintf(os.Stderr, "Free space in %s: %d bytes (need %d)\n", dir, free, total)
			if free < uint64(total) {
				fmt.Fprintf(os.Stderr, "Warning: destination may be full\n")
			}
		}
	}

	var written []*Payload
	for _, p := range payloads {
		if !QuietMode {
			fmt.Printf("Generating %s test payload...\n", p.Name)
		}
		if _, err := p.WriteFile(dir); err != nil {
			return written, err
		}
		written = append(written, p)
		if !QuietMode {
			fmt.Printf("%s payload generated (%d bytes)\n", p.Name, p.Size())
		}
	}

	if !QuietMode {
		fmt.Println()
		banner("All test payloads generated successfully!")
		fmt.Println("Generated files:")
		total := 0
		for _, p := range written {
			fmt.Printf("- %-16s (%s, %d bytes)\n", p.Filename, p.Name, p.Size())
			total += p.Size()
		}
		fmt.Printf("Total: %d bytes\n", total)
	}

	return written, nil
}

// GenerateOne writes only the payload for the given architecture
func GenerateOne(dir string, arch Arch) ([]*Payload, error) {
	p := payloadForArch(arch)
	if p == nil {
		return nil, fmt.Errorf("no payload for architecture %s", arch)
	}

	if !QuietMode {
		fmt.Printf("Generating %s test payload...\n", p.Name)
	}
	if _, err := p.WriteFile(dir); err != nil {
		return nil, err
	}
	if !QuietMode {
		fmt.Printf("%s payload generated (%d bytes)\n", p.Name, p.Size())
	}

	return []*Payload{p}, nil
}

// VerifyAll reads every payload file back from dir and compares it
// byte-for-byte against the sealed content
func VerifyAll(dir string, payloads []*Payload) error {
	for _, p := range payloads {
		path := filepath.Join(dir, p.Filename)
		got, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("could not read back %s: %w", path, err)
		}
		if !bytes.Equal(got, p.Bytes()) {
			return fmt.Errorf("%s: content mismatch (%d bytes on disk, %d expected)", path, len(got), p.Size())
		}
		if VerboseMode {
			fmt.Fprintf(os.Stderr, "Verified %s (%d bytes)\n", path, len(got))
		}
	}
	if !QuietMode {
		fmt.Printf("Verified %d files\n", len(payloads))
	}
	return nil
}
