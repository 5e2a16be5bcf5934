package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

var expectedX86 = []byte{
	0xB8, 0x01, 0x00, 0x00, 0x00, // mov eax, 1
	0x05, 0x64, 0x00, 0x00, 0x00, // add eax, 100
	0x40,                                     // inc eax
	0x48,                                     // dec eax
	0x50,                                     // push eax
	0x58,                                     // pop eax
	0x0F, 0x1F, 0x80, 0x00, 0x00, 0x00, 0x00, // nop (7 bytes)
	0xEB, 0xE9, // jmp -23
}

var expectedARM = []byte{
	0x01, 0x00, 0xA0, 0xE3, // mov r0, #1
	0x64, 0x00, 0x80, 0xE2, // add r0, r0, #100
	0x32, 0x00, 0x50, 0xE3, // cmp r0, #50
	0xF9, 0xFF, 0xFF, 0x1A, // bne -28
}

var expectedX64 = []byte{
	0x48, 0xB8, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // mov rax, 1
	0x48, 0x05, 0x64, 0x00, 0x00, 0x00, // add rax, 100
	0x48, 0xFF, 0xC0, // inc rax
	0x48, 0xFF, 0xC8, // dec rax
	0x50,       // push rax
	0x58,       // pop rax
	0xEB, 0xE6, // jmp -26
}

var expectedSimple = []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

// TestPayloadContents checks every payload byte-for-byte
func TestPayloadContents(t *testing.T) {
	cases := []struct {
		name     string
		build    func() *Payload
		filename string
		expected []byte
	}{
		{"X86", BuildX86Payload, "x86_test.bin", expectedX86},
		{"ARM", BuildARMPayload, "arm_test.bin", expectedARM},
		{"X64", BuildX64Payload, "x64_test.bin", expectedX64},
		{"Simple", BuildSimplePayload, "test_payload.bin", expectedSimple},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.build()
			if p.Filename != tt.filename {
				t.Errorf("Filename = %s, want %s", p.Filename, tt.filename)
			}
			if p.Size() != len(tt.expected) {
				t.Errorf("Size = %d, want %d", p.Size(), len(tt.expected))
			}
			if !bytes.Equal(p.Bytes(), tt.expected) {
				t.Errorf("Content = % x\nwant      % x", p.Bytes(), tt.expected)
			}
			if !p.buf.IsCommitted() {
				t.Error("Builder returned an unsealed payload")
			}
		})
	}
}

// TestPayloadSizes checks the fixed payload sizes and the combined total
func TestPayloadSizes(t *testing.T) {
	payloads := BuildAllPayloads()
	wantSizes := []int{23, 16, 26, 8}

	if len(payloads) != 4 {
		t.Fatalf("BuildAllPayloads returned %d payloads, want 4", len(payloads))
	}

	total := 0
	for i, p := range payloads {
		if p.Size() != wantSizes[i] {
			t.Errorf("%s payload size = %d, want %d", p.Name, p.Size(), wantSizes[i])
		}
		total += p.Size()
	}
	if total != 73 {
		t.Errorf("Combined size = %d, want 73", total)
	}
}

// TestGenerateAll runs the full sequence in an empty directory
func TestGenerateAll(t *testing.T) {
	QuietMode = true
	defer func() { QuietMode = false }()

	dir := t.TempDir()
	payloads, err := GenerateAll(dir)
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}
	if len(payloads) != 4 {
		t.Fatalf("GenerateAll wrote %d payloads, want 4", len(payloads))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 4 {
		t.Errorf("Directory holds %d files, want 4", len(entries))
	}

	total := int64(0)
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			t.Fatalf("Info failed: %v", err)
		}
		total += info.Size()
	}
	if total != 73 {
		t.Errorf("Combined file size = %d, want 73", total)
	}

	for _, tt := range []struct {
		filename string
		expected []byte
	}{
		{"x86_test.bin", expectedX86},
		{"arm_test.bin", expectedARM},
		{"x64_test.bin", expectedX64},
		{"test_payload.bin", expectedSimple},
	} {
		got, err := os.ReadFile(filepath.Join(dir, tt.filename))
		if err != nil {
			t.Fatalf("ReadFile %s failed: %v", tt.filename, err)
		}
		if !bytes.Equal(got, tt.expected) {
			t.Errorf("%s on disk = % x, want % x", tt.filename, got, tt.expected)
		}
	}
}

// TestGenerateAllIdempotent re-runs generation and expects bitwise-equal files
func TestGenerateAllIdempotent(t *testing.T) {
	QuietMode = true
	defer func() { QuietMode = false }()

	dir := t.TempDir()
	if _, err := GenerateAll(dir); err != nil {
		t.Fatalf("First run failed: %v", err)
	}

	first := map[string][]byte{}
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		first[e.Name()] = data
	}

	if _, err := GenerateAll(dir); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	for name, before := range first {
		after, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if !bytes.Equal(before, after) {
			t.Errorf("%s changed between runs", name)
		}
	}
}

// TestGenerateAllReadOnlyDir expects the first write to fail cleanly
func TestGenerateAllReadOnlyDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root; directory permissions are not enforced")
	}

	QuietMode = true
	defer func() { QuietMode = false }()

	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}
	defer os.Chmod(dir, 0o755)

	written, err := GenerateAll(dir)
	if err == nil {
		t.Fatal("GenerateAll succeeded in a read-only directory")
	}
	if len(written) != 0 {
		t.Errorf("%d payloads written before the failure, want 0", len(written))
	}
}

// TestVerifyAll checks verification success and corruption detection
func TestVerifyAll(t *testing.T) {
	QuietMode = true
	defer func() { QuietMode = false }()

	dir := t.TempDir()
	payloads, err := GenerateAll(dir)
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}

	if err := VerifyAll(dir, payloads); err != nil {
		t.Fatalf("VerifyAll failed on fresh files: %v", err)
	}

	// Corrupt one file and expect a mismatch
	if err := os.WriteFile(filepath.Join(dir, "test_payload.bin"), []byte{0xFF}, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := VerifyAll(dir, payloads); err == nil {
		t.Fatal("VerifyAll did not detect a corrupted file")
	}

	// Remove a file and expect a read error
	if err := os.Remove(filepath.Join(dir, "x86_test.bin")); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := VerifyAll(dir, payloads); err == nil {
		t.Fatal("VerifyAll did not detect a missing file")
	}
}

// TestGenerateOne writes a single architecture's payload
func TestGenerateOne(t *testing.T) {
	QuietMode = true
	defer func() { QuietMode = false }()

	dir := t.TempDir()
	payloads, err := GenerateOne(dir, ArchARM)
	if err != nil {
		t.Fatalf("GenerateOne failed: %v", err)
	}
	if len(payloads) != 1 || payloads[0].Filename != "arm_test.bin" {
		t.Fatalf("GenerateOne wrote %v", payloads)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Directory holds %d files, want 1", len(entries))
	}

	got, err := os.ReadFile(filepath.Join(dir, "arm_test.bin"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(got, expectedARM) {
		t.Errorf("arm_test.bin = % x, want % x", got, expectedARM)
	}

	if _, err := GenerateOne(dir, ArchUnknown); err == nil {
		t.Error("GenerateOne accepted an unknown architecture")
	}
}

// TestWriteFileOverwrites checks that stale content is replaced
func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "test_payload.bin")
	if err := os.WriteFile(stale, bytes.Repeat([]byte{0xAA}, 100), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	p := BuildSimplePayload()
	if _, err := p.WriteFile(dir); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := os.ReadFile(stale)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(got, expectedSimple) {
		t.Errorf("Overwrite left % x, want % x", got, expectedSimple)
	}
}
