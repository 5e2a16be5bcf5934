package main

import "testing"

// TestSafeBufferCommit tests the commit-once lifecycle
func TestSafeBufferCommit(t *testing.T) {
	sb := NewSafeBuffer("test")
	if sb.IsCommitted() {
		t.Error("New buffer should not be committed")
	}

	sb.Writer().WriteBytes([]byte{0x01, 0x02})
	if sb.Len() != 2 {
		t.Errorf("Len = %d, want 2", sb.Len())
	}

	sb.Commit()
	if !sb.IsCommitted() {
		t.Error("Buffer should be committed")
	}

	// Bytes stays readable after commit
	if len(sb.Bytes()) != 2 {
		t.Errorf("Bytes after commit = %d bytes, want 2", len(sb.Bytes()))
	}
}

// TestSafeBufferWriteAfterCommit expects a panic
func TestSafeBufferWriteAfterCommit(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Writer() on a committed buffer did not panic")
		}
	}()

	sb := NewSafeBuffer("sealed")
	sb.Commit()
	sb.Writer()
}
