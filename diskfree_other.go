// Completion: 100% - Platform-specific module complete
//go:build !linux && !darwin && !freebsd

package main

// diskFree is unavailable here; the verbose preflight is skipped
func diskFree(path string) (uint64, bool) {
	return 0, false
}
