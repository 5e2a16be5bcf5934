// Completion: 100% - Platform-specific module complete
//go:build linux || darwin || freebsd

package main

import "golang.org/x/sys/unix"

// diskFree reports the free space available to this process at path
func diskFree(path string) (uint64, bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, false
	}
	return uint64(st.Bavail) * uint64(st.Bsize), true
}
