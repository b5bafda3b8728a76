//go:build unix

package platform

import "golang.org/x/sys/unix"

// KernelName returns the uname(2) system name, or "" if it cannot be read.
func KernelName() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return ""
	}
	return unix.ByteSliceToString(u.Sysname[:])
}
