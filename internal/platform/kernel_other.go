//go:build !unix

package platform

import "runtime"

// KernelName returns runtime.GOOS on hosts without uname(2).
func KernelName() string {
	return runtime.GOOS
}
