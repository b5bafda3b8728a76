// Package platform provides OS detection helpers.
package platform

import "strings"

// Kind classifies the host OS for notifier selection.
type Kind int

const (
	Unrecognized Kind = iota
	MacOS
	Linux
)

func (k Kind) String() string {
	switch k {
	case MacOS:
		return "macos"
	case Linux:
		return "linux"
	default:
		return "unrecognized"
	}
}

// Classify maps a kernel name (e.g., "Darwin", "Linux") to a Kind.
// Unknown or empty names are Unrecognized.
func Classify(kernel string) Kind {
	switch strings.ToLower(strings.TrimSpace(kernel)) {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Unrecognized
	}
}

// Detect classifies the running host.
func Detect() Kind {
	return Classify(KernelName())
}
