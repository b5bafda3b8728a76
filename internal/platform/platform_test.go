package platform

import (
	"runtime"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		kernel string
		want   Kind
	}{
		{"Darwin", MacOS},
		{"Linux", Linux},
		{"linux", Linux},
		{" Darwin\n", MacOS},
		{"FreeBSD", Unrecognized},
		{"Windows_NT", Unrecognized},
		{"", Unrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.kernel, func(t *testing.T) {
			if got := Classify(tt.kernel); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.kernel, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{MacOS, "macos"},
		{Linux, "linux"},
		{Unrecognized, "unrecognized"},
		{Kind(42), "unrecognized"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestDetectMatchesHost(t *testing.T) {
	want := Unrecognized
	switch runtime.GOOS {
	case "darwin":
		want = MacOS
	case "linux":
		want = Linux
	}
	if got := Detect(); got != want {
		t.Errorf("Detect() = %v on %s, want %v (kernel %q)", got, runtime.GOOS, want, KernelName())
	}
}
