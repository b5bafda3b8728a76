// Package setup handles first-run onboarding: checking that the platform
// notifier is installed and writing a config file. All choices are
// confirmed with the user.
package setup

import (
	"fmt"
	"io"

	"github.com/hpkotak/notify-claude/internal/config"
	"github.com/hpkotak/notify-claude/internal/executor"
	"github.com/hpkotak/notify-claude/internal/platform"
)

// Package-level function vars for testability.
var (
	lookPath   = executor.LookPath
	kernelName = platform.KernelName
)

// Run executes the interactive setup flow.
// in and out are injectable for testability.
func Run(in io.Reader, out io.Writer) error {
	kernel := kernelName()
	kind := platform.Classify(kernel)

	_, _ = fmt.Fprintln(out, "notify-claude Setup")
	_, _ = fmt.Fprintln(out, "===================")
	_, _ = fmt.Fprintf(out, "Platform: %s (%s)\n\n", kernel, kind)

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	switch kind {
	case platform.MacOS:
		checkCommand("osascript", out)
	case platform.Linux:
		configureLinux(cfg, in, out)
	default:
		_, _ = fmt.Fprintln(out, "[!!] No notifier for this platform. notify-claude will exit without notifying.")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintf(out, "\nConfig saved to %s\n", config.Path())
	_, _ = fmt.Fprintln(out, "Ready! Try: notify-claude")
	return nil
}

func configureLinux(cfg *config.Config, in io.Reader, out io.Writer) {
	if cfg.Linux.Backend == config.BackendNotifySend && !checkCommand("notify-send", out) {
		if executor.Confirm("Use the D-Bus notification service instead?", true, in, out) {
			cfg.Linux.Backend = config.BackendDBus
			_, _ = fmt.Fprintln(out, "[ok] Backend: dbus")
		} else {
			_, _ = fmt.Fprintln(out, "Install notify-send (libnotify) or notifications will fail.")
		}
	}

	cfg.Linux.Sound = executor.Confirm("Play a sound after each notification?", cfg.Linux.Sound, in, out)
	if cfg.Linux.Sound {
		checkCommand(cfg.Linux.SoundPlayer, out)
	}
}

// checkCommand reports whether name is on PATH.
func checkCommand(name string, out io.Writer) bool {
	if _, err := lookPath(name); err != nil {
		_, _ = fmt.Fprintf(out, "[!!] %s not found\n", name)
		return false
	}
	_, _ = fmt.Fprintf(out, "[ok] %s is installed\n", name)
	return true
}
