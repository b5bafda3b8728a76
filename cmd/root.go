package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hpkotak/notify-claude/internal/config"
	"github.com/hpkotak/notify-claude/internal/log"
	"github.com/hpkotak/notify-claude/internal/notify"
	"github.com/hpkotak/notify-claude/internal/platform"
	"github.com/spf13/cobra"
)

var (
	logLevelFlag string
	verboseFlag  bool
)

// Package-level variables for testability.
// Tests override these to avoid spawning real notifiers.
var (
	detectOS = platform.Detect
	ioIn     io.Reader = os.Stdin
	ioOut    io.Writer = os.Stdout
	ioErr    io.Writer = os.Stderr

	notifyOptions []notify.Option
)

var rootCmd = &cobra.Command{
	Use:   "notify-claude",
	Short: "Show a desktop notification when Claude finishes",
	Long: `notify-claude raises a "Claude complete" desktop notification.

It detects the OS from the kernel name and calls the native notifier:
  macOS  osascript (with the Glass sound)
  Linux  notify-send at normal urgency (or the D-Bus notification service)

On any other OS it does nothing and exits successfully.`,
	Args:              cobra.NoArgs,
	RunE:              runNotify,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", log.DefaultLevel, "log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "shorthand for --log-level=debug")
}

func Execute() error {
	return rootCmd.Execute()
}

func runNotify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	kind := detectOS()
	logger := newLogger()
	logger.Debug().Str("os", kind.String()).Msg("detected platform")

	return notify.New(cfg, logger, notifyOptions...).Dispatch(ctx, kind)
}

// loadConfig returns the validated config, falling back to defaults when no
// config file exists.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", config.Path(), err)
	}
	return cfg, nil
}
