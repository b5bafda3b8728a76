package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hpkotak/notify-claude/internal/config"
	"github.com/spf13/cobra"
)

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a configuration value",
	Long: `Update a configuration value. Supported keys:
  title              Notification title
  timeout            Notifier timeout (e.g., 10s)
  macos.sound        macOS sound name (e.g., Glass)
  linux.backend      Linux backend (notify-send/dbus)
  linux.urgency      Linux urgency (low/normal/critical)
  linux.sound        Play a sound on Linux (true/false)
  linux.sound_player Audio player executable (e.g., paplay)
  linux.sound_file   Sound file passed to the player`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	switch key {
	case "title":
		value = strings.TrimSpace(value)
		cfg.Title = value
	case "timeout":
		cfg.Timeout = value
	case "macos.sound":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("macos sound cannot be empty")
		}
		cfg.MacOS.Sound = value
	case "linux.backend":
		cfg.Linux.Backend = strings.ToLower(value)
	case "linux.urgency":
		cfg.Linux.Urgency = strings.ToLower(value)
	case "linux.sound":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		cfg.Linux.Sound = enabled
	case "linux.sound_player":
		cfg.Linux.SoundPlayer = strings.TrimSpace(value)
	case "linux.sound_file":
		cfg.Linux.SoundFile = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ioOut, "Set %s = %s\n", key, value)
	return nil
}
