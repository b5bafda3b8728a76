package cmd

import (
	"github.com/hpkotak/notify-claude/internal/setup"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Check the platform notifier and write a config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setup.Run(ioIn, ioOut)
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
