package cmd

import (
	"fmt"

	"github.com/hpkotak/notify-claude/internal/platform"
	"github.com/spf13/cobra"
)

var kernelName = platform.KernelName

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the detected kernel name and platform",
	Args:  cobra.NoArgs,
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	kernel := kernelName()
	_, _ = fmt.Fprintf(ioOut, "kernel:   %s\n", kernel)
	_, _ = fmt.Fprintf(ioOut, "platform: %s\n", platform.Classify(kernel))
	return nil
}
