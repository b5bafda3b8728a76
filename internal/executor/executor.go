// Package executor handles user confirmation and external command execution.
// Confirm uses injectable io.Reader/io.Writer for testability.
package executor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Confirm prompts the user for yes/no confirmation.
// defaultYes controls what happens when the user presses Enter without input.
// in and out are injectable for testing.
func Confirm(prompt string, defaultYes bool, in io.Reader, out io.Writer) bool {
	hint := "[Y/n]"
	if !defaultYes {
		hint = "[y/N]"
	}
	_, _ = fmt.Fprintf(out, "%s %s: ", prompt, hint)

	line, ok := readLine(in)
	if !ok {
		return false
	}

	input := strings.TrimSpace(strings.ToLower(line))

	switch input {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}

// readLine reads up to and excluding the next newline without reading
// past it, so successive prompts can share one reader.
func readLine(in io.Reader) (string, bool) {
	var b strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return strings.TrimSuffix(b.String(), "\r"), true
			}
			b.WriteByte(buf[0])
		}
		if err != nil {
			return b.String(), b.Len() > 0
		}
	}
}

// Run executes name with args. Stdout and stderr are inherited so the
// command's own diagnostics reach the user.
func Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// LookPath reports where name would be found on PATH.
func LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
