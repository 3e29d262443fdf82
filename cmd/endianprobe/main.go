// Command endianprobe prints the bytes of the 16-bit value 0x0102 twice: first
// in the order they sit in memory, then low byte and high byte computed with
// shift and mask. Only the first line depends on the host byte order.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moolekkari/endianprobe/common"
	"github.com/moolekkari/endianprobe/internal/endian"
	"github.com/moolekkari/endianprobe/probe"
)

// rootCmd takes no arguments and recognizes no flags; anything passed is ignored.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "endianprobe",
		Short: "Show how the host byte order affects reading a 16-bit value",
		Long: `endianprobe stores 0x0102 (258) and prints its two bytes twice.

The first line reads them in memory order: "2 1" on little endian hosts,
"1 2" on big endian hosts. The second line computes the low and the high byte
with shift and mask and is "2 1" everywhere.`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			runProbe(cmd.OutOrStdout())
			return nil
		},
	}
}

// execute runs cmd with args dropped. Cobra would otherwise route arguments
// such as "__complete" to its built-in commands.
func execute(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		common.Log.Debug("ignoring arguments %q", args)
	}
	cmd.SetArgs([]string{})
	return cmd.Execute()
}

// runProbe writes the report to out. Failures are logged and never change the
// exit status.
func runProbe(out io.Writer) {
	report(out, probe.Run(), endian.Verify())
}

func report(out io.Writer, r probe.Result, verifyErr error) {
	if verifyErr != nil {
		common.Log.Warning("%v", verifyErr)
	}
	if !r.Consistent() {
		common.Log.Warning("overlay %s does not match %s host order", r.Overlay, r.Order)
	}
	if _, err := r.WriteTo(out); err != nil {
		common.Log.Error("%v", err)
	}
}

// setupLogger installs a zap logger built by build, falling back to a
// common.ConsoleLogger on stderr when build fails. The returned func flushes it.
func setupLogger(level common.LogLevel, build func(common.LogLevel) (*zap.Logger, error)) func() {
	l, err := build(level)
	if err != nil {
		common.SetLogger(common.NewConsoleLogger(level))
		common.Log.Warning("%v, using console logger", err)
		return func() {}
	}
	common.SetLogger(newZapLogger(l))
	return func() { _ = l.Sync() }
}

func main() {
	sync := setupLogger(common.LogLevelWarning, buildLogger)
	defer sync()

	if err := execute(rootCmd, os.Args[1:]); err != nil {
		common.Log.Error("%v", err)
	}
}
