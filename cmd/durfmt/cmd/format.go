package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/durfmt/internal/durationfmt"
	"github.com/Dicklesworthstone/durfmt/internal/render"
)

var formatCmd = &cobra.Command{
	Use:   "format SECONDS [NANOS]",
	Short: "Format one duration",
	Long: `Formats whole seconds plus optional sub-second nanoseconds (0-999999999).

With --std the single argument is a nanosecond count, as held by a Go
time.Duration.

Examples:
  durfmt format 245              # 4m5s
  durfmt format 0 1100           # 1.1µs
  durfmt format --std 90000000000  # 1m30s`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().Bool("std", false, "treat the argument as a nanosecond count")
}

func runFormat(cmd *cobra.Command, args []string) error {
	std, _ := cmd.Flags().GetBool("std")

	var (
		d   durationfmt.Duration
		err error
	)
	if std {
		if len(args) != 1 {
			return fmt.Errorf("--std takes exactly one argument, got %d", len(args))
		}
		d, err = parseNanoseconds(args[0])
	} else {
		nanos := ""
		if len(args) == 2 {
			nanos = args[1]
		}
		d, err = parseDuration(args[0], nanos)
	}
	if err != nil {
		return err
	}

	logger.Debug("formatting", "seconds", d.Seconds, "nanos", d.Nanos)
	return writeConversions(cmd, []render.Conversion{render.NewConversion(d)})
}

// parseDuration builds a Duration from decimal seconds and optional nanos.
func parseDuration(secondsArg, nanosArg string) (durationfmt.Duration, error) {
	seconds, err := strconv.ParseUint(secondsArg, 10, 64)
	if err != nil {
		return durationfmt.Duration{}, fmt.Errorf("invalid seconds %q: %w", secondsArg, err)
	}

	var nanos uint64
	if nanosArg != "" {
		nanos, err = strconv.ParseUint(nanosArg, 10, 32)
		if err != nil {
			return durationfmt.Duration{}, fmt.Errorf("invalid nanoseconds %q: %w", nanosArg, err)
		}
	}

	d, err := durationfmt.New(seconds, uint32(nanos))
	if err != nil {
		return durationfmt.Duration{}, fmt.Errorf("invalid nanoseconds %q: %w", nanosArg, err)
	}
	return d, nil
}

// parseNanoseconds builds a Duration from a time.Duration nanosecond count.
func parseNanoseconds(arg string) (durationfmt.Duration, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return durationfmt.Duration{}, fmt.Errorf("invalid nanosecond count %q: %w", arg, err)
	}

	d, err := durationfmt.FromStd(time.Duration(n))
	if err != nil {
		return durationfmt.Duration{}, fmt.Errorf("nanosecond count %q: %w", arg, err)
	}
	return d, nil
}
