package cmd

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/durfmt/internal/durationfmt"
	"github.com/Dicklesworthstone/durfmt/internal/render"
)

// demoDurations are the values printed by a plain "durfmt examples".
var demoDurations = []durationfmt.Duration{
	{Seconds: 0, Nanos: 0},
	{Seconds: 90, Nanos: 0},
	{Seconds: 209, Nanos: 1_000},
}

// referenceDurations cover every unit scale and the uint64 limit.
var referenceDurations = []durationfmt.Duration{
	{Seconds: 0, Nanos: 1},
	{Seconds: 0, Nanos: 1_100},
	{Seconds: 0, Nanos: 2_200_000},
	{Seconds: 0, Nanos: 100_567_123},
	{Seconds: 3, Nanos: 300_000_000},
	{Seconds: 553, Nanos: 123_456_789},
	{Seconds: 4*60 + 5, Nanos: 0},
	{Seconds: 4*60 + 5, Nanos: 1_000_000},
	{Seconds: 5*60*60 + 6*60 + 7, Nanos: 1_000_000},
	{Seconds: 8 * 60, Nanos: 1},
	{Seconds: 2562047*60*60 + 47*60 + 16, Nanos: 854_775_807},
	{Seconds: math.MaxUint64, Nanos: 0},
	{Seconds: math.MaxUint64, Nanos: 999_999_999},
	{Seconds: math.MaxUint64, Nanos: 1_000},
	{Seconds: math.MaxUint64, Nanos: 1_000_000},
	{Seconds: math.MaxUint64 - 16, Nanos: 999_999_999},
}

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Print sample conversions",
	Long: `Prints a few sample conversions. With --all, also prints a reference set
covering nanoseconds, microseconds, milliseconds, and hour/minute/second
output up to the largest representable duration.`,
	Args: cobra.NoArgs,
	RunE: runExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)
	examplesCmd.Flags().Bool("all", false, "include the full reference set")
}

func runExamples(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	values := demoDurations
	if all {
		values = append(append([]durationfmt.Duration{}, demoDurations...), referenceDurations...)
	}

	convs := make([]render.Conversion, 0, len(values))
	for _, d := range values {
		convs = append(convs, render.NewConversion(d))
	}
	return writeConversions(cmd, convs)
}
