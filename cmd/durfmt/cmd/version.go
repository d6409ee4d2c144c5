package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// overridden by ldflags
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "durfmt\t%s\n", version)

		info, ok := debug.ReadBuildInfo()
		if !ok {
			return nil
		}

		var rev, date string
		var dirty bool
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				rev = setting.Value
			case "vcs.time":
				date = setting.Value
			case "vcs.modified":
				if setting.Value == "true" {
					dirty = true
				}
			}
		}

		if dirty && rev != "" {
			rev += "*"
		}
		if rev != "" {
			fmt.Fprintf(out, "commit\t%s\n", rev)
		}
		if date != "" {
			fmt.Fprintf(out, "date\t%s\n", date)
		}
		fmt.Fprintf(out, "go\t%s\n", info.GoVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
