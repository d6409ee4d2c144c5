package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/durfmt/internal/render"
)

var batchCmd = &cobra.Command{
	Use:   "batch [FILE|-]",
	Short: "Format many durations read from a file or stdin",
	Long: `Reads one "SECONDS [NANOS]" pair per line and renders every duration.
Blank lines and lines starting with # are skipped. Without FILE, or with -,
input is read from stdin.

Examples:
  durfmt batch timings.txt
  printf '90\n0 1100\n' | durfmt batch -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
		name = args[0]
	}

	convs, err := readConversions(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	logger.Debug("batch read", "source", name, "count", len(convs))
	return writeConversions(cmd, convs)
}

// readConversions parses "SECONDS [NANOS]" lines.
func readConversions(r io.Reader) ([]render.Conversion, error) {
	convs := []render.Conversion{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) > 2 {
			return nil, fmt.Errorf("line %d: expected SECONDS [NANOS], got %d fields", lineNo, len(fields))
		}
		nanos := ""
		if len(fields) == 2 {
			nanos = fields[1]
		}

		d, err := parseDuration(fields[0], nanos)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		convs = append(convs, render.NewConversion(d))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return convs, nil
}
