// Command texevents is a thin demo driver for the texevents parser
// library: it reads a TeX-family math markup string and streams the
// parsed event sequence as text, one event per line, to stdout or a
// file.
//
// The binary exists to exercise the library end-to-end, not to grow
// into a MathML renderer.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/texstream/texevents/internal/adapters/cli"
	"github.com/texstream/texevents/internal/adapters/output"
	"github.com/texstream/texevents/internal/app"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "texevents",
	Short: "texevents streams a TeX-family math markup string as typed events",
	Long: `texevents parses a TeX-family mathematical markup string and
prints the resulting event sequence (BeginGroup/EndGroup, identifiers,
operators, numbers, infix markers) one event per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		outputFilePath, _ := cmd.Flags().GetString("output")

		inputAdapter := cli.NewAdapter(cmd)
		outputAdapter, err := output.NewWriterAdapter(outputFilePath)
		if err != nil {
			log.Fatalf("Error: %v\n", err)
		}

		appService := app.NewApplicationService(inputAdapter, outputAdapter)

		if err := appService.Run(); err != nil {
			log.Fatalf("Error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.Flags().StringP("input", "i", "", "TeX-family math markup string (required)")
	rootCmd.Flags().StringP("output", "o", "", "output file path (default: stdout)")

	if err := rootCmd.MarkFlagRequired("input"); err != nil {
		fmt.Fprintf(os.Stderr, "Error marking flag required: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
