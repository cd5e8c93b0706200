// Package cmd implements the CLI commands for linedump using Cobra.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Persistent flag variables shared by every dump command.
var (
	flagFormat    string
	flagEncoding  string
	flagHTML      bool
	flagOutputDir string
	flagVerbose   bool
)

// logger traces pipeline stages on stderr; replaced per run.
var logger = slog.New(slog.DiscardHandler)

var rootCmd = &cobra.Command{
	Use:   "linedump",
	Short: "linedump — print the numbered tail of a text file",
	Long: `linedump reads a text file (README.md by default), numbers its lines from 1
and prints the lines past a threshold as "NNN: content".

Usage:
  linedump from  [path] [--line 100]
  linedump after [path] [--line 120]
  linedump dump  [path] [--from N | --after N]`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), flagVerbose)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagFormat, "format", "text", "Output format: text, markdown, json, or pdf")
	pf.StringVar(&flagEncoding, "encoding", "utf-8", "Encoding of the source file (IANA name)")
	pf.BoolVar(&flagHTML, "html", false, "Treat the source as HTML and number its Markdown rendition")
	pf.StringVar(&flagOutputDir, "output_dir", "", "Write output to a file in this directory instead of stdout")
	pf.BoolVar(&flagVerbose, "verbose", false, "Trace pipeline stages on stderr")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err alone on its own line.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, err)
}
