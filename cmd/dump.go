// Package cmd — dump commands.
// Every command runs the same pipeline:
// read → decode → (extract → normalize) → split → filter → render → write.
//
// `from` and `after` are fixed presets over README.md; `dump` takes the
// threshold as flags.
package cmd

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/linedump/core"
	"github.com/gaurav-prasanna/linedump/core/extract"
	"github.com/gaurav-prasanna/linedump/core/normalize"
	"github.com/gaurav-prasanna/linedump/core/output"
	"github.com/gaurav-prasanna/linedump/core/render"
	"github.com/gaurav-prasanna/linedump/core/source"
	"github.com/gaurav-prasanna/linedump/core/split"
	"github.com/spf13/cobra"
)

const (
	defaultPath  = "README.md"
	defaultFrom  = 100
	defaultAfter = 120
	unsetLine    = -1
)

// Flag variables.
var (
	flagFromLine  int
	flagAfterLine int
	flagDumpFrom  int
	flagDumpAfter int
)

var fromCmd = &cobra.Command{
	Use:   "from [path]",
	Short: "Print lines numbered --line and above",
	Long: `From prints every line whose number is at least --line (default 100).

Examples:
  linedump from
  linedump from CHANGELOG.md --line 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateLine("--line", flagFromLine); err != nil {
			return err
		}
		return runDump(cmd, pathArg(args), core.From(flagFromLine))
	},
}

var afterCmd = &cobra.Command{
	Use:   "after [path]",
	Short: "Print lines numbered strictly above --line",
	Long: `After prints every line whose number is greater than --line (default 120).

Examples:
  linedump after
  linedump after notes.txt --line 10 --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateLine("--line", flagAfterLine); err != nil {
			return err
		}
		return runDump(cmd, pathArg(args), core.After(flagAfterLine))
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump [path]",
	Short: "Print numbered lines filtered by --from or --after",
	Long: `Dump prints numbered lines of a file. --from N keeps lines N and above,
--after N keeps lines above N. Without either, every line is printed.

Examples:
  linedump dump
  linedump dump docs/index.html --html --from 5
  linedump dump --after 120 --format pdf --output_dir ./out`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		threshold, err := dumpThreshold()
		if err != nil {
			return err
		}
		return runDump(cmd, pathArg(args), threshold)
	},
}

func init() {
	rootCmd.AddCommand(fromCmd, afterCmd, dumpCmd)

	fromCmd.Flags().IntVar(&flagFromLine, "line", defaultFrom, "First line number to print")
	afterCmd.Flags().IntVar(&flagAfterLine, "line", defaultAfter, "Print lines after this line number")

	dumpCmd.Flags().IntVar(&flagDumpFrom, "from", unsetLine, "Print lines numbered N and above")
	dumpCmd.Flags().IntVar(&flagDumpAfter, "after", unsetLine, "Print lines numbered above N")
}

// runDump reads path and writes its numbered lines passing threshold.
// Nothing is written unless every stage succeeds.
func runDump(cmd *cobra.Command, path string, threshold core.Threshold) error {
	renderer, err := selectRenderer()
	if err != nil {
		return err
	}
	reader, err := source.New(flagEncoding)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	src, err := readSource(ctx, reader, path)
	if err != nil {
		return err
	}

	meta := core.SourceMetadata{
		Path:       src.Path,
		Encoding:   src.Encoding,
		TotalLines: len(src.Lines),
		Threshold:  threshold.String(),
		Emitted:    threshold.Count(len(src.Lines)),
	}

	data, err := renderer.Render(threshold.Filter(core.Enumerate(src.Lines)), meta)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	logger.Debug("rendered", "format", flagFormat, "emitted", meta.Emitted, "bytes", len(data))

	writer, err := output.New(flagOutputDir, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	dest, err := writer.Write(path, data, renderer.Extension())
	if err != nil {
		return err
	}
	if !writer.ToStdout() {
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Written: %s\n", dest)
	}
	return nil
}

// readSource runs the read, optional HTML, and split stages.
func readSource(ctx context.Context, reader core.Reader, path string) (*core.SourceText, error) {
	src, err := reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	logger.Debug("read source", "path", src.Path, "encoding", src.Encoding, "bytes", len(src.Text))

	text := src.Text
	if flagHTML {
		text, err = htmlToMarkdown(extract.New(), normalize.New(), text)
		if err != nil {
			return nil, err
		}
	}

	src.Lines = split.New().Split(text)
	logger.Debug("split", "lines", len(src.Lines))
	return src, nil
}

// htmlToMarkdown reduces an HTML document to its Markdown rendition.
func htmlToMarkdown(extractor core.Extractor, normalizer core.Normalizer, html string) (string, error) {
	content, err := extractor.Extract(html)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	markdown, err := normalizer.Normalize(content)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}
	return markdown, nil
}

// pathArg returns the positional path or README.md.
func pathArg(args []string) string {
	if len(args) == 1 && args[0] != "" {
		return args[0]
	}
	return defaultPath
}

func validateLine(name string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s must be a non-negative line number (got %d)", name, n)
	}
	return nil
}

// dumpThreshold builds the threshold from --from / --after.
func dumpThreshold() (core.Threshold, error) {
	fromSet := flagDumpFrom != unsetLine
	afterSet := flagDumpAfter != unsetLine

	if fromSet && afterSet {
		return core.Threshold{}, fmt.Errorf("--from and --after are mutually exclusive")
	}
	switch {
	case fromSet:
		if err := validateLine("--from", flagDumpFrom); err != nil {
			return core.Threshold{}, err
		}
		return core.From(flagDumpFrom), nil
	case afterSet:
		if err := validateLine("--after", flagDumpAfter); err != nil {
			return core.Threshold{}, err
		}
		return core.After(flagDumpAfter), nil
	default:
		return core.From(1), nil
	}
}

// selectRenderer creates the Renderer named by --format.
func selectRenderer() (core.Renderer, error) {
	switch flagFormat {
	case "text", "":
		return render.NewTextRenderer(), nil
	case "markdown", "md":
		return render.NewMarkdownRenderer(), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown format %q: want text, markdown, json, or pdf", flagFormat)
	}
}
