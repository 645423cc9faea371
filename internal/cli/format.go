package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/justify/pkg/errors"
	"github.com/matzehuels/justify/pkg/justify"
)

// formatOpts holds the command-line flags for the format command.
type formatOpts struct {
	width     int    // target line width (0 = use config)
	algorithm string // break strategy: "optimal" or "greedy" ("" = use config)
	output    string // output file path ("" = stdout)
}

// newFormatCmd creates the format command for justifying text.
// Input comes from a file argument or stdin; blank lines separate
// paragraphs, and each paragraph is justified independently.
func newFormatCmd(configPath *string) *cobra.Command {
	var opts formatOpts

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Justify a text file or stdin to a fixed width",
		Long: `Justify a text file (or stdin when no file is given) to a fixed width.

Blank lines separate paragraphs; each paragraph is justified on its own
and the last line of each paragraph is left unjustified. The default
width and algorithm come from the config file when one exists.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runFormat(cmd.Context(), input, &opts, *configPath)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "target line width (default from config, else 60)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "break strategy: optimal (default), greedy")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// runFormat reads the input, justifies every paragraph, and writes the result.
func runFormat(ctx context.Context, input string, opts *formatOpts, configPath string) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	width, algorithm, err := resolveOptions(cfg, opts.width, opts.algorithm)
	if err != nil {
		return err
	}

	text, err := readInput(input)
	if err != nil {
		return err
	}

	paragraphs := splitParagraphs(text)
	logger.Debugf("Formatting %d paragraph(s) at width %d (%s)", len(paragraphs), width, algorithm)

	prog := newProgress(logger)
	formatter := justify.Formatter{Width: width, Breaker: breakerFor(algorithm)}
	formatted := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		out, err := formatter.Format(p)
		if err != nil {
			return fmt.Errorf("format paragraph %d: %w", i+1, err)
		}
		formatted[i] = out
	}
	result := strings.Join(formatted, "\n\n")

	if opts.output == "" {
		fmt.Println(result)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(result+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done(fmt.Sprintf("Formatted %d paragraph(s)", len(paragraphs)))
	printFile(opts.output)
	return nil
}

// breakerFor maps a validated algorithm name to its break strategy.
func breakerFor(algorithm string) justify.Breaker {
	if algorithm == apperrors.AlgorithmGreedy {
		return justify.Greedy{}
	}
	return justify.Optimal{}
}

// readInput reads the whole input: stdin for "-", a file otherwise.
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "input %s", path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// splitParagraphs splits text into blank-line separated paragraphs.
// Runs of blank lines count as one separator; leading and trailing blank
// lines produce no paragraphs. Newlines inside a paragraph are preserved
// (the formatter re-tokenizes on all whitespace anyway).
func splitParagraphs(text string) []string {
	var paragraphs []string
	var cur []string

	flush := func() {
		if len(cur) > 0 {
			paragraphs = append(paragraphs, strings.Join(cur, "\n"))
			cur = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return paragraphs
}
