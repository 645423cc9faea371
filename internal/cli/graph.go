package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/justify/pkg/breakviz"
	apperrors "github.com/matzehuels/justify/pkg/errors"
	"github.com/matzehuels/justify/pkg/justify"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	width  int    // target line width (0 = use config)
	format string // output format: "dot", "svg", "png"
	output string // output file path ("" = stdout for dot, derived for svg/png)
	labels bool   // include line text on edges
}

// validGraphFormats is the set of supported graph output formats.
var validGraphFormats = map[string]bool{"dot": true, "svg": true, "png": true}

// newGraphCmd creates the graph command, a debugging tool that renders the
// break planner's candidate DAG. Nodes are word boundaries, edges are the
// candidate lines that fit, and the chosen break chain is drawn bold.
func newGraphCmd(configPath *string) *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Render the break planner's DAG for a paragraph",
		Long: `Render the break planner's candidate DAG for the first paragraph of the
input. Break selection is a shortest-path search over word boundaries;
seeing the graph makes the planner's choices easy to follow. Overfull
candidates are omitted and the chosen chain is drawn bold.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validGraphFormats[opts.format] {
				return apperrors.New(apperrors.ErrCodeInvalidFormat, "invalid format: %s (must be 'dot', 'svg', or 'png')", opts.format)
			}
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runGraph(cmd.Context(), input, &opts, *configPath)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "target line width (default from config, else 60)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format: dot (default), svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout for dot, <input>.<format> otherwise)")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "label edges with their line text")

	return cmd
}

// runGraph plans breaks for the first input paragraph and writes the DAG.
func runGraph(ctx context.Context, input string, opts *graphOpts, configPath string) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	width := cfg.Width
	if opts.width != 0 {
		width = opts.width
	}
	if err := apperrors.ValidateWidth(width); err != nil {
		return err
	}

	text, err := readInput(input)
	if err != nil {
		return err
	}
	paragraphs := splitParagraphs(text)
	if len(paragraphs) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "input contains no words")
	}
	if len(paragraphs) > 1 {
		logger.Warnf("Input has %d paragraphs; graphing the first one only", len(paragraphs))
	}

	words := strings.Fields(paragraphs[0])
	plan := justify.NewPlan(words, width)
	logger.Debugf("Planned %d words at width %d, total badness %v", len(words), width, plan.Cost(0))

	dot := breakviz.ToDOT(plan, breakviz.Options{Labels: opts.labels})
	if opts.format == "dot" {
		return writeGraph(opts.output, []byte(dot), len(words))
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.format))
	spinner.Start()
	var data []byte
	switch opts.format {
	case "svg":
		data, err = breakviz.RenderSVG(dot)
	case "png":
		data, err = breakviz.RenderPNG(dot)
	}
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	output := opts.output
	if output == "" {
		if input == "-" {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "binary %s output needs --output when reading stdin", opts.format)
		}
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	return writeGraph(output, data, len(words))
}

// writeGraph writes the rendered graph to path, or stdout when path is empty.
func writeGraph(path string, data []byte, wordCount int) error {
	if path == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSuccess("Graphed %d word boundaries", wordCount+1)
	printFile(path)
	return nil
}
