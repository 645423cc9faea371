// Package cli implements the justify command-line interface.
//
// This package provides commands for justifying paragraphs of text at a
// fixed width, previewing the result interactively, and visualizing the
// break planner's decision DAG. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - format: Justify a text file (or stdin) to a fixed width
//   - preview: Interactive terminal preview with live width adjustment
//   - graph: Render the break planner's candidate DAG as DOT/SVG/PNG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so helpers never need global state.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/justify/pkg/buildinfo"
)

const (
	// appName is the application name used for directories and display.
	appName = "justify"

	// defaultWidth is the line width used when neither a flag nor a config
	// file provides one. Sixty characters is the width the original demo
	// paragraph was typeset at and reads well in a terminal.
	defaultWidth = 60
)

// Execute runs the justify CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (format,
// preview, graph, completion), configures logging based on the --verbose
// flag, and executes the command tree against ctx so an interrupt cancels
// in-flight work.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "Justify formats paragraphs as fixed-width justified text",
		Long: `Justify breaks paragraphs into fully justified fixed-width lines using
the Knuth-Plass dynamic program: break positions minimize the total
"badness" of the paragraph instead of being chosen line by line, and
padding is distributed deterministically so the same input always
produces the same output. The last line of each paragraph is left
unjustified.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/justify/config.toml)")

	root.AddCommand(newFormatCmd(&configPath))
	root.AddCommand(newPreviewCmd(&configPath))
	root.AddCommand(newGraphCmd(&configPath))
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
