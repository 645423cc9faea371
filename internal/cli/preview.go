package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/justify/pkg/errors"
	"github.com/matzehuels/justify/pkg/justify"
)

// Preview styles
var (
	previewRulerStyle = lipgloss.NewStyle().Foreground(colorDim)
	previewTextStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	previewDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// Width bounds for the interactive preview. The lower bound keeps the output
// readable; the upper bound is the validation limit.
const (
	previewMinWidth = 5
	previewMaxWidth = apperrors.MaxWidth
)

// newPreviewCmd creates the preview command, an interactive terminal view of
// the justified text where the width can be adjusted live.
func newPreviewCmd(configPath *string) *cobra.Command {
	var opts formatOpts

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Interactively preview justified text",
		Long: `Preview justified text in the terminal with live controls: adjust the
width with the arrow keys and switch between the optimal and greedy
break strategies to compare their output side by side in time.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runPreview(cmd.Context(), input, &opts, *configPath)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "initial line width (default from config, else 60)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "initial break strategy: optimal (default), greedy")

	return cmd
}

// runPreview loads the input and runs the bubbletea preview loop.
func runPreview(ctx context.Context, input string, opts *formatOpts, configPath string) error {
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
	if len(paragraphs) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "input contains no words")
	}

	model := newPreviewModel(paragraphs, width, algorithm)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// =============================================================================
// PreviewModel - Live justification preview
// =============================================================================

// PreviewModel is the bubbletea model for the interactive preview.
type PreviewModel struct {
	Paragraphs []string
	Width      int
	Algorithm  string
	Height     int
	Offset     int

	rendered []string // justified paragraphs at the current width/algorithm
	err      error
}

// newPreviewModel creates a preview model with the justified text pre-rendered.
func newPreviewModel(paragraphs []string, width int, algorithm string) PreviewModel {
	m := PreviewModel{
		Paragraphs: paragraphs,
		Width:      width,
		Algorithm:  algorithm,
		Height:     24,
	}
	m.render()
	return m
}

// render re-justifies every paragraph at the model's current settings.
func (m *PreviewModel) render() {
	formatter := justify.Formatter{Width: m.Width, Breaker: breakerFor(m.Algorithm)}
	rendered := make([]string, len(m.Paragraphs))
	for i, p := range m.Paragraphs {
		out, err := formatter.Format(p)
		if err != nil {
			m.err = err
			return
		}
		rendered[i] = out
	}
	m.rendered = rendered
	m.err = nil
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.Width > previewMinWidth {
				m.Width--
				m.render()
			}
		case "right", "l":
			if m.Width < previewMaxWidth {
				m.Width++
				m.render()
			}
		case "a":
			if m.Algorithm == apperrors.AlgorithmOptimal {
				m.Algorithm = apperrors.AlgorithmGreedy
			} else {
				m.Algorithm = apperrors.AlgorithmOptimal
			}
			m.render()
		case "up", "k":
			if m.Offset > 0 {
				m.Offset--
			}
		case "down", "j":
			m.Offset++
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Justify Preview"))
	b.WriteString("  ")
	b.WriteString(previewDimStyle.Render(fmt.Sprintf("width %d · %s", m.Width, m.Algorithm)))
	b.WriteString("\n")
	b.WriteString(previewDimStyle.Render("←/→ width  a algorithm  ↑/↓ scroll  q quit"))
	b.WriteString("\n\n")

	b.WriteString(previewRulerStyle.Render(ruler(m.Width)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		return b.String()
	}

	lines := strings.Split(strings.Join(m.rendered, "\n\n"), "\n")
	visible := m.Height - 6
	if visible < 1 {
		visible = 1
	}
	offset := m.Offset
	if offset > len(lines)-1 {
		offset = len(lines) - 1
	}
	end := offset + visible
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[offset:end] {
		b.WriteString(previewTextStyle.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// ruler builds a column ruler like "....+....1....+....2" cut to width.
func ruler(width int) string {
	var b strings.Builder
	for i := 1; b.Len() < width; i++ {
		b.WriteString("....+....")
		b.WriteString(fmt.Sprintf("%d", i%10))
	}
	return b.String()[:width]
}
