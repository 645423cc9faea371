package breakviz

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/justify/pkg/justify"
)

// Options configures break-DAG rendering.
type Options struct {
	// Labels puts the line text on each edge in addition to its badness.
	// Readable for short paragraphs, noisy for long ones.
	Labels bool
}

// ToDOT converts a populated plan to Graphviz DOT. Nodes are word
// boundaries, edges are the candidate lines that physically fit, and the
// chosen break chain is drawn bold. The resulting string can be rendered
// with [RenderSVG] or [RenderPNG].
func ToDOT(p *justify.Plan, opts Options) string {
	n := p.Len()
	words := p.Words()

	chosen := make(map[[2]int]bool)
	bps := p.Breakpoints()
	for k := 0; k+1 < len(bps); k++ {
		chosen[[2]int{bps[k], bps[k+1]}] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph breaks {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for i := 0; i <= n; i++ {
		attrs := []string{fmt.Sprintf("label=%q", fmt.Sprintf("%d", i))}
		if i == 0 || i == n {
			attrs = append(attrs, "shape=doublecircle")
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			b := p.Badness(i, j)
			if math.IsInf(b, 1) && !chosen[[2]int{i, j}] {
				continue
			}
			fmt.Fprintf(&buf, "  %d -> %d [%s];\n", i, j, strings.Join(edgeAttrs(words, i, j, b, chosen[[2]int{i, j}], opts), ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeAttrs(words []string, i, j int, badness float64, chosen bool, opts Options) []string {
	label := fmt.Sprintf("%.0f", badness)
	if math.IsInf(badness, 1) {
		label = "inf"
	}
	if opts.Labels {
		// The real newline becomes a \n escape under %q, which DOT renders
		// as a line break.
		label = strings.Join(words[i:j], " ") + "\n" + label
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	if chosen {
		attrs = append(attrs, "penwidth=2.5", "color=black")
	} else {
		attrs = append(attrs, "color=grey", "fontcolor=grey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
