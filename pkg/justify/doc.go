// Package justify formats paragraphs as fixed-width, fully justified text
// using the dynamic-programming formulation of the Knuth-Plass line-breaking
// algorithm.
//
// # Overview
//
// The package splits a paragraph into whitespace-separated words, chooses
// line breaks that minimize total "badness" (a cubic penalty on the unused
// slack of each line), and renders every line except the last to exactly the
// target width by distributing padding spaces into the gaps between words.
// The last line of a paragraph is conventionally left unjustified and is
// exempt from the badness total.
//
// # Basic Usage
//
// Format a paragraph with [Format], or with [FormatGreedy] for the simpler
// first-fit strategy:
//
//	out, err := justify.Format(text, 60)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Callers that want to choose the strategy explicitly compose a [Formatter]
// with a [Breaker]:
//
//	f := justify.Formatter{Width: 60, Breaker: justify.Greedy{}}
//	out, err := f.Format(text)
//
// # Break Selection
//
// Break selection is a shortest-path problem over a DAG: nodes are the word
// boundaries 0..N, an edge i→j carries the badness of setting words[i:j] as
// one line, and the edge that terminates exactly at N is free (the last-line
// exemption). [NewPlan] fills the per-suffix cost and break-point tables
// bottom-up from the end of the paragraph; [Plan.Breakpoints] exposes the
// resulting chain for inspection and visualization.
//
// # Padding Distribution
//
// Slack is spread over the inter-word gaps as evenly as possible, then the
// gap-size sequence is permuted by a Fisher-Yates shuffle seeded from the
// line's own text. The spacing pattern therefore varies line to line without
// repeating ladders of identical gaps, while formatting the same input
// always produces byte-identical output.
//
// # Degenerate Input
//
// Empty input (zero words) formats to the empty string. A single word longer
// than the width is placed alone on its own line and rendered unpadded, so
// the line overflows rather than failing; see [Plan] for the exact policy.
//
// # Concurrency
//
// Formatting is synchronous and self-contained. Every call allocates its own
// tables and shares no state with other calls, so distinct calls may run
// concurrently from multiple goroutines.
package justify
