package justify

import (
	"errors"
	"strings"
)

// ErrNonPositiveWidth is returned by [Format], [FormatGreedy], and
// [Formatter.Format] when the target width is zero or negative.
var ErrNonPositiveWidth = errors.New("width must be positive")

// Breaker partitions a word sequence into consecutive lines for a target
// width. Implementations decide only where lines break; rendering (packing
// and padding) is shared by all strategies.
type Breaker interface {
	Break(words []string, width int) [][]string
}

// Optimal breaks lines by minimizing total badness over the whole paragraph
// with the Knuth-Plass dynamic program. It is the default strategy.
type Optimal struct{}

// Break plans breaks for words via [NewPlan] and returns the resulting lines.
func (Optimal) Break(words []string, width int) [][]string {
	return NewPlan(words, width).Lines()
}

// Formatter renders paragraphs as justified text at a fixed width using a
// pluggable break strategy. The zero Breaker means [Optimal].
type Formatter struct {
	Width   int
	Breaker Breaker
}

// Format splits text into whitespace-separated words, breaks them into lines
// with the configured strategy, and returns the newline-joined result. Every
// line except the last is padded to exactly Width characters; the last line
// is left packed. Zero words format to the empty string.
func (f Formatter) Format(text string) (string, error) {
	if f.Width <= 0 {
		return "", ErrNonPositiveWidth
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return "", nil
	}

	br := f.Breaker
	if br == nil {
		br = Optimal{}
	}
	lines := br.Break(words, f.Width)

	var b strings.Builder
	for k, line := range lines {
		if k > 0 {
			b.WriteByte('\n')
		}
		if k == len(lines)-1 {
			b.WriteString(pack(line))
		} else {
			b.WriteString(expand(line, f.Width))
		}
	}
	return b.String(), nil
}

// Format renders text as fully justified lines of the given width using
// optimal (Knuth-Plass) break selection.
func Format(text string, width int) (string, error) {
	return Formatter{Width: width}.Format(text)
}

// FormatGreedy renders text as justified lines of the given width using the
// greedy first-fit strategy. Output lines obey the same width contract as
// [Format], but the break positions are generally worse.
func FormatGreedy(text string, width int) (string, error) {
	return Formatter{Width: width, Breaker: Greedy{}}.Format(text)
}
