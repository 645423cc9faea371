package justify

import "math"

// Plan holds the fully populated break tables for one paragraph at one
// width: the minimum achievable badness for every suffix of the word
// sequence, and the break position that achieves it. A Plan is built once
// by [NewPlan], consumed by [Plan.Lines] or [Plan.Breakpoints], and then
// discarded; it is never reused across paragraphs.
type Plan struct {
	words   []string
	width   int
	offsets []int // offsets[i] = total length of words[0:i], for O(1) span measurement

	cost []float64 // cost[i] = minimum total badness for breaking words[i:] into lines
	next []int     // next[i] = end of the best line starting at word i
}

// NewPlan computes optimal break positions for words at the given width.
//
// The memoized recurrence over (start, end) spans is filled bottom-up from
// the end of the paragraph toward the start, so the fill is iterative and
// array-indexed rather than recursive. For each start position the candidate
// line ends are scanned from the paragraph end backward and the first strict
// minimum wins, which prefers the longest line among equally bad choices.
//
// A suffix that fits on a single line is the last line of the paragraph and
// contributes no badness. When every candidate for a position is infinitely
// bad (some word is wider than the line), the line is closed at the last end
// that still fits, or after the oversized word itself, which places that
// word alone on an overflowing line and lets planning resume behind it.
func NewPlan(words []string, width int) *Plan {
	n := len(words)
	p := &Plan{
		words:   words,
		width:   width,
		offsets: make([]int, n+1),
		cost:    make([]float64, n+1),
		next:    make([]int, n+1),
	}
	for i, w := range words {
		p.offsets[i+1] = p.offsets[i] + len(w)
	}

	p.next[n] = n
	for i := n - 1; i >= 0; i-- {
		if p.packedLen(i, n) <= width {
			// The whole suffix fits: last line, exempt from badness.
			p.cost[i] = 0
			p.next[i] = n
			continue
		}

		best := math.Inf(1)
		bestEnd := -1
		for end := n; end > i; end-- {
			if total := p.Badness(i, end) + p.cost[end]; total < best {
				best = total
				bestEnd = end
			}
		}
		if bestEnd < 0 {
			bestEnd = i + 1
			for end := n; end > i+1; end-- {
				if !math.IsInf(p.Badness(i, end), 1) {
					bestEnd = end
					break
				}
			}
		}
		p.cost[i] = best
		p.next[i] = bestEnd
	}
	return p
}

// Badness returns the cost of setting words[i:j] as one line of the plan's
// width: +Inf when the packed form does not fit, otherwise the cube of the
// unused slack. The cubic shape strongly favors evenly filled lines over one
// very loose line.
func (p *Plan) Badness(i, j int) float64 {
	l := p.packedLen(i, j)
	if l > p.width {
		return math.Inf(1)
	}
	s := float64(p.width - l)
	return s * s * s
}

// packedLen is the length of words[i:j] joined with single spaces.
func (p *Plan) packedLen(i, j int) int {
	if j <= i {
		return 0
	}
	return p.offsets[j] - p.offsets[i] + (j - i - 1)
}

// Breakpoints returns the chain of word boundaries from 0 to the word count,
// one entry per line plus the terminating boundary. Adjacent entries (a, b)
// delimit the line words[a:b].
func (p *Plan) Breakpoints() []int {
	n := len(p.words)
	bps := []int{0}
	for i := 0; i < n; {
		i = p.next[i]
		bps = append(bps, i)
	}
	return bps
}

// Lines partitions the words along the planned break chain.
func (p *Plan) Lines() [][]string {
	bps := p.Breakpoints()
	lines := make([][]string, 0, len(bps)-1)
	for k := 0; k+1 < len(bps); k++ {
		lines = append(lines, p.words[bps[k]:bps[k+1]])
	}
	return lines
}

// Cost returns the minimum total badness for breaking words[i:] into lines.
// Cost(0) is the badness of the whole plan. The value is +Inf when the
// suffix contains a word wider than the plan's width.
func (p *Plan) Cost(i int) float64 { return p.cost[i] }

// Words returns the planned word sequence.
func (p *Plan) Words() []string { return p.words }

// Width returns the target line width.
func (p *Plan) Width() int { return p.width }

// Len returns the number of words in the plan.
func (p *Plan) Len() int { return len(p.words) }
