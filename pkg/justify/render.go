package justify

import (
	"hash/fnv"
	"math/rand"
	"strings"
)

// pack joins words as tightly as possible: single spaces, no padding. It is
// both the rendering of the unjustified last line and the measurement
// primitive behind badness.
func pack(words []string) string {
	return strings.Join(words, " ")
}

// expand renders words as a line of exactly width characters by distributing
// the slack over the inter-word gaps. A single word is returned unpadded
// since there is no gap to absorb padding; callers get an under- or
// over-width line in that case.
//
// The slack is split as evenly as possible (the first remainder gaps take
// one extra space), then the gap-size sequence is shuffled with a generator
// seeded from the line's own text. The spacing pattern looks irregular but
// re-rendering the same words always yields the same bytes.
func expand(words []string, width int) string {
	if len(words) == 1 {
		return words[0]
	}

	unspaced := strings.Join(words, "")
	gaps := make([]int, len(words)-1)
	slack := width - len(unspaced)
	q, r := slack/len(gaps), slack%len(gaps)
	for i := range gaps {
		gaps[i] = q
		if i < r {
			gaps[i]++
		}
	}

	rng := rand.New(rand.NewSource(gapSeed(unspaced)))
	rng.Shuffle(len(gaps), func(a, b int) {
		gaps[a], gaps[b] = gaps[b], gaps[a]
	})

	var b strings.Builder
	b.Grow(width)
	for i, w := range words {
		b.WriteString(w)
		if i < len(gaps) {
			for n := 0; n < gaps[i]; n++ {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

// gapSeed derives the shuffle seed from the concatenated line text, so the
// padding pattern is a pure function of the words on the line.
func gapSeed(unspaced string) int64 {
	h := fnv.New64a()
	h.Write([]byte(unspaced))
	return int64(h.Sum64())
}
