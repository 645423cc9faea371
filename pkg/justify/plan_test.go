package justify

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestNewPlan_OptimalBreaks(t *testing.T) {
	// Greedy would pack "aaa bb" onto the first line and strand "cc" alone
	// (total badness 64); the optimal plan pays 27 for a short first line to
	// keep the middle line tight (total 28).
	words := strings.Fields("aaa bb cc ddddd")
	p := NewPlan(words, 6)

	if got, want := p.Breakpoints(), []int{0, 1, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("Breakpoints() = %v, want %v", got, want)
	}
	if got := p.Cost(0); got != 28 {
		t.Errorf("Cost(0) = %v, want 28", got)
	}
}

func TestNewPlan_LastLineExempt(t *testing.T) {
	words := strings.Fields("brown fox jumps")
	p := NewPlan(words, 20)

	if got, want := p.Breakpoints(), []int{0, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Breakpoints() = %v, want %v", got, want)
	}
	if got := p.Cost(0); got != 0 {
		t.Errorf("Cost(0) = %v, want 0 (last line contributes no badness)", got)
	}
}

func TestNewPlan_ChainReachesEnd(t *testing.T) {
	words := strings.Fields(mobyParagraph)
	for _, width := range []int{20, 40, 60, 80} {
		p := NewPlan(words, width)
		bps := p.Breakpoints()

		if bps[0] != 0 {
			t.Errorf("width %d: chain starts at %d, want 0", width, bps[0])
		}
		if last := bps[len(bps)-1]; last != len(words) {
			t.Errorf("width %d: chain ends at %d, want %d", width, last, len(words))
		}
		for k := 1; k < len(bps); k++ {
			if bps[k] <= bps[k-1] {
				t.Fatalf("width %d: chain not strictly increasing at %d: %v", width, k, bps)
			}
		}
	}
}

func TestNewPlan_OversizedWordAlone(t *testing.T) {
	words := strings.Fields("aa bb incomprehensibilities cc")
	p := NewPlan(words, 10)

	// The oversized word must sit alone on its own line; the words around it
	// still form lines and the chain still terminates.
	if got, want := p.Breakpoints(), []int{0, 2, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("Breakpoints() = %v, want %v", got, want)
	}
	if !math.IsInf(p.Cost(0), 1) {
		t.Errorf("Cost(0) = %v, want +Inf", p.Cost(0))
	}
}

func TestNewPlan_OnlyOversizedWord(t *testing.T) {
	p := NewPlan([]string{"incomprehensibilities"}, 10)

	if got, want := p.Breakpoints(), []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Breakpoints() = %v, want %v", got, want)
	}
}

func TestBadness(t *testing.T) {
	p := NewPlan(strings.Fields("aaa bb cc"), 10)

	tests := []struct {
		name string
		i, j int
		want float64
	}{
		{"near fit", 0, 3, 1}, // "aaa bb cc" is 9 chars, slack 1
		{"single word", 0, 1, 343},
		{"empty span", 1, 1, 1000},
		{"short word", 2, 3, 512},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Badness(tt.i, tt.j); got != tt.want {
				t.Errorf("Badness(%d, %d) = %v, want %v", tt.i, tt.j, got, tt.want)
			}
		})
	}
}

func TestBadness_Overfull(t *testing.T) {
	p := NewPlan(strings.Fields("aaa bb cc"), 5)
	if got := p.Badness(0, 3); !math.IsInf(got, 1) {
		t.Errorf("Badness(0, 3) = %v, want +Inf", got)
	}
}
