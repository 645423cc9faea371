package breakviz

import (
	"strings"
	"testing"

	"github.com/matzehuels/justify/pkg/justify"
)

func TestToDOT_Basic(t *testing.T) {
	p := justify.NewPlan(strings.Fields("aaa bb cc ddddd"), 6)

	dot := ToDOT(p, Options{})

	if !strings.Contains(dot, "digraph breaks") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	for _, node := range []string{"0 [", "4 ["} {
		if !strings.Contains(dot, node) {
			t.Errorf("ToDOT() output missing node %q", node)
		}
	}
	// Chosen chain 0→1→3→4 must be present and bold.
	for _, edge := range []string{"0 -> 1 [", "1 -> 3 [", "3 -> 4 ["} {
		idx := strings.Index(dot, edge)
		if idx < 0 {
			t.Fatalf("ToDOT() output missing chosen edge %q", edge)
		}
		line := dot[idx:]
		line = line[:strings.Index(line, "\n")]
		if !strings.Contains(line, "penwidth") {
			t.Errorf("chosen edge %q not emphasized: %s", edge, line)
		}
	}
}

func TestToDOT_OmitsOverfullEdges(t *testing.T) {
	// "aaa bb cc ddddd" packed is 15 chars, far over width 6, so the edge
	// spanning the whole paragraph must not appear.
	p := justify.NewPlan(strings.Fields("aaa bb cc ddddd"), 6)

	dot := ToDOT(p, Options{})

	if strings.Contains(dot, "0 -> 4 [") {
		t.Error("ToDOT() emitted an overfull candidate edge")
	}
}

func TestToDOT_Labels(t *testing.T) {
	p := justify.NewPlan(strings.Fields("bb cc"), 6)

	dot := ToDOT(p, Options{Labels: true})

	if !strings.Contains(dot, "bb cc") {
		t.Error("ToDOT() labeled output missing line text")
	}
}

func TestToDOT_OversizedChainKept(t *testing.T) {
	// The chosen chain must survive even when its edges are infinitely bad.
	p := justify.NewPlan(strings.Fields("aa incomprehensibilities bb"), 10)

	dot := ToDOT(p, Options{})

	if !strings.Contains(dot, "inf") {
		t.Error("ToDOT() dropped the chosen infinite-badness edge")
	}
}
