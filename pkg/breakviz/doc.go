// Package breakviz renders the break planner's candidate DAG as Graphviz
// DOT, with optional SVG/PNG rasterization.
//
// Break selection in [justify] is a shortest-path search: nodes are the word
// boundaries 0..N, an edge i→j carries the badness of setting words[i:j] as
// one line, and edges terminating at N are free. Seeing that graph makes the
// planner's choices much easier to reason about, so this package exists as a
// debugging and teaching aid for the `justify graph` command.
//
// Overfull (infinite-badness) candidates are omitted; the chosen break chain
// is drawn bold. [ToDOT] emits plain DOT, [RenderSVG] rasterizes it with the
// embedded Graphviz runtime.
//
// [justify]: github.com/matzehuels/justify/pkg/justify
package breakviz
