// Package pkg provides the core libraries for justify.
//
// # Overview
//
// Justify formats paragraphs as fully justified fixed-width text using the
// Knuth-Plass dynamic program. The pkg directory is organized into four areas:
//
//  1. [justify] - Break planning and padded rendering (the core algorithm)
//  2. [breakviz] - DOT/SVG/PNG visualization of the break planner's DAG
//  3. [errors] - Structured error codes shared by the library and the CLI
//  4. [buildinfo] - Version metadata injected at build time
//
// # Architecture
//
// The typical data flow through justify:
//
//	Paragraph text
//	         ↓
//	    [justify] tokenize into words
//	         ↓
//	    [justify] plan break positions (minimize total badness)
//	         ↓
//	    [justify] pad each line to the target width
//	         ↓
//	    Justified text output
//
// # Quick Start
//
// Justify a paragraph at 60 characters:
//
//	import "github.com/matzehuels/justify/pkg/justify"
//
//	out, err := justify.Format("No, when I go to sea, ...", 60)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
package pkg
