// Package gtool models the command-line interface of the external science
// tools: an insertion-ordered parameter set rendered as key=value arguments,
// and a runner that invokes one tool as a blocking subprocess.
//
// The tools themselves are opaque. Nothing in this package interprets their
// inputs or outputs beyond exit status and captured streams.
package gtool
