// Package stage provides the central glue between stage names used on the
// command line and the Go code that drives the corresponding external tool.
//
// The Registry stores every stage definition registered at startup and is
// validated before any stage runs, so a mismatch between the pipeline's
// canonical stage list and the registered code fails loudly instead of
// surfacing mid-run.
package stage
