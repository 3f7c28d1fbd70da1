// Package config defines the format-agnostic configuration model for a
// data-preparation run: the common settings shared by every stage, the
// analysis region selection, and the external tool-suite settings.
//
// The config.Model is the single source of truth for the stage and pipeline
// packages. Concrete loaders, such as the HCL one, live in separate packages
// behind the Loader interface.
package config
