package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration at path, overlays it on the defaults
	// for base, validates it, and returns the format-agnostic model.
	Load(ctx context.Context, path, base string) (*Model, error)
}
