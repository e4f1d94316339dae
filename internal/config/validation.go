package config

import (
	"fmt"
	"slices"
)

var logLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	// Backend validation
	switch c.Backend.Type {
	case BackendLocal:
	case BackendMinio:
		if c.Backend.Minio.Endpoint == "" {
			errs = append(errs, "backend.minio.endpoint is required for the minio backend")
		}
		if c.Backend.Minio.Bucket == "" {
			errs = append(errs, "backend.minio.bucket is required for the minio backend")
		}
	default:
		errs = append(errs, fmt.Sprintf("backend.type must be %q or %q, got %q", BackendLocal, BackendMinio, c.Backend.Type))
	}
	if c.Backend.Minio.CacheTTL < 0 {
		errs = append(errs, "backend.minio.cache_ttl must be >= 0")
	}

	// Shell validation
	switch c.Shell.Interface {
	case InterfaceAuto, InterfaceLine, InterfaceTUI:
	default:
		errs = append(errs, fmt.Sprintf("shell.interface must be one of auto, line, tui, got %q", c.Shell.Interface))
	}
	if c.Shell.MaxReadSize < 1 {
		errs = append(errs, "shell.max_read_size must be >= 1")
	}
	if c.Shell.ClassifySize < 1 {
		errs = append(errs, "shell.classify_size must be >= 1")
	}
	if c.Shell.HistorySize < 0 {
		errs = append(errs, "shell.history_size must be >= 0")
	}

	// Log validation
	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Sprintf("log.level must be one of %v, got %q", logLevels, c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
