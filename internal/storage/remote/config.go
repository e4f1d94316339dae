package remote

import (
	"fmt"
	"time"
)

// Config holds the connection settings for an S3 compatible object store.
type Config struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string

	// Prefix roots the tree at a key prefix inside the bucket.
	Prefix string

	// CacheTTL bounds how long metadata is reused. 0 disables caching.
	CacheTTL time.Duration
}

func (c *Config) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if c.AccessKey == "" {
		return fmt.Errorf("access key is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is required")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache ttl must not be negative")
	}
	return nil
}
