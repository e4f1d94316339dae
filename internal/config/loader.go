package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "rootnav"
	// ConfigName is the config file name without extension (json or yaml)
	ConfigName = "config"
	// EnvPrefix prefixes environment overrides, e.g. ROOTNAV_SHELL_MAX_READ_SIZE
	EnvPrefix = "ROOTNAV"
)

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs      afero.Fs
	homeDir func() (string, error)
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: afero.NewOsFs(), homeDir: homedir.Dir}
}

// NewLoaderWithFS creates a Loader with a custom filesystem and home directory (for testing)
func NewLoaderWithFS(fs afero.Fs, home string) *Loader {
	return &Loader{fs: fs, homeDir: func() (string, error) { return home, nil }}
}

// Load reads configuration from ~/.config/rootnav/config.{json,yaml}, then
// applies ROOTNAV_* environment overrides on top of the defaults.
// A missing file or home directory falls back to defaults.
// Returns an error for malformed files or failed validation.
func (l *Loader) Load() (*Config, error) {
	v := viper.New()
	v.SetFs(l.fs)
	v.SetConfigName(ConfigName)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if home, err := l.homeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", ConfigDir))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}

// setDefaults registers every key, which also lets AutomaticEnv find them on Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("backend.type", d.Backend.Type)
	v.SetDefault("backend.root", d.Backend.Root)
	v.SetDefault("backend.minio.endpoint", d.Backend.Minio.Endpoint)
	v.SetDefault("backend.minio.bucket", d.Backend.Minio.Bucket)
	v.SetDefault("backend.minio.access_key", d.Backend.Minio.AccessKey)
	v.SetDefault("backend.minio.secret_key", d.Backend.Minio.SecretKey)
	v.SetDefault("backend.minio.use_ssl", d.Backend.Minio.UseSSL)
	v.SetDefault("backend.minio.region", d.Backend.Minio.Region)
	v.SetDefault("backend.minio.cache_ttl", d.Backend.Minio.CacheTTL)

	v.SetDefault("shell.interface", d.Shell.Interface)
	v.SetDefault("shell.max_read_size", d.Shell.MaxReadSize)
	v.SetDefault("shell.classify_size", d.Shell.ClassifySize)
	v.SetDefault("shell.history_size", d.Shell.HistorySize)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}
