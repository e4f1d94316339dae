package config

import "time"

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and registered with viper so that the
// config file and ROOTNAV_* environment variables can override any of them.
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Shell   ShellConfig   `mapstructure:"shell"`
	Log     LogConfig     `mapstructure:"log"`
}

type BackendConfig struct {
	Type  string      `mapstructure:"type"` // Default: "local"
	Root  string      `mapstructure:"root"` // Default: "."; overridden by the positional argument
	Minio MinioConfig `mapstructure:"minio"`
}

type MinioConfig struct {
	Endpoint  string        `mapstructure:"endpoint"`
	Bucket    string        `mapstructure:"bucket"`
	AccessKey string        `mapstructure:"access_key"`
	SecretKey string        `mapstructure:"secret_key"`
	UseSSL    bool          `mapstructure:"use_ssl"`   // Default: true
	Region    string        `mapstructure:"region"`    // Default: "" (server decides)
	CacheTTL  time.Duration `mapstructure:"cache_ttl"` // Default: 30s; 0 disables the metadata cache
}

type ShellConfig struct {
	Interface    string `mapstructure:"interface"`     // Default: "auto"
	MaxReadSize  int64  `mapstructure:"max_read_size"` // Default: 1 MiB, caps cat and hexdump
	ClassifySize int64  `mapstructure:"classify_size"` // Default: 1024, bytes sniffed by file
	HistorySize  int    `mapstructure:"history_size"`  // Default: 100
}

type LogConfig struct {
	Level string `mapstructure:"level"` // Default: "warn"
	File  string `mapstructure:"file"`  // Default: "" (stderr in line mode, discarded in the TUI)
}

const (
	BackendLocal = "local"
	BackendMinio = "minio"

	InterfaceAuto = "auto"
	InterfaceLine = "line"
	InterfaceTUI  = "tui"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			Type: BackendLocal,
			Root: ".",
			Minio: MinioConfig{
				UseSSL:   true,
				CacheTTL: 30 * time.Second,
			},
		},
		Shell: ShellConfig{
			Interface:    InterfaceAuto,
			MaxReadSize:  1024 * 1024,
			ClassifySize: 1024,
			HistorySize:  100,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
