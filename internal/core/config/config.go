package config

import (
	"time"

	"github.com/locarlabs/datajud/internal/core/classify"
	"github.com/locarlabs/datajud/internal/infra/datajud"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	API        APIConfig           `yaml:"api"`
	Search     SearchConfig        `yaml:"search"`
	Logging    LoggingConfig       `yaml:"logging"`
	Vocabulary classify.Vocabulary `yaml:"vocabulary"`
}

// APIConfig holds upstream DataJud settings. The key is deliberately not
// defaulted: it comes from the config file or the DATAJUD_API_KEY
// environment variable, and a live run without one is a fatal error.
type APIConfig struct {
	BaseURL string              `yaml:"base_url"`
	Key     string              `yaml:"key"`
	Timeout time.Duration       `yaml:"timeout"`
	Retry   datajud.RetryConfig `yaml:"retry"`
}

// SearchConfig holds pagination settings.
type SearchConfig struct {
	PageSize int `yaml:"page_size"`
	MaxPages int `yaml:"max_pages"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
