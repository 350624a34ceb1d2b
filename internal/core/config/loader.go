package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/locarlabs/datajud/internal/core/classify"
	"github.com/locarlabs/datajud/internal/infra/datajud"
)

// Load reads configuration from a YAML file. A missing file is not an
// error: the defaults are enough to run on flags and environment alone.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = datajud.DefaultBaseURL
	}
	if cfg.API.Key == "" {
		cfg.API.Key = os.Getenv("DATAJUD_API_KEY")
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 50 * time.Second
	}
	if cfg.API.Retry.MaxAttempts == 0 {
		cfg.API.Retry.MaxAttempts = datajud.DefaultRetryConfig.MaxAttempts
	}
	if cfg.API.Retry.InitialDelay == 0 {
		cfg.API.Retry.InitialDelay = datajud.DefaultRetryConfig.InitialDelay
	}
	if cfg.API.Retry.MaxDelay == 0 {
		cfg.API.Retry.MaxDelay = datajud.DefaultRetryConfig.MaxDelay
	}
	if cfg.API.Retry.BackoffMultiple == 0 {
		cfg.API.Retry.BackoffMultiple = datajud.DefaultRetryConfig.BackoffMultiple
	}

	if cfg.Search.PageSize == 0 {
		cfg.Search.PageSize = 100
	}
	if cfg.Search.MaxPages == 0 {
		cfg.Search.MaxPages = 25
	}

	stock := classify.DefaultVocabulary()
	if len(cfg.Vocabulary.Deadline) == 0 {
		cfg.Vocabulary.Deadline = stock.Deadline
	}
	if len(cfg.Vocabulary.Decision) == 0 {
		cfg.Vocabulary.Decision = stock.Decision
	}
	if len(cfg.Vocabulary.Execution) == 0 {
		cfg.Vocabulary.Execution = stock.Execution
	}
}
