package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/eministar/nebidash/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout is
// given in seconds so the file stays hand-editable.
type JsonConfig struct {
	ServerBaseURL         string `json:"server_base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	DownloadDir           string `json:"download_dir"`
	SessionFile           string `json:"session_file"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// No flag, no file, no changes. Only fields present in the file override the
// current values.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	return nil
}
