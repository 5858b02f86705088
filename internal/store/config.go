package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const configFileName = "config.json"

// Config is the per-device configuration stored in the data dir. Backend
// credentials may instead come from the environment (RECAP_* variables take
// precedence over the file).
type Config struct {
	// Backend is the remote photo backend. All four fields must be set for
	// remote sync to be considered configured.
	Backend BackendConfig `json:"backend,omitempty"`

	// UploadBaseURL is the externally reachable base URL of the upload
	// server, used to build the QR link (e.g. "http://192.168.1.20:8372").
	UploadBaseURL string `json:"uploadBaseUrl,omitempty"`
}

type BackendConfig struct {
	URL    string `json:"url,omitempty"`
	APIKey string `json:"apiKey,omitempty"`
	Bucket string `json:"bucket,omitempty"`
	Table  string `json:"table,omitempty"`
}

// Configured reports whether the backend has everything it needs. A partial
// config counts as unconfigured: the system then runs in demo mode rather
// than failing on first use.
func (b BackendConfig) Configured() bool {
	return b.URL != "" && b.APIKey != "" && b.Bucket != "" && b.Table != ""
}

// LoadConfig reads the config file (missing file yields a zero config) and
// applies environment overrides.
func (s Store) LoadConfig() (Config, error) {
	var cfg Config
	b, err := os.ReadFile(filepath.Join(s.Dir, configFileName))
	switch {
	case os.IsNotExist(err):
		// Fine: env-only or demo mode.
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg.Backend.URL, "RECAP_BACKEND_URL")
	applyEnv(&cfg.Backend.APIKey, "RECAP_BACKEND_KEY")
	applyEnv(&cfg.Backend.Bucket, "RECAP_BACKEND_BUCKET")
	applyEnv(&cfg.Backend.Table, "RECAP_BACKEND_TABLE")
	applyEnv(&cfg.UploadBaseURL, "RECAP_UPLOAD_BASE_URL")

	if cfg.Backend.Bucket == "" && cfg.Backend.URL != "" {
		cfg.Backend.Bucket = "memories"
	}
	if cfg.Backend.Table == "" && cfg.Backend.URL != "" {
		cfg.Backend.Table = "memories"
	}
	return cfg, nil
}

// SaveConfig writes the config file (without env overrides baked in; callers
// pass exactly what should persist).
func (s Store) SaveConfig(cfg Config) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	path := filepath.Join(s.Dir, configFileName)
	if err := os.WriteFile(path, append(b, '\n'), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func applyEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
