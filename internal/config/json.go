package config

import (
	"encoding/json"
	"os"

	"github.com/imagezebra/imagezebra-go/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// parsed via the Duration wrapper so files can say "5s" instead of raw
// nanoseconds.
type JsonConfig struct {
	BaseURL         string   `json:"base_url"`
	ApplicationKey  string   `json:"application_key"`
	Username        string   `json:"username"`
	Password        string   `json:"password"`
	PollInterval    Duration `json:"poll_interval"`
	MaxPollAttempts *uint64  `json:"max_poll_attempts"`
	RequestTimeout  Duration `json:"request_timeout"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flags. Without either flag the function is a no-op. Fields the
// file does not set are left untouched, so a partial file only overrides
// what it names. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.ApplicationKey != "" {
		cfg.ApplicationKey = jc.ApplicationKey
	}
	if jc.Username != "" {
		cfg.Username = jc.Username
	}
	if jc.Password != "" {
		cfg.Password = jc.Password
	}
	if jc.PollInterval.Duration != 0 {
		cfg.PollInterval = jc.PollInterval.Duration
	}
	if jc.MaxPollAttempts != nil {
		cfg.MaxPollAttempts = *jc.MaxPollAttempts
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
