package config

import (
	"encoding/json"
	"os"
	"time"

	"storyline/internal/flagx"
	"storyline/internal/timex"
)

// JsonConfig is the DTO used exclusively for JSON unmarshalling. It uses
// timex.Duration so the file can spell timeouts either as strings like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionDBPath  string         `json:"session_db_path"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. When no file is given it is a no-op; read or decode
// failures panic, since a named but broken config file is a startup error.
// Only fields present in the file override existing values.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
}
