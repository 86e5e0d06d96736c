package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Load reads a Config from the YAML file at path, applies AINGLE_* environment
// overrides (AINGLE_NODE_URL, AINGLE_WS_URL, AINGLE_TIMEOUT, AINGLE_DEBUG),
// and validates the result. The timeout key is expressed in seconds.
//
// An empty path skips file loading and builds the configuration from the
// environment and defaults alone.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AINGLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		NodeURL: v.GetString("node_url"),
		WSURL:   v.GetString("ws_url"),
		Debug:   v.GetBool("debug"),
	}
	if secs := v.GetFloat64("timeout"); secs > 0 {
		cfg.Timeout = time.Duration(secs * float64(time.Second))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
