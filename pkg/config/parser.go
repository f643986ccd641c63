package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

var defaultSystemCfg = SystemCfg{
	Cache: cacheCfg{
		Enabled:    true,
		Debug:      false,
		DefaultTTL: 60,
	},
	Logging: loggingCfg{
		Console: true,
	},
}

// LoadConfig reads path and layers it over the defaults. A missing file is
// not an error; the defaults are returned as-is.
func LoadConfig(path string) (*SystemCfg, error) {
	config := defaultSystemCfg

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &config, nil
	}

	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}

	return &config, nil
}
