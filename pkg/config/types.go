package config

type cacheCfg struct {
	Enabled    bool `toml:"enabled"`
	Debug      bool `toml:"debug"`
	DefaultTTL int  `toml:"defaultTTL"` // seconds, 0 = entries never expire
}

type loggingCfg struct {
	Console bool   `toml:"console"`
	File    string `toml:"file"`
}

type SystemCfg struct {
	Cache   cacheCfg   `toml:"cache"`
	Logging loggingCfg `toml:"logging"`
}
