package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Browser: BrowserConfig{
			DataDir:        "",
			DefaultProfile: "Default",
		},
		History: HistoryConfig{
			ListLimit:   100,
			SearchLimit: 5000,
		},
		Search: SearchConfig{
			ResultLimit: 50,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
