package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 4280,
			Host: "localhost",
		},
		Command: CommandConfig{
			Binary:        "open-notebook-cli",
			Args:          []string{},
			Timeout:       "120s",
			MaxConcurrent: 8,
		},
		Catalog: CatalogConfig{
			File: "",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/toolbridge",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
