// Package config handles scaffolding configuration loading and management.
package config

// Config holds all scaffolding settings.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// ProjectConfig describes where and what to scaffold.
type ProjectConfig struct {
	Root  string `yaml:"root"`  // Directory the tree is materialized under
	Title string `yaml:"title"` // Page title written into index.html seeds
}

// AssetsConfig controls placeholder media generation.
type AssetsConfig struct {
	// Colors overrides placeholder texture colors, keyed by path relative
	// to the project root. Values are "#rrggbb" or "r,g,b".
	Colors map[string]string `yaml:"colors,omitempty"`
	Models bool              `yaml:"models"` // Write furniture GLB placeholders
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Root:  ".",
			Title: "Interior Designer 3D",
		},
		Assets: AssetsConfig{
			Models: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
