package config

// SystemYAMLConfig groups system-wide infrastructure settings from tarsy.yaml.
type SystemYAMLConfig struct {
	AllowedWSOrigins []string         `yaml:"allowed_ws_origins"`
	Retention        *RetentionConfig `yaml:"retention"`
}
