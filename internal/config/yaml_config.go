package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the optional config.yaml file.
// Values set here override the matching environment defaults.
type YAMLConfig struct {
	Site SiteConfig `yaml:"site"`
	CORS CORSConfig `yaml:"cors"`
}

// SiteConfig holds branding used in emails and pages.
type SiteConfig struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
}

// CORSConfig lists browser origins allowed to call the JSON endpoints.
type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads YAML configuration from path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Apply overlays non-empty YAML values onto c.
func (y *YAMLConfig) Apply(c *Config) {
	if y == nil {
		return
	}
	if y.Site.Title != "" {
		c.SiteTitle = y.Site.Title
	}
	if y.Site.Tagline != "" {
		c.SiteTagline = y.Site.Tagline
	}
	if len(y.CORS.Origins) > 0 {
		c.CORSOrigins = strings.Join(y.CORS.Origins, ",")
	}
}
