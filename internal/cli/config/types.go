// Package config loads the anatomy CLI configuration.
//
// Values are layered, lowest to highest: built-in defaults, the YAML config
// file, ANATOMY_ environment variables and explicitly set command-line flags.
package config

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Default configuration values.
const (
	DefaultPort      = 8080
	DefaultOutputDir = "public"
	DefaultLogFormat = LogFormatText
)

// Config holds all CLI configuration options.
type Config struct {
	Verbose   bool        `koanf:"verbose"`
	LogFormat string      `koanf:"log_format"`
	Site      SiteConfig  `koanf:"site"`
	UI        UIConfig    `koanf:"ui"`
	Build     BuildConfig `koanf:"build"`

	// ConfigFile is the config file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// SiteConfig overrides the document metadata. Empty values keep the page
// defaults.
type SiteConfig struct {
	Title       string `koanf:"title"`
	Description string `koanf:"description"`
}

// UIConfig holds configuration for the HTTP server.
type UIConfig struct {
	Port     int    `koanf:"port"`
	Dev      bool   `koanf:"dev"`
	DocsURL  string `koanf:"docs_url"`
	WatchDir string `koanf:"watch_dir"`
}

// BuildConfig holds configuration for the static build.
type BuildConfig struct {
	Output string `koanf:"output"`
	Minify bool   `koanf:"minify"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		LogFormat: DefaultLogFormat,
		UI: UIConfig{
			Port: DefaultPort,
		},
		Build: BuildConfig{
			Output: DefaultOutputDir,
		},
	}
}

// defaultValues is Default flattened to koanf keys.
func defaultValues() map[string]any {
	d := Default()
	return map[string]any{
		"verbose":          d.Verbose,
		"log_format":       d.LogFormat,
		"site.title":       d.Site.Title,
		"site.description": d.Site.Description,
		"ui.port":          d.UI.Port,
		"ui.dev":           d.UI.Dev,
		"ui.docs_url":      d.UI.DocsURL,
		"ui.watch_dir":     d.UI.WatchDir,
		"build.output":     d.Build.Output,
		"build.minify":     d.Build.Minify,
	}
}
