// Package config provides configuration management for brahmsync.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - API: host, ssl
//   - Files: plant_data, image_data, image_root, delimiter
//   - Log: level, format, destination
//
// Runtime-only fields:
//   - API.Username, API.Password (env vars only, never written to disk)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use BRAHMSYNC_ prefix with underscores for nesting:
//
//	BRAHMSYNC_API_HOST=redbuttegarden.org
//	BRAHMSYNC_API_USERNAME=importer
//	BRAHMSYNC_API_PASSWORD=secret
//	BRAHMSYNC_LOG_LEVEL=info
package config

// Config represents the complete brahmsync configuration.
type Config struct {
	// API contains connection settings for the garden website's REST API.
	API APIConfig `mapstructure:"api" yaml:"api"`

	// Files contains locations of the BRAHMS export files.
	Files FilesConfig `mapstructure:"files" yaml:"files"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// APIConfig contains connection parameters for the remote API.
type APIConfig struct {
	// Host is the hostname (and optional port) of the target website.
	Host string `mapstructure:"host" yaml:"host"`

	// SSL selects https when true, plain http otherwise.
	SSL bool `mapstructure:"ssl" yaml:"ssl"`

	// Username authenticates API requests. Runtime-only: supplied via the
	// BRAHMSYNC_API_USERNAME environment variable, never stored in config.yaml.
	Username string `mapstructure:"username" yaml:"-"`

	// Password authenticates API requests. Runtime-only: supplied via the
	// BRAHMSYNC_API_PASSWORD environment variable, never stored in config.yaml.
	Password string `mapstructure:"password" yaml:"-"`
}

// FilesConfig contains locations and format settings of BRAHMS exports.
type FilesConfig struct {
	// PlantData is the path to the living plant collections export.
	PlantData string `mapstructure:"plant_data" yaml:"plant_data"`

	// ImageData is the path to the species image locations export.
	ImageData string `mapstructure:"image_data" yaml:"image_data"`

	// ImageRoot, when set, replaces the Windows drive prefix of image
	// directories from the export with a local mount point. Leave empty on
	// hosts where the drive is mapped directly.
	ImageRoot string `mapstructure:"image_root" yaml:"image_root"`

	// Delimiter is the field separator of the export files.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR, STDOUT,
	// or 'both' (log file and STDERR together).
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		API: APIConfig{
			Host: "redbuttegarden.org",
			SSL:  true,
		},
		Files: FilesConfig{
			PlantData: "living_plant_collections.csv",
			ImageData: "species_image_locations.csv",
			Delimiter: "|",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// warnings must reach both the persistent log and the console
			Destination: "both",
		},
	}

	return res
}
