package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptAPIHost sets the hostname of the target website.
func OptAPIHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("API Host", s) {
			c.API.Host = s
		}
	}
}

// OptAPISSL selects between https (true) and http (false).
func OptAPISSL(b bool) Option {
	return func(c *Config) {
		c.API.SSL = b
	}
}

// OptAPIUsername sets the API username.
// Runtime-only field - not in ToOptions().
func OptAPIUsername(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if s != "" {
			c.API.Username = s
		}
	}
}

// OptAPIPassword sets the API password.
// Runtime-only field - not in ToOptions().
func OptAPIPassword(s string) Option {
	return func(c *Config) {
		if s != "" {
			c.API.Password = s
		}
	}
}

// OptFilesPlantData sets the path to the living plant collections export.
func OptFilesPlantData(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Plant Data Path", s) {
			c.Files.PlantData = s
		}
	}
}

// OptFilesImageData sets the path to the species image locations export.
func OptFilesImageData(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Image Data Path", s) {
			c.Files.ImageData = s
		}
	}
}

// OptFilesImageRoot sets the local mount point substituted for the
// Windows drive prefix of image directories.
func OptFilesImageRoot(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Files.ImageRoot = s
	}
}

// OptFilesDelimiter sets the field separator of the export files.
// Only single-character delimiters are accepted.
func OptFilesDelimiter(s string) Option {
	return func(c *Config) {
		if isValidDelimiter(s) {
			c.Files.Delimiter = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the log level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets where log records are written.
// Valid values: "file", "stdout", "stderr", "both".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory used to derive config and log paths.
// Runtime-only field - set once by the CLI during init.
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
