// Package iofs prepares the filesystem side of brahmsync: config and log
// directories, the default config file, and local path resolution for
// image files referenced by the BRAHMS export.
package iofs

import (
	"os"

	"github.com/redbuttegarden/brahmsync/pkg/config"
	"gopkg.in/yaml.v3"
)

const configHeader = `# brahmsync configuration.
#
# Values here are overridden by BRAHMSYNC_* environment variables and
# CLI flags. API credentials are never read from this file; set
# BRAHMSYNC_API_USERNAME and BRAHMSYNC_API_PASSWORD in the environment.
`

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes a documented default config.yaml on first run.
// Existing files are never overwritten.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	data, err := yaml.Marshal(config.New())
	if err != nil {
		return CopyFileError(configPath, err)
	}
	content := append([]byte(configHeader), data...)

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}
