// Package cmd provides the brahmsync command line interface.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/redbuttegarden/brahmsync/internal/iofs"
	"github.com/redbuttegarden/brahmsync/internal/iologger"
	app "github.com/redbuttegarden/brahmsync/pkg"
	"github.com/redbuttegarden/brahmsync/pkg/config"
	"github.com/redbuttegarden/brahmsync/pkg/errcode"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "brahmsync",
	Short:   "Sync BRAHMS export data to the garden website",
	Long: `brahmsync parses pipe-delimited BRAHMS database exports and submits
their content to the garden website's REST API.

Two exports are supported:
  collections - living plant collection records
  images      - species image locations

Configuration precedence (highest to lowest):
  1. CLI flags (--host, --plant-data, etc.)
  2. Environment variables (BRAHMSYNC_*)
  3. Config file (~/.config/brahmsync/config.yaml)
  4. Built-in defaults

API credentials come from the environment only:
  BRAHMSYNC_API_USERNAME
  BRAHMSYNC_API_PASSWORD`,
	PersistentPreRunE: bootstrap,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "both",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Credentials are runtime-only and bypass ToOptions.
	cfg.Update([]config.Option{
		config.OptAPIUsername(cfgViper.API.Username),
		config.OptAPIPassword(cfgViper.API.Password),
		config.OptHomeDir(homeDir),
	})

	// Reconfigure logging with user's settings.
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// ensureCredentials verifies the API username and password were supplied.
// A missing credential is a fatal startup condition, reported before any
// row processing starts.
func ensureCredentials() error {
	if cfg.API.Username != "" && cfg.API.Password != "" {
		return nil
	}
	return &gn.Error{
		Code: errcode.MissingCredentialsError,
		Msg: `<err>API credentials are not set.</err>
   Set <em>BRAHMSYNC_API_USERNAME</em> and <em>BRAHMSYNC_API_PASSWORD</em>
   environment variables.`,
		Err: errors.New("missing API credentials"),
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "brahmsync version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for brahmsync")

	rootCmd.PersistentFlags().String(
		"host", "", "hostname of the target website",
	)
	rootCmd.PersistentFlags().Bool(
		"ssl", true, "use SSL for request connections",
	)

	rootCmd.AddCommand(getCollectionsCmd())
	rootCmd.AddCommand(getImagesCmd())
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are
	// allowed. Except for the credentials these match the fields included
	// in config.ToOptions() - i.e., persistent configuration that can be
	// stored in config.yaml.
	v.SetEnvPrefix("BRAHMSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// API configuration
	v.BindEnv("api.host", "API_HOST")
	v.BindEnv("api.ssl", "API_SSL")
	v.BindEnv("api.username", "API_USERNAME")
	v.BindEnv("api.password", "API_PASSWORD")

	// Export file configuration
	v.BindEnv("files.plant_data", "FILES_PLANT_DATA")
	v.BindEnv("files.image_data", "FILES_IMAGE_DATA")
	v.BindEnv("files.image_root", "FILES_IMAGE_ROOT")
	v.BindEnv("files.delimiter", "FILES_DELIMITER")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	v.AutomaticEnv()
}
