package cmd

import (
	"context"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/redbuttegarden/brahmsync/internal/iofs"
	"github.com/redbuttegarden/brahmsync/internal/ioposter"
	"github.com/redbuttegarden/brahmsync/internal/iosync"
	"github.com/redbuttegarden/brahmsync/pkg/config"
	"github.com/spf13/cobra"
)

// getCollectionsCmd returns the collections command.
func getCollectionsCmd() *cobra.Command {
	var plantData string

	collectionsCmd := &cobra.Command{
		Use:   "collections",
		Short: "Sync living plant collection records to the website",
		Long: `Parse the BRAHMS living plant collections export and submit one
collection record per row to the website.

The export is pipe-delimited UTF-16LE text with a header row. Rows with
malformed hardiness zones, dates or coordinates are logged and dropped;
the rest of the file is still processed.

Examples:
  # Sync with paths from config.yaml
  brahmsync collections

  # Override the export location
  brahmsync collections --plant-data /data/living_plant_collections.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCollections(cmd, plantData)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	collectionsCmd.Flags().StringVarP(
		&plantData, "plant-data", "p", "",
		"path to the living plant collections export",
	)

	return collectionsCmd
}

func runCollections(cmd *cobra.Command, plantData string) error {
	ctx := context.Background()

	runOpts := apiOptsFromFlags(cmd)
	if cmd.Flags().Changed("plant-data") {
		runOpts = append(runOpts, config.OptFilesPlantData(plantData))
	}
	if len(runOpts) > 0 {
		cfg.Update(runOpts)
	}

	if err := ensureCredentials(); err != nil {
		return err
	}

	poster := ioposter.New(&cfg.API)
	if err := poster.Login(ctx); err != nil {
		return err
	}
	gn.Info("Authenticated with <em>%s</em>", cfg.API.Host)
	slog.Info("Authenticated", "host", cfg.API.Host)

	syncer := iosync.New(cfg, poster, iofs.NewResolver(cfg.Files.ImageRoot))

	gn.Info("Syncing plant collections from <em>%s</em>...",
		cfg.Files.PlantData)
	return syncer.SyncCollections(ctx)
}
