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

// getImagesCmd returns the images command.
func getImagesCmd() *cobra.Command {
	var (
		imageData string
		imageRoot string
	)

	imagesCmd := &cobra.Command{
		Use:   "images",
		Short: "Attach species images listed in the BRAHMS export",
		Long: `Parse the BRAHMS species image locations export, resolve each row
to exactly one species on the website and upload its image file.

The export is pipe-delimited text, usually UTF-8 with an occasional
UTF-16LE dump; the encoding fallback is automatic. Rows whose species
query matches zero or several species are skipped.

Image directories in the export point at the BRAHMS photo drive (B:\).
On hosts without the mapped drive, pass --image-root with the local
mount of the photo library.

Examples:
  # Sync on the records VM with the mapped drive
  brahmsync images

  # Sync from a workstation with a cloud-storage mount
  brahmsync images --image-root "$HOME/Library/CloudStorage/Box-Box/RBG-Shared/Photo Library - Plant Records/AA BRAHMS Resized Photos"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runImages(cmd, imageData, imageRoot)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	imagesCmd.Flags().StringVarP(
		&imageData, "image-data", "i", "",
		"path to the species image locations export",
	)
	imagesCmd.Flags().StringVarP(
		&imageRoot, "image-root", "r", "",
		"local mount replacing the BRAHMS photo drive prefix",
	)

	return imagesCmd
}

func runImages(cmd *cobra.Command, imageData, imageRoot string) error {
	ctx := context.Background()

	runOpts := apiOptsFromFlags(cmd)
	if cmd.Flags().Changed("image-data") {
		runOpts = append(runOpts, config.OptFilesImageData(imageData))
	}
	if cmd.Flags().Changed("image-root") {
		runOpts = append(runOpts, config.OptFilesImageRoot(imageRoot))
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

	gn.Info("Syncing species images from <em>%s</em>...",
		cfg.Files.ImageData)
	return syncer.SyncImages(ctx)
}
