package cmd

import (
	"github.com/redbuttegarden/brahmsync/pkg/config"
	"github.com/spf13/cobra"
)

// apiOptsFromFlags converts explicitly set connection flags into config
// options. Flags left at their defaults do not override env or config.yaml.
func apiOptsFromFlags(cmd *cobra.Command) []config.Option {
	var res []config.Option

	if cmd.Flags().Changed("host") {
		host, _ := cmd.Flags().GetString("host")
		res = append(res, config.OptAPIHost(host))
	}

	if cmd.Flags().Changed("ssl") {
		ssl, _ := cmd.Flags().GetBool("ssl")
		res = append(res, config.OptAPISSL(ssl))
	}

	return res
}
