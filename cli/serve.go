package cli

import (
	"github.com/spf13/cobra"

	"searchpage/web"
)

func newServeCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the search page web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Address = address
			}
			return web.Run(web.NewServer(cfg), cfg.Address)
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "listen address (overrides config)")
	return cmd
}
