package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"searchpage/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [url]",
		Short: "Run the search page in the terminal",
		Long:  "Run the search page in the terminal. The optional url seeds the criteria, e.g. \"/?title=go&is_public=true\".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			start := "/"
			if len(args) == 1 {
				start = args[0]
			}

			final, err := tui.Run(cmd.Context(), cfg, start)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), final)
			return nil
		},
	}
}
