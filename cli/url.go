package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"searchpage/models"
)

func newURLCmd() *cobra.Command {
	var (
		c    models.Criteria
		path string
	)

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the canonical URL for a set of criteria",
		RunE: func(cmd *cobra.Command, args []string) error {
			c = c.Normalize()
			if err := c.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), models.CriteriaURL(path, c))
			return nil
		},
	}
	cmd.Flags().StringVar(&c.Title, "title", "", "title criterion")
	cmd.Flags().BoolVar(&c.IsPublic, "public", false, "is_public criterion")
	cmd.Flags().BoolVar(&c.IsPrivate, "private", false, "is_private criterion")
	cmd.Flags().StringVar(&path, "path", "/", "page path")
	return cmd
}
