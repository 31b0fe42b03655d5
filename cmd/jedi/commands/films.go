package commands

import (
	"github.com/spf13/cobra"
)

func filmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "films",
		Short: "List all films",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := screens.Films(cmd.Context())
			if err != nil {
				return err
			}
			return show(cmd.OutOrStdout(), screen)
		},
	}
}
