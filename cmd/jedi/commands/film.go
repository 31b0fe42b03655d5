package commands

import (
	"github.com/spf13/cobra"

	"jediarchives/internal/swapi"
)

func filmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "film <id>",
		Short:   "Show a film and its characters",
		Example: "  jedi film 1\n  jedi film ZmlsbXM6MQ==",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := screens.FilmDetail(cmd.Context(), globalID(swapi.TypeFilms, args[0]))
			if err != nil {
				return err
			}
			return show(cmd.OutOrStdout(), screen)
		},
	}
}
