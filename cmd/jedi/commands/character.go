package commands

import (
	"github.com/spf13/cobra"

	"jediarchives/internal/swapi"
)

func characterCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "character <id>",
		Aliases: []string{"person"},
		Short:   "Show a character and the films they appear in",
		Example: "  jedi character 1\n  jedi character cGVvcGxlOjE=",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := screens.CharacterDetail(cmd.Context(), globalID(swapi.TypePeople, args[0]))
			if err != nil {
				return err
			}
			return show(cmd.OutOrStdout(), screen)
		},
	}
}
