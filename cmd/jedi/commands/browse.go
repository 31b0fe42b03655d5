package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"jediarchives/internal/model"
	"jediarchives/internal/navigator"
	"jediarchives/internal/service"
	"jediarchives/internal/swapi"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Navigate interactively from the film list",
		Long: "Starts at the film list. Enter a row number to open it, b to go back,\n" +
			"h to show the path taken, r to refetch the current screen and q to quit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return browse(cmd.Context(), screens, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// browse renders the route on top of the stack, then reads commands until one
// changes what should be on screen.
func browse(ctx context.Context, svc service.ScreenService, in io.Reader, out io.Writer) error {
	nav := navigator.New(model.FilmsRoute())
	sc := bufio.NewScanner(in)
	reload := false

	for {
		rctx := ctx
		if reload {
			rctx = swapi.Refresh(ctx)
			reload = false
		}
		screen, err := svc.Render(rctx, nav.Current())
		if err != nil {
			if !nav.Back() {
				return err
			}
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if err := show(out, screen); err != nil {
			return err
		}

		for redraw := false; !redraw; {
			fmt.Fprintf(out, "\n%s> ", nav.Current().Path())
			if !sc.Scan() {
				fmt.Fprintln(out)
				return sc.Err()
			}

			switch input := strings.TrimSpace(sc.Text()); input {
			case "q", "quit":
				return nil
			case "b", "back":
				if nav.Back() {
					redraw = true
				} else {
					fmt.Fprintln(out, "already at the film list")
				}
			case "h", "history":
				fmt.Fprintln(out, breadcrumb(nav.Routes()))
			case "r", "reload":
				reload = true
				redraw = true
			case "":
			default:
				row, err := strconv.Atoi(input)
				if err != nil {
					fmt.Fprintln(out, "enter a row number, b, h, r or q")
					continue
				}
				if _, err := nav.Select(screen, row); err != nil {
					fmt.Fprintf(out, "%v\n", err)
					continue
				}
				redraw = true
			}
		}
	}
}

func breadcrumb(routes []model.Route) string {
	paths := make([]string, len(routes))
	for i, r := range routes {
		paths[i] = r.Path()
	}
	return strings.Join(paths, " > ")
}
