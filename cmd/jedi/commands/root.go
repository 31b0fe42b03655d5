package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"regexp"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"jediarchives/internal/config"
	"jediarchives/internal/logging"
	"jediarchives/internal/model"
	"jediarchives/internal/render"
	"jediarchives/internal/service"
	"jediarchives/internal/swapi"
)

var (
	endpoint  string
	timeout   time.Duration
	output    string
	cacheSize int
	verbose   bool

	format  render.Format
	screens service.ScreenService
)

var localID = regexp.MustCompile(`^[0-9]+$`)

// Execute runs the CLI with os.Args. Interrupts cancel in-flight upstream requests.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	defaults := config.Load().Swapi

	root := &cobra.Command{
		Use:          "jedi",
		Short:        "Browse Star Wars films and characters",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(output)
			if err != nil {
				return err
			}
			format = f

			level := "warn"
			if verbose {
				level = "debug"
			}
			logger, err := logging.NewWithWriter(cmd.ErrOrStderr(), level, time.Local)
			if err != nil {
				return err
			}

			client, err := swapi.NewClient(config.SwapiConfig{
				Endpoint:       endpoint,
				RequestTimeout: timeout,
				CacheSize:      cacheSize,
			}, swapi.WithLogger(logger))
			if err != nil {
				return err
			}
			screens = service.NewScreenService(client, logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&endpoint, "endpoint", defaults.Endpoint, "GraphQL endpoint (env SWAPI_ENDPOINT)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", defaults.Timeout(), "upstream request timeout")
	root.PersistentFlags().StringVarP(&output, "output", "o", string(render.FormatText), "output format: text or json")
	root.PersistentFlags().IntVar(&cacheSize, "cache-size", defaults.CacheSize, "responses kept in memory, 0 disables")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log upstream requests to stderr")

	root.AddCommand(filmsCmd(), filmCmd(), characterCmd(), browseCmd())
	return root
}

// globalID accepts either a Relay id or the bare number of a typeName object.
func globalID(typeName, arg string) string {
	if localID.MatchString(arg) {
		return swapi.EncodeID(typeName, arg)
	}
	return arg
}

func show(w io.Writer, s *model.Screen) error {
	if format == render.FormatJSON {
		return render.JSON(w, s, isTerminal(w))
	}
	return render.Text(w, s)
}

// isTerminal reports whether w is a character device, so JSON is only colorized interactively.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	st, err := f.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeCharDevice != 0
}
