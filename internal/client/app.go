package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/service"
	"github.com/MKhiriev/go-conf-keeper/models"
)

var errNoConnector = errors.New("client connector is not set")

type App struct {
	connect   Connector
	buildInfo models.AppBuildInfo
	out       io.Writer
	logger    *logger.Logger

	overrides config.ClientConfig
	services  *service.ClientServices
}

func NewApp(connect Connector, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	if connect == nil {
		return nil, errNoConnector
	}
	return &App{
		connect:   connect,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}, nil
}

// Run builds a fresh command tree, so an App can run several commands in a
// row.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	a.overrides = config.ClientConfig{}

	root := &cobra.Command{
		Use:           "confctl",
		Short:         "Inspect and change the settings of a go-conf-keeper server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.Debug().
				Str("command", cmd.CommandPath()).
				Str("address", a.overrides.Adapter.HTTPAddress).
				Msg("connecting to settings server")

			services, err := a.connect(a.overrides)
			if err != nil {
				return fmt.Errorf("error connecting to server: %w", err)
			}
			a.services = services
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.overrides.Adapter.HTTPAddress, "address", "a", "", "settings server address")
	flags.DurationVar(&a.overrides.Adapter.RequestTimeout, "timeout", 0, "request timeout (e.g. 5s)")
	flags.StringVarP(&a.overrides.JSONFilePath, "config", "c", "", "path to a JSON client config file")

	root.AddCommand(
		a.listCommand(),
		a.getCommand(),
		a.setCommand(),
		a.itemCommand(),
		a.moveCommand(),
		a.missingCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) printUpdate(resp models.UpdateResponse) error {
	value, err := json.Marshal(resp.Value)
	if err != nil {
		return fmt.Errorf("error encoding value: %w", err)
	}
	a.printf("%s %s: %s\n", resp.Name, resp.Outcome, value)
	return nil
}

// withTimeout bounds a single command by --timeout when it was given.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d := a.overrides.Adapter.RequestTimeout; d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}
