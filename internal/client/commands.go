package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-conf-keeper/internal/env"
)

func (a *App) listCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all settings with their current values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			settings, err := a.services.SettingsService.List(ctx)
			if err != nil {
				return err
			}
			if asJSON {
				return a.printJSON(settings)
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVALUE\tFLAGS")
			for _, s := range settings {
				value, err := json.Marshal(s.Value)
				if err != nil {
					return fmt.Errorf("error encoding %s: %w", s.Name, err)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, value, flagsOf(s.Mandatory, s.Computed, s.IsList, s.Tags))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full settings as JSON")
	return cmd
}

func flagsOf(mandatory, computed, isList bool, tags []string) string {
	var parts []string
	if mandatory {
		parts = append(parts, "mandatory")
	}
	if computed {
		parts = append(parts, "computed")
	}
	if isList {
		parts = append(parts, "list")
	}
	parts = append(parts, tags...)
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}

func (a *App) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Print the value of one setting as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			setting, err := a.services.SettingsService.Get(ctx, args[0])
			if err != nil {
				return err
			}
			value, err := json.Marshal(setting.Value)
			if err != nil {
				return fmt.Errorf("error encoding value: %w", err)
			}
			a.printf("%s\n", value)
			return nil
		},
	}
}

func (a *App) setCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set NAME VALUE",
		Short: "Change a setting",
		Long: "Change a setting. VALUE is read as JSON when it parses as JSON " +
			"(51.5, true, \"text\") and as a plain string otherwise.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			resp, err := a.services.SettingsService.Set(ctx, args[0], parseValue(args[1]))
			if err != nil {
				return err
			}
			return a.printUpdate(resp)
		},
	}
}

func (a *App) itemCommand() *cobra.Command {
	item := &cobra.Command{
		Use:   "item",
		Short: "Read and change single items of list settings",
	}

	item.AddCommand(
		&cobra.Command{
			Use:   "get NAME IDX",
			Short: "Print one list item as JSON",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				idx, err := parseIndex(args[1])
				if err != nil {
					return err
				}
				ctx, cancel := a.withTimeout(cmd.Context())
				defer cancel()

				resp, err := a.services.SettingsService.ListGet(ctx, args[0], idx)
				if err != nil {
					return err
				}
				value, err := json.Marshal(resp.Value)
				if err != nil {
					return fmt.Errorf("error encoding value: %w", err)
				}
				a.printf("%s\n", value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set NAME IDX VALUE",
			Short: "Change one list item, growing the list when needed",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				idx, err := parseIndex(args[1])
				if err != nil {
					return err
				}
				ctx, cancel := a.withTimeout(cmd.Context())
				defer cancel()

				resp, err := a.services.SettingsService.ListSet(ctx, args[0], idx, parseValue(args[2]))
				if err != nil {
					return err
				}
				return a.printUpdate(resp)
			},
		},
		&cobra.Command{
			Use:   "remove NAME IDX",
			Short: "Drop the item at IDX and everything after it",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				idx, err := parseIndex(args[1])
				if err != nil {
					return err
				}
				ctx, cancel := a.withTimeout(cmd.Context())
				defer cancel()

				resp, err := a.services.SettingsService.ListRemove(ctx, args[0], idx)
				if err != nil {
					return err
				}
				return a.printUpdate(resp)
			},
		},
	)
	return item
}

func (a *App) moveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move NAME FROM TO",
		Short: "Move a list item to another position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			to, err := parseIndex(args[2])
			if err != nil {
				return err
			}
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			resp, err := a.services.SettingsService.ListMove(ctx, args[0], from, to)
			if err != nil {
				return err
			}
			return a.printUpdate(resp)
		},
	}
}

func (a *App) missingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "missing",
		Short: "List mandatory settings that have no value yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			missing, err := a.services.SettingsService.Missing(ctx)
			if err != nil {
				return err
			}
			for _, name := range missing {
				a.printf("%s\n", name)
			}
			return nil
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			a.printf("client: %s (%s, %s)\n", a.buildInfo.BuildVersion(), a.buildInfo.BuildDate(), a.buildInfo.BuildCommit())

			serverVersion, err := a.services.InfoService.ServerVersion(ctx)
			if err != nil {
				return err
			}
			a.printf("server: %s\n", serverVersion)
			return nil
		},
	}
}

// parseValue reads a command line argument as JSON when possible, so that
// 51.5 and true keep their types, and as a plain string otherwise.
func parseValue(arg string) env.Value {
	var v env.Value
	if json.Valid([]byte(arg)) && v.UnmarshalJSON([]byte(arg)) == nil {
		return v
	}
	return env.String(arg)
}

func parseIndex(arg string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", arg, err)
	}
	return idx, nil
}
