package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"countryexplorer/internal/config"
	"countryexplorer/internal/nav"
	"countryexplorer/internal/theme"
	"countryexplorer/internal/ui"
)

type rootFlags struct {
	route string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "countryexplorer",
		Short:         "Browse countries from the REST Countries API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAppContext(cmd, func(ac *appContext, _ io.Writer) error {
				return runTUI(cmd.Context(), ac, nav.Parse(flags.route))
			})
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())
	cmd.Flags().StringVar(&flags.route, "route", "/", "initial route, e.g. /country/Peru")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runTUI(ctx context.Context, ac *appContext, start nav.Route) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := ui.NewAppModel(ui.Options{
		Source:  ac.service,
		Theme:   theme.NewStore(),
		Log:     ac.log,
		Context: ctx,
		Start:   start,
	})
	defer app.Close()

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
