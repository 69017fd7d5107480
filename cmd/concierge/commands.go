package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-concierge-api/internal/app"
	"github.com/noah-isme/campus-concierge-api/internal/seed"
	"github.com/noah-isme/campus-concierge-api/pkg/config"
	"github.com/noah-isme/campus-concierge-api/pkg/database"
	"github.com/noah-isme/campus-concierge-api/pkg/logger"
)

type loader func() (*config.Config, error)

func newRootCmd() *cobra.Command {
	return newRootCmdWith(config.Load)
}

func newRootCmdWith(load loader) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "concierge",
		Short:         "AI Campus Concierge command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	open := func(cmd *cobra.Command) (*app.App, error) {
		cfg, err := load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		logr := zap.NewNop()
		if verbose {
			if logr, err = logger.New(cfg); err != nil {
				return nil, err
			}
		}
		return app.New(cmd.Context(), cfg, logr)
	}

	root.AddCommand(
		newMigrateCmd(open),
		newSeedCmd(open),
		newAskCmd(open),
		newToolsCmd(open),
	)
	return root
}

type opener func(cmd *cobra.Command) (*app.App, error)

func newMigrateCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the campus tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck

			if err := database.Migrate(cmd.Context(), a.DB); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema ready (%s)\n", strings.Join(database.Tables, ", "))
			return nil
		},
	}
}

func newSeedCmd(open opener) *cobra.Command {
	var reset bool
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample events, exams and placements dated relative to today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fixtures, err := loadFixtures(file)
			if err != nil {
				return err
			}
			a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck

			if err := database.Migrate(cmd.Context(), a.DB); err != nil {
				return err
			}
			summary, err := a.Seeder.Run(cmd.Context(), fixtures, seed.Options{Today: a.Clock(), Reset: reset})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d events, %d exams, %d placements\n", summary.Events, summary.Exams, summary.Placements)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "delete existing rows first")
	cmd.Flags().StringVarP(&file, "file", "f", "", "fixture YAML file (defaults to the built-in dataset)")
	return cmd
}

func loadFixtures(path string) (*seed.Fixtures, error) {
	if path == "" {
		return seed.Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return seed.Parse(raw)
}

func newAskCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [message]",
		Short: "Run one chat turn and print the response as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck

			res, err := a.Chat.Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
}

func newToolsCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the resolver tool declarations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.Close() //nolint:errcheck

			schemas := make([]map[string]any, 0)
			for _, tool := range a.Registry.List() {
				schemas = append(schemas, map[string]any{
					"name":        tool.Name,
					"description": tool.Description,
					"parameters":  tool.Schema(),
				})
			}
			return writeJSON(cmd.OutOrStdout(), schemas)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
