package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/sports-analytics/internal/app"
	"github.com/riskibarqy/sports-analytics/internal/config"
	"github.com/riskibarqy/sports-analytics/internal/interfaces/present"
	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
	"github.com/riskibarqy/sports-analytics/internal/usecase"
)

type rootOptions struct {
	seedFile string
	pretty   bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "analytics",
		Short:        "Sports analytics CLI",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.seedFile, "seed", "", "YAML seed file; when empty the STORAGE_DRIVER from the environment is used")
	root.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "Indent JSON output")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")

	root.AddCommand(formCmd(opts))
	root.AddCommand(tableCmd(opts))
	root.AddCommand(trendCmd(opts))
	return root
}

func formCmd(opts *rootOptions) *cobra.Command {
	var (
		teamID int64
		lastN  int
	)
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Team form over the last N matches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, opts, func(ctx context.Context, svc *usecase.AnalyticsService) (any, error) {
				form, err := svc.TeamForm(ctx, teamID, lastN)
				if err != nil {
					return nil, err
				}
				return present.FromTeamForm(form), nil
			})
		},
	}
	cmd.Flags().Int64Var(&teamID, "team", 0, "Team id")
	cmd.Flags().IntVar(&lastN, "last-n", 0, "Number of most recent matches (default from FORM_DEFAULT_LAST_N)")
	_ = cmd.MarkFlagRequired("team")
	return cmd
}

func tableCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "League standings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, opts, func(ctx context.Context, svc *usecase.AnalyticsService) (any, error) {
				table, err := svc.LeagueTable(ctx)
				if err != nil {
					return nil, err
				}
				return present.FromLeagueTable(table), nil
			})
		},
	}
}

func trendCmd(opts *rootOptions) *cobra.Command {
	var playerID int64
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Player performance trend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, opts, func(ctx context.Context, svc *usecase.AnalyticsService) (any, error) {
				trend, err := svc.PlayerTrend(ctx, playerID)
				if err != nil {
					return nil, err
				}
				return present.FromPlayerTrend(trend), nil
			})
		},
	}
	cmd.Flags().Int64Var(&playerID, "player", 0, "Player id")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}

func withService(cmd *cobra.Command, opts *rootOptions, fn func(context.Context, *usecase.AnalyticsService) (any, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if seed := strings.TrimSpace(opts.seedFile); seed != "" {
		cfg.StorageDriver = config.StorageMemory
		cfg.SeedFile = seed
	}
	cfg.SeedWatch = false

	logger := logging.NewNop()
	if opts.verbose {
		logger = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, logging.WithConsole())
	}

	storage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			logger.Warn("close storage", "error", err)
		}
	}()

	out, err := fn(ctx, app.NewAnalyticsService(cfg, storage, logger))
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out, opts.pretty)
}

func printJSON(w io.Writer, v any, pretty bool) error {
	var (
		raw []byte
		err error
	)
	if pretty {
		raw, err = sonic.ConfigStd.MarshalIndent(v, "", "  ")
	} else {
		raw, err = sonic.ConfigStd.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	raw = append(raw, '\n')
	_, err = w.Write(raw)
	return err
}
