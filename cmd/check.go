package main

import (
	"context"
	"fmt"
	"secondchance/internal/api/handler/v1handler"
	"secondchance/internal/config"
	"secondchance/internal/linkcheck"
	"secondchance/pkg/domain"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// checkLinks runs CheckLink for every URL with at most concurrency checks in
// flight. Verdicts keep the order of URLs.
func checkLinks(ctx context.Context, checker linkcheck.Checker, URLs []string, concurrency int) []domain.Verdict {
	verdicts := make([]domain.Verdict, len(URLs))

	g, gCtx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, URL := range URLs {
		g.Go(func() error {
			verdicts[i] = checker.CheckLink(gCtx, URL)

			return nil
		})
	}
	_ = g.Wait() // CheckLink never fails

	return verdicts
}

func checkCommand(cfg *config.Config) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "check URL...",
		Short: "Prints the verdict of each URL as a JSON line",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			checker := getChecker(ctx, cfg, strg, linkcheck.NewOptions(cfg))
			for _, v := range checkLinks(ctx, checker, args, concurrency) {
				fmt.Fprintln(cmd.OutOrStdout(), string(v1handler.EncodeVerdict(v)))
			}

			waitForChecker(ctx, cfg, checker)
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", cfg.CLI.Concurrency, "Maximum number of URLs checked at once")

	return cmd
}
