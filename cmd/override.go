package main

import (
	"fmt"
	"secondchance/internal/api/handler/v1handler"
	"secondchance/internal/config"
	"secondchance/internal/linkcheck"

	"github.com/spf13/cobra"
)

func overrideCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "override URL...",
		Short: "Marks each URL as safe",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			checker := getChecker(ctx, cfg, strg, linkcheck.NewOptions(cfg))

			failed := 0
			for _, URL := range args {
				ack := checker.UpdateLink(ctx, URL)
				if !ack.Success {
					failed++
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(v1handler.EncodeAck(ack)))
			}
			if failed > 0 {
				return fmt.Errorf("could not override %d of %d urls", failed, len(args))
			}

			return nil
		},
	}

	return cmd
}
