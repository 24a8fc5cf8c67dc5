package main

import (
	"fmt"
	"secondchance/internal/config"
	"secondchance/pkg/domain"
	"secondchance/pkg/logger"
	"time"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// encodeQueueStatus renders the queue length and its oldest entry, if any.
func encodeQueueStatus(length int64, oldest *domain.QueueEntry) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.Field("length", func(e *jx.Encoder) { e.Int64(length) })
	if oldest != nil {
		e.Field("oldest", func(e *jx.Encoder) {
			e.ObjStart()
			e.Field("url", func(e *jx.Encoder) { e.Str(oldest.URL) })
			e.Field("dateAdded", func(e *jx.Encoder) { e.Str(oldest.DateAdded.Format(time.DateOnly)) })
			e.ObjEnd()
		})
	}
	e.ObjEnd()

	return e.Bytes()
}

func queueCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Shows the URLs waiting for classification",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			length, err := strg.QueueLength(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not get queue length", zap.Error(err))
			}
			oldest, err := strg.OldestQueued(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not get oldest queue entry", zap.Error(err))
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(encodeQueueStatus(length, oldest)))
		},
	}

	return cmd
}
