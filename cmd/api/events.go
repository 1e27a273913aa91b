package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jwalitptl/clinic-api/pkg/event"
	"github.com/jwalitptl/clinic-api/pkg/messaging"
	"github.com/jwalitptl/clinic-api/pkg/messaging/redis"
)

func eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect change events",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Print change events as they are published",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.Events.EventsEnabled() {
				return fmt.Errorf("REDIS_URL is not set")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			broker, err := redis.NewRedisBroker(ctx, redis.DefaultConfig(cfg.Events.RedisURL), l)
			if err != nil {
				return err
			}
			defer broker.Close()

			err = watchEvents(ctx, broker, cfg.Events.Channel, cmd.OutOrStdout(), func(err error) {
				l.Warn().Err(err).Msg("skipping malformed event")
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	})

	return cmd
}

func watchEvents(ctx context.Context, broker messaging.Broker, channel string, w io.Writer, onError func(error)) error {
	return messaging.Consume(ctx, broker, channel, func(payload []byte) error {
		change, err := event.Decode(payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s\n", change.At.Format("2006-01-02T15:04:05Z07:00"), change)
		return nil
	}, onError)
}
