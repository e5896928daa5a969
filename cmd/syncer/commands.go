package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func discoverCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Scan the tender feed for tenders issued by watched EDRPOUs",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.discovery.Discover(cmd.Context())
			if result != nil {
				_ = printJSON(result)
			}
			return err
		},
	}
}

func pollCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "poll",
		Short: "Check linked tenders for status changes and notify donors",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.polling.Poll(cmd.Context())
			if result != nil {
				_ = printJSON(result)
			}
			return err
		},
	}
}

func runCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run discovery then polling once",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.scheduler.RunOnce(cmd.Context())
			if report != nil {
				_ = printJSON(report)
			}
			return err
		},
	}
}

func scheduleCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Run the sync now and then on the configured interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			a.logger.Info("starting procurement syncer",
				"interval", a.cfg.Schedule.Interval,
				"job", a.cfg.Discovery.JobName,
				"max_pages", a.cfg.Discovery.MaxPages,
			)

			err = a.scheduler.Start(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
