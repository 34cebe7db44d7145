package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/snackbuddy/deal-tracker/internal/engine"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the deal artifacts on a schedule",
		Long: "Runs one refresh immediately, then reruns it on the configured\n" +
			"interval until interrupted.",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			eng := engine.New(cfg, log)
			if err := eng.Run(); err != nil {
				return err
			}

			sched, err := engine.NewScheduler(eng, cfg.Schedule.RefreshInterval, log)
			if err != nil {
				return err
			}
			sched.Start()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			<-sched.Stop().Done()
			log.Info("watch stopped")
			return nil
		},
	}
}
