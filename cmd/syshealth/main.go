package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sysmonkit/syshealth/config"
	"github.com/sysmonkit/syshealth/history"
	"github.com/sysmonkit/syshealth/logger"
	"github.com/sysmonkit/syshealth/monitor"
	"github.com/sysmonkit/syshealth/report"
)

var (
	configPath      string
	cpuThreshold    float64
	memoryThreshold float64
	diskThreshold   float64
	continuous      bool
	intervalSeconds int
	saveSnapshots   bool
	outputFile      string
	topN            int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "syshealth",
		Short: "Sample host health metrics and alert on configured thresholds",
		Long: "syshealth collects CPU, memory, disk, network and process metrics from the\n" +
			"local host, evaluates them against percentage thresholds, and prints one\n" +
			"health summary per collection. Snapshots can optionally be saved as JSON\n" +
			"and alerts recorded in a local sqlite history.",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML configuration file")
	rootCmd.Flags().Float64Var(&cpuThreshold, "cpu-threshold", monitor.DefaultCPUThreshold, "CPU alert threshold percent")
	rootCmd.Flags().Float64Var(&memoryThreshold, "memory-threshold", monitor.DefaultMemoryThreshold, "Memory alert threshold percent")
	rootCmd.Flags().Float64Var(&diskThreshold, "disk-threshold", monitor.DefaultDiskThreshold, "Disk alert threshold percent")
	rootCmd.Flags().BoolVar(&continuous, "continuous", false, "Run continuously (Ctrl+C to stop)")
	rootCmd.Flags().IntVar(&intervalSeconds, "interval", 30, "Interval in seconds for continuous monitoring")
	rootCmd.Flags().BoolVar(&saveSnapshots, "save", false, "Save each snapshot to a JSON file")
	rootCmd.Flags().StringVar(&outputFile, "output", "", "Snapshot output filename (default embeds the timestamp)")
	rootCmd.Flags().IntVar(&topN, "top-n", monitor.DefaultTopProcesses, "How many processes to keep in each top list")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("cpu-threshold") {
		cfg.Thresholds.CPUPercent = cpuThreshold
	}
	if cmd.Flags().Changed("memory-threshold") {
		cfg.Thresholds.MemoryPercent = memoryThreshold
	}
	if cmd.Flags().Changed("disk-threshold") {
		cfg.Thresholds.DiskPercent = diskThreshold
	}
	if cmd.Flags().Changed("interval") {
		cfg.Monitor.IntervalSeconds = intervalSeconds
	}
	if cmd.Flags().Changed("top-n") {
		cfg.Monitor.TopProcesses = topN
	}

	log, err := logger.Init(cfg.LogLocation)
	if err != nil {
		return err
	}

	hostname := cfg.Hostname
	if hostname == "" {
		hostname, _ = os.Hostname()
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History.SqliteLocation)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	mon := monitor.New(monitor.NewSystemSource(), cfg.Thresholds, cfg.Monitor.TopProcesses)

	// Interrupts are honored between iterations only, so a snapshot is
	// always either fully built or not started.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !continuous {
		collectOnce(mon, store, hostname, log)
		return nil
	}

	interval := time.Duration(cfg.Monitor.IntervalSeconds) * time.Second
	log.Info().Dur("interval", interval).Msg("Starting continuous monitoring, press Ctrl+C to stop")

	for {
		collectOnce(mon, store, hostname, log)

		select {
		case <-ctx.Done():
			log.Info().Msg("Monitoring stopped")
			return nil
		case <-time.After(interval):
		}
	}
}

func collectOnce(mon *monitor.Monitor, store *history.Store, hostname string, log zerolog.Logger) {
	snap := mon.Collect()
	report.Summary(os.Stdout, snap, mon.Thresholds())

	if saveSnapshots {
		filename, err := report.Save(snap, outputFile)
		if err != nil {
			// Persistence problems are reported, never fatal to the loop.
			log.Error().Err(err).Msg("Failed to save snapshot")
		} else {
			log.Info().Str("file", filename).Msg("Snapshot saved")
		}
	}

	if store != nil {
		if err := store.Record(hostname, snap); err != nil {
			log.Error().Err(err).Msg("Failed to record alerts in history")
		}
	}
}
