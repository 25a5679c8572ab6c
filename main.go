package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"vajra.klederson.com/internal/app"
	"vajra.klederson.com/internal/config"
	"vajra.klederson.com/internal/logging"
	"vajra.klederson.com/internal/tactical"
)

var (
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
	flagHeadless bool
	flagDuration time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vajra",
		Short: "VAJRA-X - Simulated tactical awareness dashboard",
		Long: `VAJRA-X simulates a soldier-worn tactical HUD: operator biometrics,
acoustic drone and gunfire detection, GPS jamming and a dead-man switch,
rendered on an amber ASCII radar.

All sensors are simulated. Settings come from an optional config file
(--config) and VAJRA_* environment variables; flags override both.
Use --headless to run the engine without a terminal UI.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Config file (json, yaml or toml)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Random seed for the simulated sensors (0 = time based)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append structured logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without the terminal UI and print a summary on exit")
	rootCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Stop a headless run after this long (0 = until interrupted)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		settings.Seed = flagSeed
	}
	if cmd.Flags().Changed("log-file") {
		settings.LogFile = flagLogFile
	}
	if cmd.Flags().Changed("log-level") {
		settings.LogLevel = flagLogLevel
	}

	logOut, err := logging.Open(settings.LogFile)
	if err != nil {
		return err
	}
	defer logOut.Close()

	if flagHeadless {
		logger := logging.NewTee(os.Stderr, logOut, settings.LogLevel)
		return runHeadless(settings, logger)
	}
	// The terminal belongs to the UI; logs only go to the file.
	logger := logging.New(logOut, settings.LogLevel)
	return runTUI(settings, logger)
}

func runHeadless(settings config.Settings, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if flagDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagDuration)
		defer cancel()
	}

	engine, err := tactical.New(tactical.Options{
		Settings: settings,
		Start:    time.Now(),
		Logger:   &logger,
		OnWipe: func(at time.Time) {
			logger.Error().Time("at", at).Msg("data wipe requested")
		},
	})
	if err != nil {
		return err
	}
	engine.Start()

	final := app.RunHeadless(ctx, engine, time.Second/time.Duration(config.TargetFPS), logger)
	fmt.Print(app.Summary(final))
	return nil
}

func runTUI(settings config.Settings, logger zerolog.Logger) error {
	notifier := &app.Notifier{}
	start := time.Now()

	engine, err := tactical.New(tactical.Options{
		Settings: settings,
		Start:    start,
		Logger:   &logger,
		OnWipe:   notifier.Wipe,
	})
	if err != nil {
		return err
	}
	engine.Start()

	model := app.New(engine, start)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)
	notifier.Bind(p)

	// Quitting the model stops the engine.
	_, err = p.Run()
	return err
}
