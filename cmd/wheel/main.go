package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/randomtoy/spinwheel/internal/adapters/presets"
	"github.com/randomtoy/spinwheel/internal/adapters/sound"
	"github.com/randomtoy/spinwheel/internal/adapters/tui"
	"github.com/randomtoy/spinwheel/internal/app"
	"github.com/randomtoy/spinwheel/internal/config"
	"github.com/randomtoy/spinwheel/internal/logging"
	"github.com/randomtoy/spinwheel/internal/ports"
)

type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wheel: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("wheel", flag.ExitOnError)
	pointers := fs.Int("pointers", 1, "number of pointers (1-100)")
	preset := fs.String("preset", "", "spin a built-in preset instead of reading labels")
	configPath := fs.String("config", "", "path to a YAML config file")
	withSound := fs.Bool("sound", false, "play a tick per slice and a chime on landing")
	logFile := fs.String("log-file", "logs/wheel.log", "log file path")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error); overrides config")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wheel [flags] [labels-file]")
		fmt.Fprintln(os.Stderr, "Labels are read one per line from the file, or from stdin when piped.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level := cfg.LogLevel
	if *logLevel != "" {
		if level, err = config.ParseLogLevel(*logLevel); err != nil {
			return err
		}
	}

	logger, cleanup, err := logging.Setup(*logFile, level)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer cleanup()

	sched, err := cfg.Scheduler()
	if err != nil {
		return fmt.Errorf("spin schedule: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := presets.NewEmbeddedStore()
	labels, err := loadLabels(ctx, store, *preset, fs.Args())
	if err != nil {
		return err
	}
	logger.Info("labels loaded", "count", len(labels), "preset", *preset)

	svc := app.NewWheelService(store, stdRNG{}, cfg.SpinOptions(), sched, logger)

	var chime ports.Chime = sound.Nop{}
	if *withSound {
		sc, err := sound.NewSpeakerChime()
		if err != nil {
			logger.Warn("audio unavailable, continuing silently", "error", err)
		} else {
			defer sc.Close()
			chime = sc
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	model := tui.NewModel(svc, labels, *pointers)
	ui := tui.New(screen, model, chime, sched.Interval(), logger)
	if err := ui.Run(ctx); err != nil {
		logger.Error("ui stopped", "error", err)
		return err
	}
	return nil
}

// loadLabels prefers a preset, then a file argument, then piped stdin.
func loadLabels(ctx context.Context, store ports.PresetStore, preset string, args []string) ([]string, error) {
	if preset != "" {
		p, err := store.GetPreset(ctx, preset)
		if err != nil {
			return nil, err
		}
		return p.Labels, nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read labels: %w", err)
		}
		return app.ParseLabels(string(data)), nil
	}
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return nil, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return app.ParseLabels(string(data)), nil
}
