package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/randomtoy/spinwheel/internal/domain"
)

type Config struct {
	HTTPAddr      string
	LogLevel      slog.Level
	SpinDuration  time.Duration
	SampleRate    int
	FullRotations int
	Easing        string
	Shuffle       domain.ShufflePolicy
	Overflow      domain.OverflowPolicy
}

// fileConfig mirrors the optional YAML file. Empty fields keep defaults.
type fileConfig struct {
	HTTPAddr string `yaml:"http_addr"`
	LogLevel string `yaml:"log_level"`
	Spin     struct {
		Duration      string `yaml:"duration"`
		SampleRate    *int   `yaml:"sample_rate"`
		FullRotations *int   `yaml:"full_rotations"`
		Easing        string `yaml:"easing"`
		Shuffle       string `yaml:"shuffle"`
		Overflow      string `yaml:"overflow"`
	} `yaml:"spin"`
}

// raw holds every setting as text before validation.
type raw struct {
	httpAddr, logLevel, duration, sampleRate, fullRotations, easing, shuffle, overflow string
}

// Load reads .env (if present), then the YAML file at path (or WHEEL_CONFIG),
// then lets environment variables override either.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	r := raw{
		httpAddr:      ":8080",
		logLevel:      "info",
		duration:      domain.DefaultDuration.String(),
		sampleRate:    strconv.Itoa(domain.DefaultSampleRate),
		fullRotations: strconv.Itoa(domain.DefaultFullRotations),
		easing:        "sine",
		shuffle:       string(domain.ShuffleAuto),
		overflow:      string(domain.OverflowKeep),
	}

	if path == "" {
		path = os.Getenv("WHEEL_CONFIG")
	}
	if path != "" {
		if err := r.applyFile(path); err != nil {
			return Config{}, err
		}
	}

	r.httpAddr = envOr("HTTP_ADDR", r.httpAddr)
	r.logLevel = envOr("LOG_LEVEL", r.logLevel)
	r.duration = envOr("SPIN_DURATION", r.duration)
	r.sampleRate = envOr("SPIN_SAMPLE_RATE", r.sampleRate)
	r.fullRotations = envOr("SPIN_FULL_ROTATIONS", r.fullRotations)
	r.easing = envOr("SPIN_EASING", r.easing)
	r.shuffle = envOr("SPIN_SHUFFLE", r.shuffle)
	r.overflow = envOr("SPIN_OVERFLOW", r.overflow)

	return r.parse()
}

func (r *raw) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	r.httpAddr = orDefault(fc.HTTPAddr, r.httpAddr)
	r.logLevel = orDefault(fc.LogLevel, r.logLevel)
	r.duration = orDefault(fc.Spin.Duration, r.duration)
	if fc.Spin.SampleRate != nil {
		r.sampleRate = strconv.Itoa(*fc.Spin.SampleRate)
	}
	if fc.Spin.FullRotations != nil {
		r.fullRotations = strconv.Itoa(*fc.Spin.FullRotations)
	}
	r.easing = orDefault(fc.Spin.Easing, r.easing)
	r.shuffle = orDefault(fc.Spin.Shuffle, r.shuffle)
	r.overflow = orDefault(fc.Spin.Overflow, r.overflow)
	return nil
}

func (r raw) parse() (Config, error) {
	c := Config{HTTPAddr: r.httpAddr, Easing: strings.ToLower(r.easing)}

	level, err := ParseLogLevel(r.logLevel)
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	d, err := time.ParseDuration(r.duration)
	if err != nil {
		return Config{}, fmt.Errorf("invalid SPIN_DURATION %q: %w", r.duration, err)
	}
	if d <= 0 {
		return Config{}, fmt.Errorf("invalid SPIN_DURATION %q: must be positive", r.duration)
	}
	c.SpinDuration = d

	if c.SampleRate, err = strconv.Atoi(r.sampleRate); err != nil || c.SampleRate < 1 {
		return Config{}, fmt.Errorf("invalid SPIN_SAMPLE_RATE %q", r.sampleRate)
	}
	if c.FullRotations, err = strconv.Atoi(r.fullRotations); err != nil || c.FullRotations < 0 {
		return Config{}, fmt.Errorf("invalid SPIN_FULL_ROTATIONS %q", r.fullRotations)
	}
	if _, err := domain.EasingByName(c.Easing); err != nil {
		return Config{}, fmt.Errorf("invalid SPIN_EASING: %w", err)
	}
	if c.Shuffle, err = domain.ParseShufflePolicy(r.shuffle); err != nil {
		return Config{}, fmt.Errorf("invalid SPIN_SHUFFLE: %w", err)
	}
	if c.Overflow, err = domain.ParseOverflowPolicy(r.overflow); err != nil {
		return Config{}, fmt.Errorf("invalid SPIN_OVERFLOW: %w", err)
	}
	return c, nil
}

// SpinOptions returns the engine knobs.
func (c Config) SpinOptions() domain.SpinOptions {
	return domain.SpinOptions{
		FullRotations: c.FullRotations,
		Shuffle:       c.Shuffle,
		Overflow:      c.Overflow,
	}
}

// Scheduler builds the frame scheduler for the configured pace.
func (c Config) Scheduler() (*domain.Scheduler, error) {
	ease, err := domain.EasingByName(c.Easing)
	if err != nil {
		return nil, err
	}
	return domain.NewScheduler(domain.ScheduleConfig{
		Duration:   c.SpinDuration,
		SampleRate: c.SampleRate,
		Easing:     ease,
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
