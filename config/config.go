package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/grid"
)

// ErrInvalidConfig is returned when an environment value cannot be parsed or
// the resulting configuration is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvHeight     = "MAZE_HEIGHT"
	EnvWidth      = "MAZE_WIDTH"
	EnvSeed       = "MAZE_SEED"
	EnvPNG        = "MAZE_PNG"
	EnvCellPixels = "MAZE_CELL_PIXELS"
	EnvAnimate    = "MAZE_ANIMATE"
	EnvColor      = "MAZE_COLOR"
	EnvFrameDelay = "MAZE_FRAME_DELAY"
	EnvLogLevel   = "MAZE_LOG_LEVEL"
	EnvHTTPAddr   = "MAZE_HTTP_ADDR"
)

// Config holds the settings shared by the command-line solver and the HTTP
// server.
type Config struct {
	Height     int           // Maze rows, odd and >= grid.MinSize
	Width      int           // Maze columns, odd and >= grid.MinSize
	Seed       int64         // Generator seed, used when HasSeed is set
	HasSeed    bool          // False means a clock-seeded generator
	PNGPath    string        // Final frame is written here when non-empty
	CellPixels int           // Side of one cell in the PNG, in pixels
	Animate    bool          // Print every search frame, not only the final one
	Color      bool          // ANSI colour blocks instead of symbols
	FrameDelay time.Duration // Pause between animation frames
	LogLevel   logrus.Level
	HTTPAddr   string // Listen address for the HTTP server
}

// Default returns the built-in configuration: a 21x21 maze, final frame
// only, info logging.
func Default() Config {
	return Config{
		Height:     21,
		Width:      21,
		CellPixels: 10,
		FrameDelay: 50 * time.Millisecond,
		LogLevel:   logrus.InfoLevel,
		HTTPAddr:   ":8080",
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, then builds a Config from it. Missing files are
// skipped; already-set variables win over file values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from Default overridden by MAZE_* variables and
// validates it.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Height, err = getEnvAsInt(EnvHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = getEnvAsInt(EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvSeed, v)
		}
		cfg.HasSeed = true
	}
	cfg.PNGPath = getEnvWithDefault(EnvPNG, cfg.PNGPath)
	if cfg.CellPixels, err = getEnvAsInt(EnvCellPixels, cfg.CellPixels); err != nil {
		return Config{}, err
	}
	if cfg.Animate, err = getEnvAsBool(EnvAnimate, cfg.Animate); err != nil {
		return Config{}, err
	}
	if cfg.Color, err = getEnvAsBool(EnvColor, cfg.Color); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv(EnvFrameDelay); ok && v != "" {
		if cfg.FrameDelay, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvFrameDelay, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvLogLevel, err)
		}
	}
	cfg.HTTPAddr = getEnvWithDefault(EnvHTTPAddr, cfg.HTTPAddr)

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if err := grid.ValidateDimensions(c.Height, c.Width); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.CellPixels < 1 {
		return fmt.Errorf("%w: cell pixels must be positive, got %d", ErrInvalidConfig, c.CellPixels)
	}
	if c.FrameDelay < 0 {
		return fmt.Errorf("%w: frame delay must not be negative, got %s", ErrInvalidConfig, c.FrameDelay)
	}
	return nil
}

// getEnvWithDefault retrieves an environment variable or returns def if unset.
func getEnvWithDefault(key, def string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return def
}

func getEnvAsInt(key string, def int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, value)
	}
	return n, nil
}

func getEnvAsBool(key string, def bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, key, value)
	}
	return b, nil
}
