package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
)

type LogConfig struct {
	Level  string `toml:"level"`
	Prefix string `toml:"prefix"`
}

type ImageConfig struct {
	// ThreadSafe is the default locking mode for images created by hosts
	// that do not pick one explicitly.
	ThreadSafe bool `toml:"thread_safe"`
}

// Config is the optional host configuration. The format registry and the
// sparse tracker never read it; it only tunes the ambient services.
type Config struct {
	Log    LogConfig   `toml:"log"`
	Images ImageConfig `toml:"images"`
}

var current atomic.Pointer[Config]

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Images: ImageConfig{
			ThreadSafe: true,
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// CurrentConfig returns the configuration last applied, or the defaults.
func CurrentConfig() *Config {
	if c := current.Load(); c != nil {
		return c
	}
	return DefaultConfig()
}

// Apply pushes the logging settings into the package logger and makes c
// the current configuration.
func (c *Config) Apply() error {
	if c.Log.Level != "" {
		if err := SetLogLevel(c.Log.Level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
		}
	}
	if c.Log.Prefix != "" {
		SetLogPrefix(c.Log.Prefix)
	}
	current.Store(c)
	return nil
}

// WatchConfig reloads the file each time it is written and hands the new
// configuration to onChange. It returns once ctx is done. Files that fail to
// parse are logged and skipped.
func WatchConfig(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace the file, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != target || e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := LoadConfig(path)
			if err != nil {
				LogWarn("config reload skipped: %s", err)
				continue
			}
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			LogWarn("config watcher error: %s", err)
		}
	}
}
