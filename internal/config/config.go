// Package config loads taskmenu's own settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"

	"taskmenu/internal/model"
)

// EnvPath names the environment variable that overrides DefaultPath.
const EnvPath = "TASKMENU_CONFIG"

type Config struct {
	UI      UIConfig      `toml:"ui"`
	Launch  LaunchConfig  `toml:"launch"`
	Logging LoggingConfig `toml:"logging"`
	Update  UpdateConfig  `toml:"update"`
}

type UIConfig struct {
	TickRate string `toml:"tick_rate"`
	Backend  string `toml:"backend"` // bubbletea | tcell
}

type LaunchConfig struct {
	Enabled bool   `toml:"enabled"`
	Program string `toml:"program"`
	Shell   string `toml:"shell"` // "" | sh | nu
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// UpdateConfig names the GitHub repository --update checks, as "owner/name".
type UpdateConfig struct {
	Repo string `toml:"repo"`
}

// ReleaseRepo splits update.repo. ok is false when no repository is set.
func (u UpdateConfig) ReleaseRepo() (owner, name string, ok bool) {
	owner, name, found := strings.Cut(strings.TrimSpace(u.Repo), "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return owner, name, true
}

func Default() Config {
	return Config{
		UI: UIConfig{
			TickRate: "250ms",
			Backend:  "bubbletea",
		},
		Launch: LaunchConfig{
			Enabled: true,
			Program: model.DefaultTaskProgram,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath is $TASKMENU_CONFIG, else config.toml under the user config dir.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "taskmenu", "config.toml"), nil
}

// Load overlays the file at path on defaults. A missing or empty file leaves
// the defaults untouched.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	d, err := time.ParseDuration(strings.TrimSpace(c.UI.TickRate))
	if err != nil {
		return fmt.Errorf("invalid ui.tick_rate: %q", c.UI.TickRate)
	}
	if d <= 0 {
		return fmt.Errorf("ui.tick_rate must be positive: %q", c.UI.TickRate)
	}

	switch c.UI.Backend {
	case "bubbletea", "tcell":
	default:
		return fmt.Errorf("invalid ui.backend: %q", c.UI.Backend)
	}

	if strings.TrimSpace(c.Launch.Program) == "" {
		return errors.New("launch.program is required")
	}
	switch c.Launch.Shell {
	case "", "sh", "nu":
	default:
		return fmt.Errorf("invalid launch.shell: %q", c.Launch.Shell)
	}

	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}

	if strings.TrimSpace(c.Update.Repo) != "" {
		if _, _, ok := c.Update.ReleaseRepo(); !ok {
			return fmt.Errorf("invalid update.repo: %q (want owner/name)", c.Update.Repo)
		}
	}

	return nil
}

// TickDuration is the parsed ui.tick_rate. Call it on a validated config.
func (c Config) TickDuration() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.UI.TickRate))
	if err != nil || d <= 0 {
		return 250 * time.Millisecond
	}
	return d
}
