// Package config parses tabset.toml application configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up from the working directory.
const FileName = "tabset.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// ErrNotFound is returned by Load when no tabset.toml exists in the working
// directory or any parent. Callers usually fall back to Defaults.
var ErrNotFound = errors.New("config: " + FileName + " not found")

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level tabset.toml configuration.
type Config struct {
	TUI           TUIConfig           `toml:"tui"`
	Watch         WatchConfig         `toml:"watch"`
	Log           LogConfig           `toml:"log"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// TUIConfig controls the terminal UI appearance and input.
type TUIConfig struct {
	AccentColor   string `toml:"accent_color"`
	Framed        bool   `toml:"framed"` // frame the widget even if the document does not ask for it
	Mouse         bool   `toml:"mouse"`
	AltScreen     bool   `toml:"alt_screen"`
	MarkdownStyle string `toml:"markdown_style"` // glamour style: "dark", "light", "notty"
}

// WatchConfig controls reloading the document when it changes on disk.
type WatchConfig struct {
	Enabled    bool `toml:"enabled"`
	DebounceMS int  `toml:"debounce_ms"` // 0 uses the watcher default
}

// LogConfig controls the debug log. The TUI owns stdout, so logs go to a file.
type LogConfig struct {
	Path  string `toml:"path"`  // empty = logging disabled
	Level string `toml:"level"` // debug, info, warn, error
}

// NotificationsConfig controls webhook/ntfy.sh notifications.
type NotificationsConfig struct {
	URL        string `toml:"url"`
	OnActivate bool   `toml:"on_activate"`
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}
	switch c.TUI.MarkdownStyle {
	case "", "dark", "light", "notty", "ascii":
	default:
		errs = append(errs, fmt.Errorf("tui.markdown_style must be one of dark, light, notty, ascii"))
	}

	if c.Watch.DebounceMS < 0 {
		errs = append(errs, fmt.Errorf("watch.debounce_ms must be >= 0"))
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error"))
	}

	if c.Notifications.URL != "" {
		u, parseErr := url.ParseRequestURI(c.Notifications.URL)
		if parseErr != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("notifications.url must be a valid http or https URL"))
		}
	}

	return errors.Join(errs...)
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		TUI: TUIConfig{
			AccentColor:   DefaultAccentColor,
			Framed:        false,
			Mouse:         true,
			AltScreen:     true,
			MarkdownStyle: "dark",
		},
		Watch: WatchConfig{
			Enabled:    false,
			DebounceMS: 300,
		},
		Log: LogConfig{
			Path:  "",
			Level: "info",
		},
		Notifications: NotificationsConfig{
			URL:        "",
			OnActivate: true,
		},
	}
}

// Load reads tabset.toml from the given path. If path is empty, it walks up
// from the current working directory looking for tabset.toml and returns
// ErrNotFound if there is none. Unknown keys (likely typos) and invalid
// values are errors.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadOrDefault is Load that treats a missing file as the default config.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		d := Defaults()
		return &d, nil
	}
	return cfg, err
}

// findConfig walks up from the current directory looking for tabset.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched up from %s)", ErrNotFound, dir)
		}
		dir = parent
	}
}

// InitFile writes a default tabset.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	content := `# tabset.toml - tabset configuration
# Place this file in the directory you run tabset from (or any parent).

[tui]
accent_color = "#7D56F4"  # hex color for the frame and active title
framed = false            # force the framed look for every document
mouse = true              # click titles to activate them
alt_screen = true
markdown_style = "dark"   # dark, light, notty, ascii

[watch]
enabled = false   # reload and remount when the document changes
debounce_ms = 300

[log]
path = ""         # debug log file (empty = disabled)
level = "info"    # debug, info, warn, error

[notifications]
url = ""           # ntfy.sh topic URL or any HTTP webhook (empty = disabled)
on_activate = true # notify when a tab is activated
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
