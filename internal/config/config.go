package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/jask/calendar/internal/calendar"
)

// Config holds application configuration.
type Config struct {
	UI       UIConfig
	Calendar CalendarConfig
	Log      LogConfig
	Keys     map[string][]string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title     string
	Locale    string
	Mouse     bool
	AltScreen bool `mapstructure:"alt_screen"`
	Print     bool
}

// CalendarConfig holds week layout and timezone settings.
type CalendarConfig struct {
	Timezone   string
	WeekEndsOn string `mapstructure:"week_ends_on"`
}

// LogConfig points the debug log at a file. Empty disables logging.
type LogConfig struct {
	File string
}

// fileConfig is the on-disk TOML layout written by WriteDefault.
type fileConfig struct {
	UI struct {
		Title     string `toml:"title"`
		Locale    string `toml:"locale"`
		Mouse     bool   `toml:"mouse"`
		AltScreen bool   `toml:"alt_screen"`
		Print     bool   `toml:"print"`
	} `toml:"ui"`
	Calendar struct {
		Timezone   string `toml:"timezone"`
		WeekEndsOn string `toml:"week_ends_on"`
	} `toml:"calendar"`
	Log struct {
		File string `toml:"file"`
	} `toml:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		UI: UIConfig{
			Title:     "Calendar App",
			Locale:    "en",
			Mouse:     true,
			AltScreen: true,
		},
		Calendar: CalendarConfig{
			Timezone:   "Local",
			WeekEndsOn: "saturday",
		},
		Keys: map[string][]string{},
	}
}

// Path returns the config file location. CALENDAR_CONFIG wins over
// ~/.config/calendar/config.toml.
func Path() (string, error) {
	if p := os.Getenv("CALENDAR_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "calendar", "config.toml"), nil
}

// Load reads configuration from file and env. Env var overrides use prefix CALENDAR_.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(path)
}

// LoadFile reads path if it exists. A missing or unreadable location means
// the built-in defaults plus env overrides.
func LoadFile(path string) (Config, error) {
	def := Default()
	v := viper.New()
	v.SetDefault("ui.title", def.UI.Title)
	v.SetDefault("ui.locale", def.UI.Locale)
	v.SetDefault("ui.mouse", def.UI.Mouse)
	v.SetDefault("ui.alt_screen", def.UI.AltScreen)
	v.SetDefault("ui.print", def.UI.Print)
	v.SetDefault("calendar.timezone", def.Calendar.Timezone)
	v.SetDefault("calendar.week_ends_on", def.Calendar.WeekEndsOn)
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("CALENDAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Keys == nil {
		c.Keys = map[string][]string{}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the calendar cannot use.
func (c Config) Validate() error {
	if _, err := calendar.ParseWeekday(c.Calendar.WeekEndsOn); err != nil {
		return fmt.Errorf("calendar.week_ends_on: %w", err)
	}
	for action, keys := range c.Keys {
		if len(keys) == 0 {
			return fmt.Errorf("keys.%s: at least one key is required", action)
		}
	}
	return nil
}

// LastWeekday returns the parsed calendar.week_ends_on value.
func (c Config) LastWeekday() time.Weekday {
	d, err := calendar.ParseWeekday(c.Calendar.WeekEndsOn)
	if err != nil {
		return time.Saturday
	}
	return d
}

// Location resolves calendar.timezone. "Local" and "" mean time.Local.
func (c Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Calendar.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return loc, nil
}

const defaultHeader = `# Calendar picker settings.
# Key overrides go in a [keys] table, for example:
#   [keys]
#   next-month = ["n", "pgdown"]

`

// WriteDefault writes a commented default config file to path. It refuses to
// replace an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s: %w", path, os.ErrExist)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(defaultHeader); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(toFile(Default())); err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}
	return nil
}

func toFile(c Config) fileConfig {
	var out fileConfig
	out.UI.Title = c.UI.Title
	out.UI.Locale = c.UI.Locale
	out.UI.Mouse = c.UI.Mouse
	out.UI.AltScreen = c.UI.AltScreen
	out.UI.Print = c.UI.Print
	out.Calendar.Timezone = c.Calendar.Timezone
	out.Calendar.WeekEndsOn = c.Calendar.WeekEndsOn
	out.Log.File = c.Log.File
	return out
}
