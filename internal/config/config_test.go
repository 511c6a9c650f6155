package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFileUsesDefaultsWithoutWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Calendar App", cfg.UI.Title)
	require.Equal(t, "en", cfg.UI.Locale)
	require.True(t, cfg.UI.Mouse)
	require.True(t, cfg.UI.AltScreen)
	require.False(t, cfg.UI.Print)
	require.Equal(t, time.Saturday, cfg.LastWeekday())

	_, err = os.Stat(filepath.Dir(path))
	require.ErrorIs(t, err, os.ErrNotExist, "loading must not create files")
}

func TestLoadFileUnderRegularFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	cfg, err := LoadFile(filepath.Join(blocker, "config.toml"))
	require.NoError(t, err)
	require.Equal(t, Default().UI, cfg.UI)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "week_ends_on = \"saturday\"")
	require.Contains(t, string(data), "[ui]")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, Default().UI, cfg.UI)

	require.ErrorIs(t, WriteDefault(path), os.ErrExist)
}

func TestLoadFileReadsValuesAndKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := strings.Join([]string{
		"[ui]",
		`title = "Dates"`,
		`locale = "de-AT"`,
		"mouse = false",
		"",
		"[calendar]",
		`timezone = "UTC"`,
		`week_ends_on = "sunday"`,
		"",
		"[keys]",
		`next-month = ["n", "pgdown"]`,
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Dates", cfg.UI.Title)
	require.Equal(t, "de-AT", cfg.UI.Locale)
	require.False(t, cfg.UI.Mouse)
	require.Equal(t, time.Sunday, cfg.LastWeekday())
	require.Equal(t, []string{"n", "pgdown"}, cfg.Keys["next-month"])

	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, "UTC", loc.String())
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("CALENDAR_UI_TITLE", "From Env")
	t.Setenv("CALENDAR_UI_PRINT", "true")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "From Env", cfg.UI.Title)
	require.True(t, cfg.UI.Print)
}

func TestLoadUsesConfigEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv("CALENDAR_CONFIG", path)

	got, err := Path()
	require.NoError(t, err)
	require.Equal(t, path, got)

	_, err = Load()
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFileRejectsBadWeekday(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[calendar]\nweek_ends_on = \"someday\"\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "week_ends_on")
}

func TestLocation(t *testing.T) {
	tests := []struct {
		tz      string
		want    string
		wantErr bool
	}{
		{"", "Local", false},
		{"local", "Local", false},
		{"Australia/Melbourne", "Australia/Melbourne", false},
		{"Mars/Olympus", "", true},
	}
	for _, tt := range tests {
		c := Default()
		c.Calendar.Timezone = tt.tz
		loc, err := c.Location()
		if tt.wantErr {
			if err == nil {
				t.Errorf("Location(%q) error = nil, want error", tt.tz)
			}
			continue
		}
		if err != nil {
			t.Errorf("Location(%q) error = %v", tt.tz, err)
			continue
		}
		if loc.String() != tt.want {
			t.Errorf("Location(%q) = %q, want %q", tt.tz, loc.String(), tt.want)
		}
	}
}
