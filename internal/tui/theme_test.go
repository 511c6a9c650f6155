package tui

import (
	"regexp"
	"testing"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestPaletteColorsAreValidHex(t *testing.T) {
	for _, c := range paletteColors() {
		if !hexColorRegex.MatchString(string(c)) {
			t.Errorf("invalid hex color: %q", c)
		}
	}
}

func TestSemanticAliasesMatchPalette(t *testing.T) {
	tests := []struct {
		name  string
		alias string
		want  string
	}{
		{"accent", string(colorAccent), string(colorBlue)},
		{"focus", string(colorFocus), string(colorLavender)},
		{"date", string(colorDate), string(colorPeach)},
		{"error", string(colorError), string(colorRed)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.alias != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.alias, tt.want)
			}
		})
	}
}
