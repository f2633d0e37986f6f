// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tcdoc/pkg/types"
)

// LoadTheme reads a YAML theme file. Channels not set in the file default
// to zero, so a theme file always specifies complete colors.
func LoadTheme(path string) (types.Theme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return types.Theme{}, fmt.Errorf("reading theme file: %w", err)
	}
	var theme types.Theme
	if err := yaml.Unmarshal(raw, &theme); err != nil {
		return types.Theme{}, fmt.Errorf("parsing theme file %s: %w", path, err)
	}
	return theme, nil
}

// ApplyThemeFile overlays the theme from cfg.ThemeFile, if set.
func ApplyThemeFile(cfg *types.RenderConfig) error {
	if cfg.ThemeFile == "" {
		return nil
	}
	theme, err := LoadTheme(cfg.ThemeFile)
	if err != nil {
		return err
	}
	cfg.Theme = theme
	return nil
}
