// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractConfig holds settings for the extraction stage.
type ExtractConfig struct {
	// TabWidth is the number of spaces a tab character expands to when
	// indentation is normalized (default 4).
	TabWidth int `json:"tab_width" yaml:"tab_width"`
}

// RGB is a color in the 0-255 range per channel.
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// Theme holds the syntax-highlighting colors. The defaults follow the
// classic vendor editor scheme: keywords blue, comments green.
type Theme struct {
	Keyword RGB `json:"keyword" yaml:"keyword"`
	Comment RGB `json:"comment" yaml:"comment"`
	Text    RGB `json:"text" yaml:"text"`
}

// RenderConfig holds settings for the PDF rendering stage.
type RenderConfig struct {
	// Title is the document title shown on the title page.
	Title string `json:"title" yaml:"title"`

	// HeadingFont is the font family for headings and the ToC.
	HeadingFont string `json:"heading_font" yaml:"heading_font"`

	// CodeFont is the monospaced font family for source text.
	CodeFont string `json:"code_font" yaml:"code_font"`

	// CodeFontSize is the source text size in points.
	CodeFontSize float64 `json:"code_font_size" yaml:"code_font_size"`

	// MarginMM is the page margin on all sides, in millimeters.
	MarginMM float64 `json:"margin_mm" yaml:"margin_mm"`

	// Theme holds the highlighting colors.
	Theme Theme `json:"theme" yaml:"theme"`

	// ThemeFile optionally names a YAML file that overrides Theme.
	ThemeFile string `json:"theme_file,omitempty" yaml:"theme_file,omitempty"`

	// Keywords optionally replaces the built-in keyword list.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Config groups all stage configurations for one run.
type Config struct {
	Extract ExtractConfig `json:"extract" yaml:"extract"`
	Render  RenderConfig  `json:"render" yaml:"render"`
}

// DefaultConfig returns the configuration used when no config file is
// present. A zero-config run is the normal case.
func DefaultConfig() Config {
	return Config{
		Extract: ExtractConfig{
			TabWidth: 4,
		},
		Render: RenderConfig{
			Title:        "TwinCAT Project Documentation",
			HeadingFont:  "Helvetica",
			CodeFont:     "Courier",
			CodeFontSize: 7,
			MarginMM:     20,
			Theme: Theme{
				Keyword: RGB{R: 0, G: 0, B: 255},
				Comment: RGB{R: 0, G: 128, B: 0},
				Text:    RGB{R: 0, G: 0, B: 0},
			},
		},
	}
}
