package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/jumpline/internal/config"
	"github.com/dshills/jumpline/internal/renderer/core"
)

// StyleSet holds the concrete styles for the four overlay tags.
type StyleSet struct {
	Primary   core.Style
	Secondary core.Style
	Tertiary  core.Style
	Dim       core.Style
}

// DefaultStyleSet returns the built-in overlay styles.
func DefaultStyleSet() StyleSet {
	return StyleSet{
		Primary:   core.NewStyle(core.ColorFromRGB(0xFF, 0x5F, 0x87)).Bold(),
		Secondary: core.NewStyle(core.ColorFromRGB(0x5F, 0xD7, 0xFF)).Bold(),
		Tertiary:  core.NewStyle(core.ColorFromRGB(0x87, 0xD7, 0xAF)),
		Dim:       core.NewStyle(core.ColorFromRGB(0x62, 0x62, 0x62)).Dim(),
	}
}

// StylesFromConfig resolves the configured hex color tags into a style set.
// Primary and secondary keys render bold; dim text renders faint.
func StylesFromConfig(styles config.Styles) (StyleSet, error) {
	primary, err := core.ColorFromHex(styles.Primary)
	if err != nil {
		return StyleSet{}, fmt.Errorf("primary style: %w", err)
	}
	secondary, err := core.ColorFromHex(styles.Secondary)
	if err != nil {
		return StyleSet{}, fmt.Errorf("secondary style: %w", err)
	}
	tertiary, err := core.ColorFromHex(styles.Tertiary)
	if err != nil {
		return StyleSet{}, fmt.Errorf("tertiary style: %w", err)
	}
	dim, err := core.ColorFromHex(styles.Dim)
	if err != nil {
		return StyleSet{}, fmt.Errorf("dim style: %w", err)
	}

	return StyleSet{
		Primary:   core.NewStyle(primary).Bold(),
		Secondary: core.NewStyle(secondary).Bold(),
		Tertiary:  core.NewStyle(tertiary),
		Dim:       core.NewStyle(dim).Dim(),
	}, nil
}

// convertStyle translates a core style into a tcell style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(
			int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.IsDefault() {
		style = style.Background(tcell.NewRGBColor(
			int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}
	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}
