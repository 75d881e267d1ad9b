package ui

import (
	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
)

// ColorScheme is shared by reference between all widgets of one factory and
// must not be modified once handed out.
type ColorScheme struct {
	BgRegular     colors.Color
	BgActive      colors.Color
	BgPanel       colors.Color
	BorderRegular colors.Color
	BorderActive  colors.Color
	BorderPanel   colors.Color
	TextRegular   colors.Color
	TextActive    colors.Color
	Neutral       colors.Color
}

func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		BgRegular:     colors.RGB(0.76, 0.74, 0.72),
		BgActive:      colors.RGB(0.86, 0.84, 0.82),
		BgPanel:       colors.RGB(0.76, 0.74, 0.72),
		BorderRegular: colors.RGB(0.66, 0.64, 0.62),
		BorderActive:  colors.RGB(0.76, 0.74, 0.72),
		BorderPanel:   colors.RGB(0.66, 0.64, 0.62),
		TextRegular:   colors.RGB(0.0, 0.0, 0.0),
		TextActive:    colors.RGB(0.1, 0.1, 0.0),
		Neutral:       colors.RGB(0.5, 0.5, 0.5),
	}
}

// LayoutScheme holds the spacing rules. Immutable once shared.
type LayoutScheme struct {
	BorderWidth      float32
	WidgetPadding    core.Vec2 // inside buttons and panels
	ContainerSpacing core.Vec2 // gap between box children, X for rows, Y for columns
	DialogSpacing    float32
	FontPath         string
	FontSize         int
}

func DefaultLayoutScheme() *LayoutScheme {
	return &LayoutScheme{
		BorderWidth:      2,
		WidgetPadding:    core.Vec2{X: 8, Y: 4},
		ContainerSpacing: core.Vec2{X: 4, Y: 4},
		DialogSpacing:    8,
		FontPath:         "Roboto-Medium.ttf",
		FontSize:         13,
	}
}
