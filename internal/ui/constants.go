package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Status icons
const (
	IconExempt     = "🟢"
	IconAtRisk     = "🔴"
	IconInProgress = "🟡"
	IconSettings   = "⚙"
)

// Text fragments
const (
	StatusSeparator   = " | "
	EvaluationFormat  = "%s - %s (%d%%)"
	ProgressFormat    = "%d%% | %s: %d%%"
	GradeEntryHint    = "1.0 - 7.0"
	WeightEntryHint   = "1 - 100"
	DefaultGradeText  = "1.0"
	DefaultWeightText = "1"
	DecimalComma      = ","
)

// Status colors
var (
	ColorExempt     = color.RGBA{R: 0x00, G: 0xc8, B: 0x53, A: 0xff}
	ColorAtRisk     = color.RGBA{R: 0xd5, G: 0x00, B: 0x00, A: 0xff}
	ColorInProgress = color.RGBA{R: 0xff, G: 0xab, B: 0x00, A: 0xff}
)

// Layout sizing
const (
	GradeEntryWidth  float32 = 90
	WeightEntryWidth float32 = 70

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 300
)
