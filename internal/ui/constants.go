package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconError    = "❌"
)

// Layout sizing
const (
	RowMinWidth      float32 = 380
	RowDefaultHeight float32 = 40

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 380
)
