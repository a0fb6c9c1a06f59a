package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconQueued   = "⏳"
	IconRunning  = "▶"
	IconDone     = "✔"
	IconError    = "❌"
	IconLanguage = "🌐"
	IconDropHint = "⬇"
	IconRemove   = "🗙"
)

// Layout sizing (FileRow / lists)
const (
	StatusLabelWidth float32 = 120

	RowMinWidth  float32 = 360
	RowMinHeight float32 = 44

	WindowWidth  float32 = 640
	WindowHeight float32 = 520

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 440
)

// Progress bar range; runner events carry whole percents
const (
	ProgressMax = 100
)
