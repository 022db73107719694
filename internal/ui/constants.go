package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconFolder   = "📁"
	IconCopy     = "📋"
	IconUp       = "↑"
	IconDown     = "↓"
)

// Window sizing
const (
	WindowWidth  float32 = 760
	WindowHeight float32 = 620
)

// File dialog filters
var (
	AudioFileExtensions  = []string{".wav", ".flac", ".aif", ".aiff", ".mp3", ".ogg"}
	PresetFileExtensions = []string{".yaml", ".yml"}
)

// VerbosityLevels is the number of -V levels offered besides "default"
const VerbosityLevels = 6
