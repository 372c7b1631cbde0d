package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Text fragments
const (
	URIPrefix       = "URI: "
	ExceptionPrefix = "Exception: java.lang.IllegalArgumentException: "
)

// Layout sizing
const (
	ThumbWidth     float32 = 100
	ThumbHeight    float32 = 100
	CategoryWidth  float32 = 110
	TermEntryWidth float32 = 180
	ProgressWidth  float32 = 275
)

// Timeouts
const (
	ArtworkLoadTimeout = 20 * time.Second
)
