package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconCopy     = "📋"
	IconReload   = "⟳"
)

// Text fragments
const (
	DashPlaceholder    = "—"
	WindowLabelFormat  = "%g – %g %%"
	ModulusLabelFormat = "%.0f MPa"
	EntryFloatFormat   = 'g'
)

// Window and chart sizing
const (
	WindowWidth  float32 = 1300
	WindowHeight float32 = 800

	ChartWidth  = 1000
	ChartHeight = 700

	ControlPanelWidth float32 = 260
)

// Layout sizing (result rows)
const (
	WindowLabelWidth  float32 = 120
	ModulusLabelWidth float32 = 90

	RowMinWidth  float32 = 240
	RowMinHeight float32 = 40
)

// Notification sizing and behavior
const (
	NotificationAutoHide = 6 * time.Second
)

// Rendering throttle while a marker is dragged
const (
	DragRenderInterval = 40 * time.Millisecond
)
