package constants

// Pixel geometry
const (
	// PixelWidth is the number of terminal columns one canvas pixel occupies
	PixelWidth = 2
)

// Dialog Layout Constants
const (
	// ToolbarWidth and ToolbarHeight size the tool selector panel
	ToolbarWidth  = 4
	ToolbarHeight = 4

	// ToolbarLeft is the toolbar's column offset from the left edge
	ToolbarLeft = 2

	// DialogBottomOffset is how many rows above the bottom edge both panels start
	DialogBottomOffset = 5

	// ToolbarIconColumn is the icon's column offset inside the toolbar
	ToolbarIconColumn = 2

	// ToolbarPaintbrushRow and ToolbarBucketRow are the tool rows inside the toolbar
	ToolbarPaintbrushRow = 1
	ToolbarBucketRow     = 2

	// PaletteWidth and PaletteHeight size the swatch panel
	PaletteWidth  = 24
	PaletteHeight = 4

	// PaletteMarginX and PaletteMarginY offset the swatch grid inside the palette
	PaletteMarginX = 2
	PaletteMarginY = 1

	// SwatchWidth is the number of terminal columns per swatch
	SwatchWidth = 2
)

// Toolbar icons
const (
	IconPaintbrush = "🖌️"
	IconBucket     = "🪣"

	// ASCII fallbacks for terminals without emoji glyphs
	IconPaintbrushASCII = "B"
	IconBucketASCII     = "F"
)

// Event Loop
const (
	// EventQueueSize buffers terminal events between the poller and the loop
	EventQueueSize = 256
)
