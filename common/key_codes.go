package common

// Virtual key codes used by the showcase viewer.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyR     = 82  // R key (ASCII): reset the active controller
	KeyP     = 80  // P key (ASCII): toggle profiler output
	KeySpace = 32  // Spacebar (ASCII): jump to the next waypoint
	KeyEsc   = 256 // Escape key (GLFW)
	KeyTab   = 258 // Tab key (GLFW): swap scroll tour and orbit view

	KeyUp    = 265 // Up arrow (GLFW): scroll backward, or orbit up
	KeyDown  = 264 // Down arrow (GLFW): scroll forward, or orbit down
	KeyLeft  = 263 // Left arrow (GLFW): orbit left
	KeyRight = 262 // Right arrow (GLFW): orbit right

	KeyHome = 268 // Home (GLFW): jump to the start of the tour
	KeyEnd  = 269 // End (GLFW): jump to the end of the tour
)
