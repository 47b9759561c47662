// Package render defines the interfaces the game core needs from a
// graphics backend. The core never touches the underlying engine
// directly, so backends can be swapped without changing game logic.
package render

import "image/color"

// Renderer is the drawing surface API.
type Renderer interface {
	// Shape operations.
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text operations.
	DrawText(dst Image, text string, x, y int, clr color.Color)
	MeasureText(text string) (width, height int)
}

// Image represents a renderable surface.
type Image interface {
	Fill(clr color.Color)
}

// InputManager delivers keyboard and pointer input, edge-triggered so a
// held key produces a single event per press.
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	CursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key the game recognizes.
type Key int

// Key constants.
const (
	KeyA Key = iota
	KeyD
	KeyG // Debug: force loss
	KeyH // Debug: toggle hit box outline
	KeyR // Restart
	KeyW // Debug: force win
	KeyLeft
	KeyRight
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// Game is the interface the engine drives, one Update per tick and one
// Draw per frame.
type Game interface {
	Update() error
	Draw(screen Image)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the window and the frame loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)

	// RunGame blocks, driving the game until it ends.
	RunGame(game Game) error
}
