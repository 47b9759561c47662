// Package ebiten implements the render interfaces on top of the Ebiten
// game engine.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"chosenoffset.com/lightkeeper/internal/render"
)

// hudFace is the fixed font used for all HUD text.
var hudFace font.Face = basicfont.Face7x13

// Renderer implements render.Renderer using Ebiten.
type Renderer struct{}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &Renderer{}
}

// FillRect draws a filled rectangle on the destination image.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(dst.(*Image).img, x, y, width, height, clr, false)
}

// StrokeRect draws a rectangle outline on the destination image.
func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(dst.(*Image).img, x, y, width, height, strokeWidth, clr, false)
}

// FillCircle draws a filled circle on the destination image.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(dst.(*Image).img, x, y, radius, clr, true)
}

// DrawText draws text on the destination image. The y coordinate is
// the top of the line, matching the other drawing primitives.
func (r *Renderer) DrawText(dst render.Image, str string, x, y int, clr color.Color) {
	text.Draw(dst.(*Image).img, str, hudFace, x, y+hudFace.Metrics().Ascent.Ceil(), clr)
}

// MeasureText measures the rendered width and height of text.
func (r *Renderer) MeasureText(str string) (width, height int) {
	bounds := text.BoundString(hudFace, str)
	return bounds.Dx(), hudFace.Metrics().Height.Ceil()
}

// Image wraps an ebiten.Image to implement the render.Image interface.
type Image struct {
	img *ebiten.Image
}

// Fill fills the entire image with the given color.
func (i *Image) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// WrapImage wraps an existing ebiten.Image as a render.Image. This is
// how the engine hands the screen to the game's Draw.
func WrapImage(img *ebiten.Image) render.Image {
	return &Image{img: img}
}

// InputManager implements render.InputManager using Ebiten.
type InputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &InputManager{}
}

// IsKeyJustPressed returns whether the key was pressed this frame.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// CursorPosition returns the current cursor position.
func (m *InputManager) CursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonJustPressed returns whether the button was pressed this
// frame.
func (m *InputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyA:
		return ebiten.KeyA
	case render.KeyD:
		return ebiten.KeyD
	case render.KeyG:
		return ebiten.KeyG
	case render.KeyH:
		return ebiten.KeyH
	case render.KeyR:
		return ebiten.KeyR
	case render.KeyW:
		return ebiten.KeyW
	case render.KeyLeft:
		return ebiten.KeyArrowLeft
	case render.KeyRight:
		return ebiten.KeyArrowRight
	default:
		return 0
	}
}

// mouseButtonToEbiten converts a render.MouseButton to an
// ebiten.MouseButton.
func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	default:
		return ebiten.MouseButtonLeft
	}
}

// Engine implements render.Engine using Ebiten.
type Engine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &Engine{}
}

// SetWindowSize sets the window size in pixels.
func (e *Engine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *Engine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// RunGame runs the game loop with the provided game.
func (e *Engine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	return a.game.Update()
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(WrapImage(screen))
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
