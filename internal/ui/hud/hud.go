// Package hud draws the text overlay: the remaining game time, the
// terminal banners, and the debug hit box outline.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/lightkeeper/internal/render"
)

var (
	clockColor = color.RGBA{R: 0xff, A: 0xff}
	lossColor  = color.RGBA{R: 0xff, A: 0xff}
	winColor   = color.RGBA{G: 0xc8, A: 0xff}
	boxColor   = color.RGBA{R: 0xff, A: 0xff}
)

// HUD renders the fixed overlay elements for one screen size.
type HUD struct {
	renderer     render.Renderer
	screenWidth  int
	screenHeight int
}

// New creates a HUD bound to a renderer and screen size.
func New(r render.Renderer, screenWidth, screenHeight int) *HUD {
	return &HUD{renderer: r, screenWidth: screenWidth, screenHeight: screenHeight}
}

// DrawClock shows the remaining time in the upper right area.
func (h *HUD) DrawClock(screen render.Image, display string) {
	x := h.screenWidth / 6 * 4
	y := h.screenHeight / 12
	h.renderer.DrawText(screen, fmt.Sprintf("Time Remaining: %s", display), x, y, clockColor)
}

// DrawGameOver shows the loss banner with the restart hint.
func (h *HUD) DrawGameOver(screen render.Image) {
	h.drawCentered(screen, "GAME OVER", h.screenHeight/2-30, lossColor)
	h.drawCentered(screen, "Press 'r' to restart", h.screenHeight/2+10, lossColor)
}

// DrawWin shows the win banner with the restart hint.
func (h *HUD) DrawWin(screen render.Image) {
	h.drawCentered(screen, "You WIN!", h.screenHeight/2-30, winColor)
	h.drawCentered(screen, "Press 'r' to restart", h.screenHeight/2+10, winColor)
}

// DrawHitBox outlines the interaction box. Debug only.
func (h *HUD) DrawHitBox(screen render.Image, centerX, centerY, size float64) {
	half := float32(size / 2)
	h.renderer.StrokeRect(screen,
		float32(centerX)-half, float32(centerY)-half,
		float32(size), float32(size), 1, boxColor)
}

func (h *HUD) drawCentered(screen render.Image, text string, y int, clr color.Color) {
	w, _ := h.renderer.MeasureText(text)
	h.renderer.DrawText(screen, text, (h.screenWidth-w)/2, y, clr)
}
