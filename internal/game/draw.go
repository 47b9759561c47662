package game

import (
	"image/color"
	"math"

	"chosenoffset.com/lightkeeper/internal/raycast"
	"chosenoffset.com/lightkeeper/internal/render"
)

var (
	skyColor     = color.RGBA{A: 0xff} // night sky, black
	wallColorX   = color.RGBA{R: 0x55, G: 0x5e, B: 0x6e, A: 0xff}
	wallColorY   = color.RGBA{R: 0x3c, G: 0x43, B: 0x50, A: 0xff}
	waterColor   = color.RGBA{R: 0x10, G: 0x2a, B: 0x6e, A: 0xff}
	sillColor    = color.RGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff}
	hullColor    = color.RGBA{R: 0x5c, G: 0x40, B: 0x28, A: 0xff}
	lightColor   = color.RGBA{R: 0xff, G: 0xe0, B: 0x40, A: 0xff}
	consoleColor = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// drawScene turns one snapshot into pixels: wall columns from the ray
// sweep, the water band, the light, the bridge console silhouette, and
// the HUD on top.
func (a *App) drawScene(screen render.Image, snap Snapshot) {
	screen.Fill(skyColor)

	a.drawWalls(screen, snap)
	a.drawWater(screen, snap)

	if snap.Light != nil {
		a.renderer.FillCircle(screen,
			float32(snap.Light.X), float32(snap.Light.Y),
			float32(snap.Light.Radius), lightColor)
	}

	a.drawConsole(screen)

	if a.showHitBox && snap.HitBox != nil {
		a.hud.DrawHitBox(screen, snap.HitBox.X, snap.HitBox.Y, snap.HitBox.Size)
	}
	a.hud.DrawClock(screen, snap.ClockDisplay)
	switch snap.Outcome {
	case Lost:
		a.hud.DrawGameOver(screen)
	case Won:
		a.hud.DrawWin(screen)
	}
}

// drawWalls projects each ray sample into a vertical wall column,
// shaded by which grid axis the ray hit. Samples without a hit draw
// nothing, leaving open sky.
func (a *App) drawWalls(screen render.Image, snap Snapshot) {
	width := float64(a.screenWidth)
	colWidth := float32(math.Ceil(a.state.cfg.AngularResolution / snap.FOV * width))
	tilt := float64(snap.CameraTilt)
	leftEdge := snap.PlayerAngle - snap.FOV/2

	for _, sample := range snap.Rays {
		if !sample.Hit || sample.Distance <= 0 {
			continue
		}
		height := a.state.cfg.WallModelHeight / sample.Distance
		top := float64(a.screenHeight)/2 - height/2 + tilt
		left := (sample.Angle - leftEdge) / snap.FOV * width

		clr := wallColorX
		if sample.Side == raycast.SideY {
			clr = wallColorY
		}
		a.renderer.FillRect(screen, float32(left), float32(top), colWidth, float32(height), clr)
	}
}

// drawWater lays the sea over the lower part of the view, bobbing with
// the wave tilt, then the window sill and hull bands beneath it.
func (a *App) drawWater(screen render.Image, snap Snapshot) {
	waterTop := float32(a.state.cfg.WaterLevel() + snap.CameraTilt)
	border := float32(a.state.cfg.WindowBorderWidth)
	w := float32(a.screenWidth)
	h := float32(a.screenHeight)

	a.renderer.FillRect(screen, 0, waterTop, w, h-waterTop-2*border, waterColor)
	a.renderer.FillRect(screen, 0, h-2*border, w, border, sillColor)
	a.renderer.FillRect(screen, 0, h-border, w, border, hullColor)
}

// drawConsole draws the fixed foreground silhouette of the bridge
// console the player stands at.
func (a *App) drawConsole(screen render.Image) {
	cx := float32(a.screenWidth / 2)
	a.renderer.FillRect(screen, cx-25, 320, 50, 200, consoleColor)
	a.renderer.FillCircle(screen, cx, 340, 50, consoleColor)
}
