package game

import (
	"chosenoffset.com/lightkeeper/internal/render"
	"chosenoffset.com/lightkeeper/internal/ui/hud"
)

// App wires the round state to a render backend: it polls input,
// advances the state once per engine tick, and draws snapshots. It
// implements render.Game.
type App struct {
	state    *State
	renderer render.Renderer
	input    render.InputManager
	hud      *hud.HUD

	screenWidth  int
	screenHeight int

	showHitBox bool
}

// NewApp builds the frame driver around a constructed round.
func NewApp(state *State, renderer render.Renderer, input render.InputManager) *App {
	return &App{
		state:        state,
		renderer:     renderer,
		input:        input,
		hud:          hud.New(renderer, state.cfg.ScreenWidth, state.cfg.ScreenHeight),
		screenWidth:  state.cfg.ScreenWidth,
		screenHeight: state.cfg.ScreenHeight,
	}
}

// Update handles the frame's input events, then advances the state one
// step. Events are delivered between steps; the last event wins.
func (a *App) Update() error {
	if a.input.IsKeyJustPressed(render.KeyRight) || a.input.IsKeyJustPressed(render.KeyD) {
		a.state.OnRotateInput(RotateRight)
	} else if a.input.IsKeyJustPressed(render.KeyLeft) || a.input.IsKeyJustPressed(render.KeyA) {
		a.state.OnRotateInput(RotateLeft)
	}

	if a.input.IsKeyJustPressed(render.KeyR) && a.state.Outcome() != Ongoing {
		a.state.Reset()
	}

	// Debug keys.
	if a.input.IsKeyJustPressed(render.KeyH) {
		a.showHitBox = !a.showHitBox
	}
	if a.input.IsKeyJustPressed(render.KeyG) {
		a.state.ForceLoss()
	}
	if a.input.IsKeyJustPressed(render.KeyW) {
		a.state.ForceWin()
	}

	if a.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := a.input.CursorPosition()
		a.state.OnPointerPress(float64(x), float64(y))
	}

	a.state.Step()
	return nil
}

// Draw renders the current snapshot.
func (a *App) Draw(screen render.Image) {
	a.drawScene(screen, a.state.Snapshot())
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenWidth, a.screenHeight
}
