package game

// waveOscillator bobs the rendered horizon up and down to fake swell.
// Purely presentational: the tilt feeds the draw layer only.
type waveOscillator struct {
	tilt int
	up   bool
	min  int
	max  int
	step int
}

// advance moves the tilt one step, reversing direction whenever it has
// passed a bound.
func (w *waveOscillator) advance() {
	if w.tilt > w.max || w.tilt < w.min {
		w.up = !w.up
	}
	if w.up {
		w.tilt += w.step
	} else {
		w.tilt -= w.step
	}
}
