package main

import (
	"github.com/gekko3d/fountain"
)

// scriptModule stands in for a window: it pushes a click every few frames,
// walking across the lower half of the viewport and alternating buttons.
type scriptModule struct {
	every uint64
}

type script struct {
	every uint64
	n     int
}

func (m scriptModule) Install(app *fountain.App, cmd *fountain.Commands) {
	cmd.AddResources(&script{every: m.every})
	app.UseSystem(
		fountain.System(scriptSystem).
			InStage(fountain.Prelude),
	)
}

func scriptSystem(s *script, t *fountain.Time, input *fountain.Input, view *fountain.View) {
	if s.every == 0 || (t.Frame-1)%s.every != 0 {
		return
	}
	w, h := float64(view.Width), float64(view.Height)
	x := w * (0.2 + 0.6*float64(s.n%5)/4)
	y := h * 0.75

	button := fountain.MouseButtonLeft
	if s.n%4 == 3 {
		button = fountain.MouseButtonRight
	}
	input.PushClick(x, y, button)
	s.n++
}
