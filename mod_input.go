package fountain

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	}
	return "unknown"
}

// Click is a button press at a window coordinate, y growing downward.
type Click struct {
	X, Y   float64
	Button MouseButton
}

// Input collects clicks from whatever owns the window. The app never polls
// devices itself; the host pushes events and systems consume them.
type Input struct {
	MouseX, MouseY float64
	clicks         []Click
	// Dropped counts clicks discarded because nobody consumed them.
	Dropped int
}

func (in *Input) PushClick(x, y float64, button MouseButton) {
	in.MouseX, in.MouseY = x, y
	in.clicks = append(in.clicks, Click{X: x, Y: y, Button: button})
}

// Drain hands over the queued clicks and empties the queue.
func (in *Input) Drain() []Click {
	out := in.clicks
	in.clicks = nil
	return out
}

func (in *Input) Pending() int {
	return len(in.clicks)
}

type InputModule struct{}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).
			InStage(Finale),
	)
}

// inputSystem drops clicks left over at the end of a frame so they do not
// pile up when no consumer is installed.
func inputSystem(input *Input) {
	if n := input.Pending(); n > 0 {
		input.Dropped += n
		input.clicks = input.clicks[:0]
	}
}
