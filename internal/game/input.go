package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is everything the simulation needs from the player for one tick.
// The live game fills it from Ebiten; tests and the headless report script it.
type Input struct {
	Forward, Back bool
	Left, Right   bool
	Jump          bool
	Fire          bool
	LookDX        float64 // mouse motion in pixels since the previous tick
	LookDY        float64
}

// moveAxes returns the forward and strafe axes in [-1, 1].
func (in Input) moveAxes() (fwd, strafe float64) {
	if in.Forward {
		fwd++
	}
	if in.Back {
		fwd--
	}
	if in.Right {
		strafe++
	}
	if in.Left {
		strafe--
	}
	return fwd, strafe
}

// mousePoller turns absolute cursor positions into per-tick deltas while the
// cursor is captured. Clicking the window captures it; Escape releases it.
type mousePoller struct {
	lastX, lastY int
	primed       bool // lastX/lastY hold a valid captured sample
}

// captured reports whether the cursor is locked to the window.
func captured() bool {
	return ebiten.CursorMode() == ebiten.CursorModeCaptured
}

// Poll reads the keyboard and mouse. It never reports a fire on the click
// that captures the cursor.
func (m *mousePoller) Poll() Input {
	var in Input

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && captured() {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		m.primed = false
	}
	if !captured() {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		}
		m.primed = false
		return in
	}

	in.Forward = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	in.Back = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	in.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	mx, my := ebiten.CursorPosition()
	if m.primed {
		in.LookDX = float64(mx - m.lastX)
		in.LookDY = float64(my - m.lastY)
	}
	m.lastX, m.lastY = mx, my
	m.primed = true
	return in
}
