// Package navigation turns held keys and mouse drags into camera motion.
package navigation

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/panoview/internal/engine/camera"
)

// Action is a logical navigation command bound to one or more keys.
type Action int

const (
	MoveForward Action = iota
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	ZoomIn
	ZoomOut
)

var actionNames = [...]string{
	MoveForward: "forward",
	MoveBack:    "back",
	MoveLeft:    "left",
	MoveRight:   "right",
	MoveUp:      "up",
	MoveDown:    "down",
	ZoomIn:      "zoom-in",
	ZoomOut:     "zoom-out",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Held reports whether any key bound to an action is currently down.
type Held interface {
	Held(Action) bool
}

// Settings holds per-tick step sizes.
type Settings struct {
	MoveSpeed         float32 // Units per tick
	ZoomStep          float32 // Degrees per tick
	RecenterOnZoomOut bool
}

// DefaultSettings returns the stock step sizes.
func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:         0.2,
		ZoomStep:          1,
		RecenterOnZoomOut: true,
	}
}

// TickResult describes what a tick changed.
type TickResult struct {
	// ProjectionDirty is set whenever a zoom key was processed.
	ProjectionDirty bool
	// Redraw is always set: every tick requests a frame.
	Redraw bool
}

// Navigator integrates held keys into camera state at a fixed rate.
type Navigator struct {
	settings Settings
	camera   *camera.PanoramaCamera
}

// New creates a navigator driving cam.
func New(cam *camera.PanoramaCamera, s Settings) *Navigator {
	return &Navigator{settings: s, camera: cam}
}

// Tick advances the camera by one step. Directions come from the yaw at the
// start of the tick.
func (n *Navigator) Tick(held Held) TickResult {
	c := n.camera
	speed := n.settings.MoveSpeed
	forward := c.Forward().Mul(speed)
	right := c.Right().Mul(speed)
	up := mgl32.Vec3{0, speed, 0}

	if held.Held(MoveForward) {
		c.Move(forward)
	}
	if held.Held(MoveBack) {
		c.Move(forward.Mul(-1))
	}
	if held.Held(MoveLeft) {
		c.Move(right.Mul(-1))
	}
	if held.Held(MoveRight) {
		c.Move(right)
	}
	if held.Held(MoveDown) {
		c.Move(up.Mul(-1))
	}
	if held.Held(MoveUp) {
		c.Move(up)
	}

	res := TickResult{Redraw: true}

	if held.Held(ZoomIn) {
		c.Zoom(-n.settings.ZoomStep)
		res.ProjectionDirty = true
	}
	if held.Held(ZoomOut) {
		c.Zoom(n.settings.ZoomStep)
		res.ProjectionDirty = true
		// Zoom-out also snaps back to the centre; zoom-in does not.
		if n.settings.RecenterOnZoomOut {
			c.Recenter()
		}
	}

	return res
}

// HeldSet is a simple Held backed by a set of actions.
type HeldSet map[Action]bool

// Held implements Held.
func (s HeldSet) Held(a Action) bool {
	return s[a]
}
