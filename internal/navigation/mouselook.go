package navigation

import "github.com/Faultbox/panoview/internal/engine/camera"

// MouseLook converts mouse drags into yaw/pitch changes.
type MouseLook struct {
	Sensitivity float32 // Degrees per pixel

	camera   *camera.PanoramaCamera
	dragging bool
	lastX    int
	lastY    int
}

// NewMouseLook creates a drag handler for cam.
func NewMouseLook(cam *camera.PanoramaCamera, sensitivity float32) *MouseLook {
	return &MouseLook{Sensitivity: sensitivity, camera: cam}
}

// Press records the reference cursor position and starts a drag.
func (m *MouseLook) Press(x, y int) {
	m.dragging = true
	m.lastX = x
	m.lastY = y
}

// Release ends the current drag.
func (m *MouseLook) Release() {
	m.dragging = false
}

// Dragging reports whether a drag is in progress.
func (m *MouseLook) Dragging() bool {
	return m.dragging
}

// Move applies the delta since the last reference position.
// Returns true when the camera changed and a redraw is needed.
func (m *MouseLook) Move(x, y int) bool {
	if !m.dragging {
		return false
	}
	dx := float32(x - m.lastX)
	dy := float32(y - m.lastY)
	m.lastX = x
	m.lastY = y

	m.camera.Rotate(dx*m.Sensitivity, dy*m.Sensitivity)
	return true
}
