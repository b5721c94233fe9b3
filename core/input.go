package core

// Key is a keyboard key the tutorial programs react to. Keys the windowing
// backends do not map come through as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyR
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyTab
)

// Event is something reported by Window.PollEvents.
type Event interface {
	isEvent()
}

// QuitEvent is sent when the user asks to close the window.
type QuitEvent struct{}

// KeyEvent reports a key going down or up. Auto repeat is reported as
// another press.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// MouseMotionEvent carries the cursor position in window coordinates, y
// growing downwards.
type MouseMotionEvent struct {
	X, Y float64
}

// ScrollEvent carries a wheel offset, positive away from the user.
type ScrollEvent struct {
	DX, DY float64
}

// ResizeEvent carries the new framebuffer size in pixels.
type ResizeEvent struct {
	Width, Height int
}

func (QuitEvent) isEvent()        {}
func (KeyEvent) isEvent()         {}
func (MouseMotionEvent) isEvent() {}
func (ScrollEvent) isEvent()      {}
func (ResizeEvent) isEvent()      {}

// MouseTracker turns absolute cursor positions into offsets. The first
// position after construction or Reset produces no movement, so the camera
// does not jump when the cursor enters the window.
type MouseTracker struct {
	lastX, lastY float64
	primed       bool
}

// Offset returns the movement since the previous position. The y offset is
// reversed since window coordinates go from top to bottom.
func (m *MouseTracker) Offset(x, y float64) (float32, float32) {
	if !m.primed {
		m.lastX = x
		m.lastY = y
		m.primed = true
	}

	dx := float32(x - m.lastX)
	dy := float32(m.lastY - y)
	m.lastX = x
	m.lastY = y
	return dx, dy
}

// Reset forgets the last position.
func (m *MouseTracker) Reset() {
	m.primed = false
}

// KeyState records which keys are held down.
type KeyState struct {
	held map[Key]bool
}

// Apply updates the state from a key event.
func (k *KeyState) Apply(e KeyEvent) {
	if k.held == nil {
		k.held = make(map[Key]bool)
	}
	if e.Pressed {
		k.held[e.Key] = true
	} else {
		delete(k.held, e.Key)
	}
}

// Held reports whether key is currently down.
func (k *KeyState) Held(key Key) bool {
	return k.held[key]
}

// movementKeys maps both WASD and the arrow keys onto camera directions.
var movementKeys = []struct {
	key       Key
	direction Direction
}{
	{KeyW, Forward},
	{KeyUp, Forward},
	{KeyS, Backward},
	{KeyDown, Backward},
	{KeyA, Left},
	{KeyLeft, Left},
	{KeyD, Right},
	{KeyRight, Right},
}

// CameraController feeds window events into a Camera. Mouse and scroll
// events turn and zoom immediately; movement keys are applied once per
// frame by Update, scaled by the frame time.
type CameraController struct {
	Camera *Camera

	// ConstrainPitch is passed through to Camera.ProcessMouseMovement.
	ConstrainPitch bool

	keys  KeyState
	mouse MouseTracker
}

// NewCameraController returns a controller with pitch constrained.
func NewCameraController(camera *Camera) *CameraController {
	return &CameraController{
		Camera:         camera,
		ConstrainPitch: true,
	}
}

// HandleEvent reports whether the event was used.
func (c *CameraController) HandleEvent(e Event) bool {
	switch e := e.(type) {
	case KeyEvent:
		for _, m := range movementKeys {
			if m.key == e.Key {
				c.keys.Apply(e)
				return true
			}
		}
	case MouseMotionEvent:
		dx, dy := c.mouse.Offset(e.X, e.Y)
		c.Camera.ProcessMouseMovement(dx, dy, c.ConstrainPitch)
		return true
	case ScrollEvent:
		c.Camera.ProcessMouseScroll(float32(e.DY))
		return true
	}
	return false
}

// Update moves the camera in every direction with a held key. Holding two
// keys for the same direction does not double the speed.
func (c *CameraController) Update(deltaTime float32) {
	var moved [Right + 1]bool
	for _, m := range movementKeys {
		if c.keys.Held(m.key) && !moved[m.direction] {
			moved[m.direction] = true
			c.Camera.ProcessKeyboard(m.direction, deltaTime)
		}
	}
}

// ResetMouse makes the next motion event a reference point only. Call it
// after the cursor is captured or released.
func (c *CameraController) ResetMouse() {
	c.mouse.Reset()
}
