package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a keyboard movement relative to where the camera looks.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Camera defaults.
const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45.0

	maxPitch float32 = 89.0
	minZoom  float32 = 1.0
	maxZoom  float32 = 45.0
)

// Camera is a first person fly camera driven by Euler angles. Angles are in
// degrees.
type Camera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32

	// derived from yaw and pitch by updateVectors
	front mgl32.Vec3
	up    mgl32.Vec3
	right mgl32.Vec3

	Speed       float32
	Sensitivity float32
	zoom        float32
}

// CameraOption overrides one of the camera defaults.
type CameraOption func(*Camera)

func WithWorldUp(up mgl32.Vec3) CameraOption {
	return func(c *Camera) { c.worldUp = up }
}

// WithYawPitch sets the starting angles in degrees. Pitch is clamped to
// the same range as mouse movement.
func WithYawPitch(yaw, pitch float32) CameraOption {
	return func(c *Camera) {
		c.yaw = yaw
		c.pitch = pitch
	}
}

func WithSpeed(speed float32) CameraOption {
	return func(c *Camera) { c.Speed = speed }
}

func WithSensitivity(sensitivity float32) CameraOption {
	return func(c *Camera) { c.Sensitivity = sensitivity }
}

// NewCamera returns a camera at position looking down -Z.
func NewCamera(position mgl32.Vec3, opts ...CameraOption) *Camera {
	c := &Camera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 1, 0},
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		zoom:        DefaultZoom,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.pitch = mgl32.Clamp(c.pitch, -maxPitch, maxPitch)
	c.updateVectors()
	return c
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }

// Zoom is the vertical field of view in degrees.
func (c *Camera) Zoom() float32 { return c.zoom }

// ViewMatrix returns the world to camera transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns a perspective projection using the zoom as the
// field of view.
func (c *Camera) ProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, near, far)
}

// ProcessKeyboard moves the camera for deltaTime seconds in direction.
func (c *Camera) ProcessKeyboard(direction Direction, deltaTime float32) {
	velocity := c.Speed * deltaTime
	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by a cursor offset. With
// constrainPitch the camera cannot look past straight up or down.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	c.yaw += xoffset * c.Sensitivity
	c.pitch += yoffset * c.Sensitivity

	if constrainPitch {
		c.pitch = mgl32.Clamp(c.pitch, -maxPitch, maxPitch)
	}

	c.updateVectors()
}

// ProcessMouseScroll zooms in for positive offsets.
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.zoom = mgl32.Clamp(c.zoom-yoffset, minZoom, maxZoom)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
