package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMouseTracker(t *testing.T) {
	var m MouseTracker

	if dx, dy := m.Offset(400, 300); dx != 0 || dy != 0 {
		t.Errorf("first position should give no offset, got %v %v", dx, dy)
	}

	// moving right and down: y offset is reversed
	if dx, dy := m.Offset(410, 320); dx != 10 || dy != -20 {
		t.Errorf("expected (10, -20), got (%v, %v)", dx, dy)
	}

	m.Reset()
	if dx, dy := m.Offset(0, 0); dx != 0 || dy != 0 {
		t.Errorf("position after reset should give no offset, got %v %v", dx, dy)
	}
}

func TestKeyState(t *testing.T) {
	var k KeyState

	if k.Held(KeyW) {
		t.Error("zero KeyState should have nothing held")
	}

	k.Apply(KeyEvent{Key: KeyW, Pressed: true})
	k.Apply(KeyEvent{Key: KeyW, Pressed: true})
	if !k.Held(KeyW) {
		t.Error("W should be held")
	}

	k.Apply(KeyEvent{Key: KeyW, Pressed: false})
	if k.Held(KeyW) {
		t.Error("W should be released")
	}
}

func TestCameraControllerMovement(t *testing.T) {
	c := NewCameraController(NewCamera(mgl32.Vec3{0, 0, 3}))

	if !c.HandleEvent(KeyEvent{Key: KeyW, Pressed: true}) {
		t.Fatal("W should be handled")
	}
	// the arrow key for the same direction does not double the speed
	c.HandleEvent(KeyEvent{Key: KeyUp, Pressed: true})

	c.Update(1.0)
	if !approxVec3(c.Camera.Position(), mgl32.Vec3{0, 0, 0.5}) {
		t.Errorf("expected (0,0,0.5), got %v", c.Camera.Position())
	}

	c.HandleEvent(KeyEvent{Key: KeyW, Pressed: false})
	c.HandleEvent(KeyEvent{Key: KeyUp, Pressed: false})
	c.Update(1.0)
	if !approxVec3(c.Camera.Position(), mgl32.Vec3{0, 0, 0.5}) {
		t.Errorf("camera moved with no keys held: %v", c.Camera.Position())
	}
}

func TestCameraControllerOpposingKeys(t *testing.T) {
	c := NewCameraController(NewCamera(mgl32.Vec3{0, 0, 3}))
	c.HandleEvent(KeyEvent{Key: KeyA, Pressed: true})
	c.HandleEvent(KeyEvent{Key: KeyD, Pressed: true})

	c.Update(1.0)
	if !approxVec3(c.Camera.Position(), mgl32.Vec3{0, 0, 3}) {
		t.Errorf("left and right should cancel, got %v", c.Camera.Position())
	}
}

func TestCameraControllerMouse(t *testing.T) {
	c := NewCameraController(NewCamera(mgl32.Vec3{}))

	c.HandleEvent(MouseMotionEvent{X: 400, Y: 300})
	if c.Camera.Yaw() != -90 || c.Camera.Pitch() != 0 {
		t.Fatalf("first motion should not turn the camera, got yaw %v pitch %v", c.Camera.Yaw(), c.Camera.Pitch())
	}

	// cursor up by 100 pixels looks up 10 degrees
	c.HandleEvent(MouseMotionEvent{X: 400, Y: 200})
	if c.Camera.Pitch() != 10 {
		t.Errorf("expected pitch 10, got %v", c.Camera.Pitch())
	}

	c.HandleEvent(MouseMotionEvent{X: 400, Y: -100000})
	if c.Camera.Pitch() != 89 {
		t.Errorf("expected pitch clamped at 89, got %v", c.Camera.Pitch())
	}
}

func TestCameraControllerScroll(t *testing.T) {
	c := NewCameraController(NewCamera(mgl32.Vec3{}))
	c.HandleEvent(ScrollEvent{DY: 3})
	if c.Camera.Zoom() != 42 {
		t.Errorf("expected zoom 42, got %v", c.Camera.Zoom())
	}
}

func TestCameraControllerIgnoresOtherEvents(t *testing.T) {
	c := NewCameraController(NewCamera(mgl32.Vec3{}))

	for _, e := range []Event{QuitEvent{}, ResizeEvent{Width: 1, Height: 1}, KeyEvent{Key: KeyEscape, Pressed: true}} {
		if c.HandleEvent(e) {
			t.Errorf("%T should not be handled", e)
		}
	}
}
