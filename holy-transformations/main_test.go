package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/holy-learngl/core"
)

const epsilon = 1e-5

func approxVec4(a, b mgl32.Vec4) bool {
	return a.Sub(b).Len() < epsilon
}

func TestTransformKeys(t *testing.T) {
	tests := []struct {
		key  core.Key
		want transform
	}{
		{core.KeyQ, transform{rotation: -rotateStep, scale: 1}},
		{core.KeyR, transform{rotation: rotateStep, scale: 1}},
		{core.KeyW, transform{scale: 1 + scaleStep}},
		{core.KeyS, transform{scale: 1 - scaleStep}},
		{core.KeyUp, transform{scale: 1, ty: translateStep}},
		{core.KeyDown, transform{scale: 1, ty: -translateStep}},
		{core.KeyLeft, transform{scale: 1, tx: -translateStep}},
		{core.KeyRight, transform{scale: 1, tx: translateStep}},
	}
	for _, tt := range tests {
		tr := newTransform()
		if !tr.apply(tt.key) {
			t.Errorf("key %v not handled", tt.key)
		}
		if !mgl32.FloatEqual(tr.rotation, tt.want.rotation) || !mgl32.FloatEqual(tr.scale, tt.want.scale) ||
			!mgl32.FloatEqual(tr.tx, tt.want.tx) || !mgl32.FloatEqual(tr.ty, tt.want.ty) {
			t.Errorf("key %v: got %+v, want %+v", tt.key, tr, tt.want)
		}
	}
}

func TestTransformIgnoresOtherKeys(t *testing.T) {
	tr := newTransform()
	if tr.apply(core.KeySpace) {
		t.Error("space should not be handled")
	}
	if tr != newTransform() {
		t.Errorf("transform changed: %+v", tr)
	}
}

func TestTransformScaleFloor(t *testing.T) {
	tr := newTransform()
	for i := 0; i < 100; i++ {
		tr.apply(core.KeyS)
	}
	if tr.scale < minScale {
		t.Errorf("scale went below %v: %v", minScale, tr.scale)
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := transform{rotation: 90, scale: 2, tx: 0.5}

	got := tr.matrix(0).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{0.5, 2, 0, 1}
	if !approxVec4(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	spun := newTransform().matrix(180).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !approxVec4(spun, mgl32.Vec4{-1, 0, 0, 1}) {
		t.Errorf("expected spin to rotate, got %v", spun)
	}
}
