package chart

import (
	"github.com/midbel/chartkit/internal/slx"
)

// View3D describes the camera of a 3D chart. Nil fields are left to the
// consuming application.
type View3D struct {
	RotX           *int
	RotY           *int
	Perspective    *int
	DepthPercent   *int
	HeightPercent  *int
	RightAngleAxes *bool
}

func (v *View3D) SetRotationX(x int) *View3D {
	v.RotX = slx.ClampPtr(x, -90, 90)
	return v
}

func (v *View3D) SetRotationY(y int) *View3D {
	v.RotY = slx.ClampPtr(y, 0, 360)
	return v
}

func (v *View3D) SetPerspective(p int) *View3D {
	v.Perspective = slx.ClampPtr(p, 0, 240)
	return v
}

func (v *View3D) SetDepthPercent(p int) *View3D {
	v.DepthPercent = slx.ClampPtr(p, 20, 2000)
	return v
}

func (v *View3D) SetHeightPercent(p int) *View3D {
	v.HeightPercent = slx.ClampPtr(p, 5, 500)
	return v
}

func (v *View3D) Empty() bool {
	if v == nil {
		return true
	}
	return v.RotX == nil && v.RotY == nil && v.Perspective == nil &&
		v.DepthPercent == nil && v.HeightPercent == nil && v.RightAngleAxes == nil
}

func (v *View3D) merge(other *View3D) {
	if other == nil {
		return
	}
	v.RotX = slx.Override(v.RotX, other.RotX)
	v.RotY = slx.Override(v.RotY, other.RotY)
	v.Perspective = slx.Override(v.Perspective, other.Perspective)
	v.DepthPercent = slx.Override(v.DepthPercent, other.DepthPercent)
	v.HeightPercent = slx.Override(v.HeightPercent, other.HeightPercent)
	v.RightAngleAxes = slx.Override(v.RightAngleAxes, other.RightAngleAxes)
	v.normalize()
}

func (v *View3D) normalize() {
	v.RotX = clampOpt(v.RotX, -90, 90)
	v.RotY = clampOpt(v.RotY, 0, 360)
	v.Perspective = clampOpt(v.Perspective, 0, 240)
	v.DepthPercent = clampOpt(v.DepthPercent, 20, 2000)
	v.HeightPercent = clampOpt(v.HeightPercent, 5, 500)
}
