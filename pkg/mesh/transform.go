package mesh

import "github.com/go-gl/mathgl/mgl32"

// Transform is a similarity transform: a uniform scale, then a rotation, then
// a translation. A rigid transform (isometry) is a Transform with Scale 1.
//
// The zero value is not the identity; use Identity.
type Transform struct {
	Rot   mgl32.Quat
	Trans mgl32.Vec3
	Scale float32
}

// Identity returns the transform that leaves every point unchanged.
func Identity() Transform {
	return Transform{Rot: mgl32.QuatIdent(), Scale: 1}
}

// Translate returns a pure translation.
func Translate(x, y, z float32) Transform {
	t := Identity()
	t.Trans = mgl32.Vec3{x, y, z}
	return t
}

// Rotate returns a rotation of angle radians around axis.
func Rotate(angle float32, axis mgl32.Vec3) Transform {
	t := Identity()
	t.Rot = mgl32.QuatRotate(angle, axis.Normalize())
	return t
}

// Scale returns a uniform scale around the origin.
func Scale(s float32) Transform {
	t := Identity()
	t.Scale = s
	return t
}

// Isometry returns a rigid transform.
func Isometry(rot mgl32.Quat, trans mgl32.Vec3) Transform {
	return Transform{Rot: rot, Trans: trans, Scale: 1}
}

// Similarity returns a rigid transform combined with a uniform scale.
func Similarity(rot mgl32.Quat, trans mgl32.Vec3, scale float32) Transform {
	return Transform{Rot: rot, Trans: trans, Scale: scale}
}

// Mul composes t with u so that t.Mul(u).Apply(p) == t.Apply(u.Apply(p)).
// u is expressed in the local frame established by t.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		Rot:   t.Rot.Mul(u.Rot),
		Trans: t.Trans.Add(t.Rot.Rotate(u.Trans).Mul(t.Scale)),
		Scale: t.Scale * u.Scale,
	}
}

// Apply transforms the point p.
func (t Transform) Apply(p [3]float32) [3]float32 {
	return t.Rot.Rotate(mgl32.Vec3(p)).Mul(t.Scale).Add(t.Trans)
}

// Mat4 returns the equivalent homogeneous matrix.
func (t Transform) Mat4() mgl32.Mat4 {
	return mgl32.Translate3D(t.Trans.X(), t.Trans.Y(), t.Trans.Z()).
		Mul4(t.Rot.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale, t.Scale, t.Scale))
}

// ApproxEqual reports whether t and u agree within an absolute eps on every
// component. Rotations q and -q are considered equal.
func (t Transform) ApproxEqual(u Transform, eps float32) bool {
	if !within(t.Scale, u.Scale, eps) || !vecWithin(t.Trans, u.Trans, eps) {
		return false
	}
	return quatWithin(t.Rot, u.Rot, eps) || quatWithin(t.Rot, u.Rot.Scale(-1), eps)
}

func within(a, b, eps float32) bool { return mgl32.Abs(a-b) <= eps }

func vecWithin(a, b mgl32.Vec3, eps float32) bool {
	return within(a[0], b[0], eps) && within(a[1], b[1], eps) && within(a[2], b[2], eps)
}

func quatWithin(a, b mgl32.Quat, eps float32) bool {
	return within(a.W, b.W, eps) && vecWithin(a.V, b.V, eps)
}
