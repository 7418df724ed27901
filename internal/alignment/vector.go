package alignment

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{X: v.X * o.X, Y: v.Y * o.Y} }

// Vec3 carries a 2D position plus a scale in Z.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) XY() Vec2 { return Vec2{X: v.X, Y: v.Y} }
