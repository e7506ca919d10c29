package geom

// Vec3 is a position, rotation (euler degrees) or velocity in world space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Zero is the world origin.
var Zero = Vec3{}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// WithY returns v with its Y component replaced.
func (v Vec3) WithY(y float64) Vec3 {
	v.Y = y
	return v
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v == Zero
}
