package vecgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: -1, Z: 0.5}

	assert.Equal(t, Vec3{X: 5, Y: 1, Z: 3.5}, a.Add(b))
	assert.Equal(t, Vec3{X: -3, Y: 3, Z: 2.5}, a.Sub(b))
	assert.Equal(t, Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	assert.Equal(t, Vec3{X: 0.5, Y: 1, Z: 1.5}, a.Div(2))
}

func TestMagnitude(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 0}
	assert.InDelta(t, 5.0, v.Magnitude(), 1e-6)
}

func TestNormalizedZeroVector(t *testing.T) {
	assert.Equal(t, Zero, Zero.Normalized())
}

func TestNormalizedUnitLength(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 0}
	n := v.Normalized()
	assert.InDelta(t, 1.0, n.Magnitude(), 1e-6)
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.8, n.Y, 1e-6)
}
