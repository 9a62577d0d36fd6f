package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec3_Cross(t *testing.T) {
	// forward × up points to the right in a right-handed system
	forward := Vec3Z.Neg()
	require.Equal(t, Vec3X, forward.Cross(Vec3Y))

	require.Equal(t, Vec3Z, Vec3X.Cross(Vec3Y))
	require.Equal(t, Vec3Zero, Vec3Y.Cross(Vec3Y))
}

func TestVec3_Normalized(t *testing.T) {
	v := Vec3{X: 3, Y: 0, Z: 4}
	require.InDelta(t, 5.0, v.Length(), 1e-12)

	n := v.Normalized()
	require.InDelta(t, 1.0, n.Length(), 1e-12)
	require.InDelta(t, 0.6, n.X, 1e-12)
	require.InDelta(t, 0.8, n.Z, 1e-12)

	require.Equal(t, Vec3Zero, Vec3Zero.Normalized())
}

func TestVec3_DistanceTo(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 1, Y: 2, Z: -7}
	require.InDelta(t, 10.0, a.DistanceTo(b), 1e-12)
	require.InDelta(t, 14.0, a.Dot(a), 1e-12)
}
