package audio

import (
	"github.com/oliverbestmann/infinite/gm"
)

const (
	// MinDistance is the distance up to which a sound plays at full volume.
	MinDistance = 1.0

	// MaxDistance is the distance after which a sound does not attenuate any further.
	MaxDistance = 100.0
)

// distances below epsilon are treated as the emitter being at the listener
const epsilon = 1.1920929e-7

// Listener is the position and orientation sounds are heard from.
type Listener struct {
	Position gm.Vec3
	Forward  gm.Vec3
	Up       gm.Vec3
}

// DefaultListener is located at the origin, looking down -Z with +Y as up.
func DefaultListener() Listener {
	return Listener{
		Position: gm.Vec3Zero,
		Forward:  gm.Vec3Z.Neg(),
		Up:       gm.Vec3Y,
	}
}

// Right returns the normalized right vector of the listener, or the zero
// vector if forward and up are parallel.
func (l Listener) Right() gm.Vec3 {
	return l.Forward.Cross(l.Up).Normalized()
}

type SpatialParams struct {
	// Attenuation in [0, 1]
	Volume float64

	// Stereo panning, -1 is fully left, 0 is center and 1 is fully right.
	Pan float64
}

// ComputeSpatial computes the attenuation and panning of an emitter at the given
// position. Volume falls off with the inverse of the distance clamped to
// [MinDistance, MaxDistance], the pan follows the listeners right vector.
func ComputeSpatial(listener Listener, emitter gm.Vec3) SpatialParams {
	toEmitter := emitter.Sub(listener.Position)
	distance := toEmitter.Length()

	if distance < epsilon {
		return SpatialParams{Volume: 1, Pan: 0}
	}

	clamped := max(MinDistance, min(MaxDistance, distance))
	volume := MinDistance / clamped

	pan := toEmitter.Normalized().Dot(listener.Right())

	return SpatialParams{
		Volume: max(0, min(1, volume)),
		Pan:    max(-1, min(1, pan)),
	}
}
