package roadgeom

import "testing"

func TestClamp(t *testing.T) {
	diff(t, 0.0, clamp(-0.5, 0, 1))
	diff(t, 0.25, clamp(0.25, 0, 1))
	diff(t, 1.0, clamp(1.5, 0, 1))

	diff(t, 0, clamp(-1, 0, 3))
	diff(t, 2, clamp(2, 0, 3))
	diff(t, 3, clamp(7, 0, 3))
}

func TestLerp(t *testing.T) {
	diff(t, 2.0, lerp(2.0, 4.0, 0))
	diff(t, 3.0, lerp(2.0, 4.0, 0.5))
	diff(t, 4.0, lerp(2.0, 4.0, 1))
	diff(t, float32(3), lerp[float32](2, 4, 0.5))
}
