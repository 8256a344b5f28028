package utm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeridionalArc(t *testing.T) {
	s := newSeries(WGS84.EquatorialRadius(), WGS84.EccentricitySquared())

	assert.Equal(t, 0.0, s.arc(0))
	assert.InDelta(t, 4984944.378, s.arc(math.Pi/4), 0.001)
	// Quarter meridian of WGS 84.
	assert.InDelta(t, 10001965.729, s.arc(math.Pi/2), 0.001)
	assert.InDelta(t, -s.arc(0.7), s.arc(-0.7), 1e-9)
}

// Simpson's rule over the meridian radius of curvature a(1-e²)/(1-e²sin²φ)^1.5.
func integratedArc(a, e2, phi float64, n int) float64 {
	h := phi / float64(n)
	sum := 0.0
	for i := 0; i <= n; i++ {
		s := math.Sin(float64(i) * h)
		w := 1 - e2*s*s
		v := a * (1 - e2) / (w * math.Sqrt(w))
		switch {
		case i == 0 || i == n:
			sum += v
		case i%2 == 1:
			sum += 4 * v
		default:
			sum += 2 * v
		}
	}
	return sum * h / 3
}

func TestMeridionalArcPrecision(t *testing.T) {
	a, e2 := WGS84.EquatorialRadius(), WGS84.EccentricitySquared()
	s := newSeries(a, e2)
	for _, deg := range []float64{10, 40, 60, 80, 84} {
		phi := DegToRad(deg)
		assert.InDelta(t, integratedArc(a, e2, phi, 20000), s.arc(phi), 0.002, "lat %v", deg)
	}
}

func TestFootpointInvertsArc(t *testing.T) {
	for _, d := range []Datum{WGS84, Clarke1866, Airy1830} {
		s := newSeries(d.EquatorialRadius(), d.EccentricitySquared())
		for deg := -84.0; deg <= 84; deg += 3 {
			phi := DegToRad(deg)
			assert.InDelta(t, phi, s.footpoint(s.arc(phi)), 1e-9, "%v at %v", d, deg)
		}
	}
}

func TestSphereSeries(t *testing.T) {
	s := newSeries(6371000, 0)
	assert.InDelta(t, 6371000*math.Pi/2, s.arc(math.Pi/2), 1e-6)
	assert.InDelta(t, 0.3, s.footpoint(6371000*0.3), 1e-15)
}
