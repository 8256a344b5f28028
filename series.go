package utm

import "math"

// Coefficients of the meridional arc series, computed once per ellipsoid.
//
//	M = a·(m0·φ − m2·sin2φ + m4·sin4φ − m6·sin6φ)
//
// and of its inverse, the footpoint latitude series in μ = M/(a·m0).
type series struct {
	a              float64
	m0, m2, m4, m6 float64
	f2, f4, f6, f8 float64
}

func newSeries(a, e2 float64) series {
	e4 := e2 * e2
	e6 := e4 * e2

	s := series{
		a:  a,
		m0: 1 - e2/4 - 3*e4/64 - 5*e6/256,
		m2: 3*e2/8 + 3*e4/32 + 45*e6/1024,
		m4: 15*e4/256 + 45*e6/1024,
		m6: 35 * e6 / 3072,
	}

	r := math.Sqrt(1 - e2)
	e1 := (1 - r) / (1 + r)
	e12 := e1 * e1
	e13 := e12 * e1
	e14 := e13 * e1
	s.f2 = 3*e1/2 - 27*e13/32
	s.f4 = 21*e12/16 - 55*e14/32
	s.f6 = 151 * e13 / 96
	s.f8 = 1097 * e14 / 512
	return s
}

// Distance along the meridian from the equator to latitude phi (radians), in meters.
func (s *series) arc(phi float64) float64 {
	return s.a * (s.m0*phi -
		s.m2*math.Sin(2*phi) +
		s.m4*math.Sin(4*phi) -
		s.m6*math.Sin(6*phi))
}

// Latitude (radians) whose meridional arc is m meters.
func (s *series) footpoint(m float64) float64 {
	mu := m / (s.a * s.m0)
	return mu +
		s.f2*math.Sin(2*mu) +
		s.f4*math.Sin(4*mu) +
		s.f6*math.Sin(6*mu) +
		s.f8*math.Sin(8*mu)
}
