package utm

import (
	"fmt"
	"math"

	"github.com/golang/glog"
)

const (
	ScaleFactor   = 0.9996
	FalseEasting  = 500000.0
	FalseNorthing = 10000000.0 // Southern hemisphere only
)

// Converts between geodetic and UTM coordinates on one datum. The ellipsoid
// terms are computed once by New; a Transformer is never modified afterwards
// and is safe for concurrent use.
type Transformer struct {
	datum  Datum
	a      float64 // equatorial radius
	e2     float64 // eccentricity squared
	ep2    float64 // second eccentricity squared
	series series
}

// Create a transformer for the datum
func New(datum Datum) (*Transformer, error) {
	if err := datum.validate(); err != nil {
		return nil, err
	}
	t := &Transformer{
		datum: datum,
		a:     datum.EquatorialRadius(),
		e2:    datum.EccentricitySquared(),
		ep2:   datum.SecondEccentricitySquared(),
	}
	t.series = newSeries(t.a, t.e2)
	if glog.V(1) {
		glog.Infof("utm: transformer for %v: e²=%.12g e'²=%.12g", datum, t.e2, t.ep2)
	}
	return t, nil
}

// Create a transformer for WGS 84
func NewWGS84() *Transformer {
	t, err := New(WGS84)
	if err != nil {
		panic(fmt.Sprintf("utm: constructing WGS84 transformer: %s", err))
	}
	return t
}

func (t *Transformer) Datum() Datum {
	return t.datum
}

// Project a geodetic coordinate into the grid zone that contains it.
func (t *Transformer) ToUTM(g Geodetic) (UTM, error) {
	if err := checkGeodetic(g); err != nil {
		return UTM{}, err
	}
	return t.toUTM(g, ZoneOf(g.Lon), HemisphereOf(g.Lat)), nil
}

// Project a geodetic coordinate into the given zone, which need not be the
// zone containing it. Accuracy degrades with distance from the zone's
// central meridian.
func (t *Transformer) ToUTMInZone(g Geodetic, zone int) (UTM, error) {
	if err := checkZone(zone); err != nil {
		return UTM{}, err
	}
	if err := checkGeodetic(g); err != nil {
		return UTM{}, err
	}
	return t.toUTM(g, zone, HemisphereOf(g.Lat)), nil
}

// The input must already be validated.
func (t *Transformer) toUTM(g Geodetic, zone int, hemisphere Hemisphere) UTM {
	x, y := t.forward(DegToRad(g.Lat), DegToRad(wrapLongitude(g.Lon-centralMeridian(zone))))
	band, _ := BandOf(g.Lat)
	return UTM{
		Easting:    x,
		Northing:   y + falseNorthing(hemisphere),
		Zone:       zone,
		Hemisphere: hemisphere,
		Band:       band,
	}
}

// Easting (with false easting) and northing (without false northing) of
// latitude phi at longitude offset dlambda from the central meridian, both
// in radians.
func (t *Transformer) forward(phi, dlambda float64) (x, y float64) {
	sinPhi, cosPhi := math.Sincos(phi)
	tanPhi := math.Tan(phi)

	n := t.a / math.Sqrt(1-t.e2*sinPhi*sinPhi)
	tt := tanPhi * tanPhi
	c := t.ep2 * cosPhi * cosPhi
	a := dlambda * cosPhi
	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a
	m := t.series.arc(phi)

	x = ScaleFactor*n*(a+
		(1-tt+c)*a3/6+
		(5-18*tt+tt*tt+72*c-58*t.ep2)*a5/120) + FalseEasting

	y = ScaleFactor * (m + n*tanPhi*(a2/2+
		(5-tt+9*c+4*c*c)*a4/24+
		(61-58*tt+tt*tt+600*c-330*t.ep2)*a6/720))
	return x, y
}

// Recover the geodetic coordinate of a grid position. The latitude band, if
// set, is ignored; the hemisphere decides the false northing.
func (t *Transformer) ToGeodetic(u UTM) (Geodetic, error) {
	if err := checkZone(u.Zone); err != nil {
		return Geodetic{}, err
	}
	if !u.Hemisphere.valid() {
		return Geodetic{}, fmt.Errorf("%w: unknown hemisphere %v", ErrInvalidZone, u.Hemisphere)
	}
	phi, dlambda := t.inverse(u.Easting-FalseEasting, u.Northing-falseNorthing(u.Hemisphere))
	return Geodetic{
		Lat: RadToDeg(phi),
		Lon: wrapLongitude(centralMeridian(u.Zone) + RadToDeg(dlambda)),
	}, nil
}

// Latitude and longitude offset from the central meridian, in radians, of
// the grid offsets x and y from the zone origin.
func (t *Transformer) inverse(x, y float64) (phi, dlambda float64) {
	phi1 := t.series.footpoint(y / ScaleFactor)
	sinPhi1, cosPhi1 := math.Sincos(phi1)
	tanPhi1 := math.Tan(phi1)

	w := 1 - t.e2*sinPhi1*sinPhi1
	n1 := t.a / math.Sqrt(w)
	r1 := t.a * (1 - t.e2) / (w * math.Sqrt(w))
	t1 := tanPhi1 * tanPhi1
	c1 := t.ep2 * cosPhi1 * cosPhi1
	d := x / (n1 * ScaleFactor)
	d2 := d * d
	d3 := d2 * d
	d4 := d3 * d
	d5 := d4 * d
	d6 := d5 * d

	phi = phi1 - (n1*tanPhi1/r1)*(d2/2-
		(5+3*t1+10*c1-4*c1*c1-9*t.ep2)*d4/24+
		(61+90*t1+298*c1+45*t1*t1-252*t.ep2-3*c1*c1)*d6/720)

	dlambda = (d -
		(1+2*t1+c1)*d3/6 +
		(5-2*c1+28*t1-3*c1*c1+8*t.ep2+24*t1*t1)*d5/120) / cosPhi1
	return phi, dlambda
}

// Series residue at the zone edges can overshoot the antimeridian by a few
// nanodegrees; such values are pinned instead of wrapped.
const antimeridianSlack = 1e-6

// Wrap degrees into [-180, 180].
func wrapLongitude(lon float64) float64 {
	switch {
	case lon > 180+antimeridianSlack:
		return lon - 360
	case lon > 180:
		return 180
	case lon < -180-antimeridianSlack:
		return lon + 360
	case lon < -180:
		return -180
	}
	return lon
}

func falseNorthing(h Hemisphere) float64 {
	if h == Southern {
		return FalseNorthing
	}
	return 0
}
