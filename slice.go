package utm

import (
	"fmt"

	"github.com/ctessum/geom/proj"
	"github.com/golang/glog"
)

// The direction of a transformation
type Direction int

const (
	Fwd Direction = iota // Geodetic to UTM
	Inv                  // UTM to geodetic
)

func (d Direction) String() string {
	switch d {
	case Fwd:
		return "Fwd"
	case Inv:
		return "Inv"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

/*
Transform a series of coordinates within one zone and hemisphere.

For Fwd, u1 holds longitudes and v1 latitudes, in degrees, and the results are
eastings and northings. For Inv it is the other way round. Both slices must
have the same length.

Fixing the zone and hemisphere keeps a geometry in a single planar system
even when it crosses a zone boundary or the equator; points south of the
equator in a Northern batch get negative northings.

If any point fails, no results are returned.
*/
func (t *Transformer) TransSlice(direction Direction, zone int, hemisphere Hemisphere, u1, v1 []float64) (u2, v2 []float64, err error) {
	if u1 == nil || v1 == nil {
		return nil, nil, ErrMissingData
	}
	if len(u1) != len(v1) {
		return nil, nil, fmt.Errorf("%w: %d and %d", ErrDataSizeMismatch, len(u1), len(v1))
	}
	fwd, inv, err := t.Transformers(zone, hemisphere)
	if err != nil {
		return nil, nil, err
	}

	var tr proj.Transformer
	switch direction {
	case Fwd:
		tr = fwd
	case Inv:
		tr = inv
	default:
		return nil, nil, fmt.Errorf("utm: unknown direction %v", direction)
	}

	u2 = make([]float64, len(u1))
	v2 = make([]float64, len(v1))
	for i := range u1 {
		u2[i], v2[i], err = tr(u1[i], v1[i])
		if err != nil {
			if glog.V(2) {
				glog.Infof("utm: %v point %d (%v, %v) rejected: %v", direction, i, u1[i], v1[i], err)
			}
			return nil, nil, fmt.Errorf("point %d: %w", i, err)
		}
	}
	return u2, v2, nil
}

// Forward and inverse transformation functions for one zone and hemisphere,
// in the form used by github.com/ctessum/geom. The forward function takes
// longitude and latitude in degrees and returns easting and northing; the
// inverse does the opposite.
func (t *Transformer) Transformers(zone int, hemisphere Hemisphere) (forward, inverse proj.Transformer, err error) {
	if err = checkZone(zone); err != nil {
		return nil, nil, err
	}
	if !hemisphere.valid() {
		return nil, nil, fmt.Errorf("%w: unknown hemisphere %v", ErrInvalidZone, hemisphere)
	}

	forward = func(lon, lat float64) (float64, float64, error) {
		g := Geodetic{Lat: lat, Lon: lon}
		if err := checkGeodetic(g); err != nil {
			return 0, 0, err
		}
		u := t.toUTM(g, zone, hemisphere)
		return u.Easting, u.Northing, nil
	}
	inverse = func(easting, northing float64) (float64, float64, error) {
		g, err := t.ToGeodetic(UTM{
			Easting:    easting,
			Northing:   northing,
			Zone:       zone,
			Hemisphere: hemisphere,
		})
		if err != nil {
			return 0, 0, err
		}
		return g.Lon, g.Lat, nil
	}
	return forward, inverse, nil
}
