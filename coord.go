package utm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

type Hemisphere int

const (
	Northern Hemisphere = iota + 1
	Southern
)

func (h Hemisphere) String() string {
	switch h {
	case Northern:
		return "N"
	case Southern:
		return "S"
	}
	return fmt.Sprintf("Hemisphere(%d)", int(h))
}

func (h Hemisphere) valid() bool {
	return h == Northern || h == Southern
}

// A position on the ellipsoid, in decimal degrees
type Geodetic struct {
	Lat float64
	Lon float64
}

func GeodeticFromLatLng(ll s2.LatLng) Geodetic {
	return Geodetic{Lat: ll.Lat.Degrees(), Lon: ll.Lng.Degrees()}
}

// Convert an orb point, which holds longitude first.
func GeodeticFromPoint(p orb.Point) Geodetic {
	return Geodetic{Lat: p.Lat(), Lon: p.Lon()}
}

func (g Geodetic) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(g.Lat, g.Lon)
}

func (g Geodetic) Point() orb.Point {
	return orb.Point{g.Lon, g.Lat}
}

func (g Geodetic) String() string {
	return fmt.Sprintf("(%f, %f)", g.Lat, g.Lon)
}

// A position on the UTM grid
type UTM struct {
	Easting    float64    // Meters, including the 500000 m false easting
	Northing   float64    // Meters; from 10000000 m false northing south of the equator
	Zone       int        // Grid zone, 1 to 60
	Hemisphere Hemisphere // Selects the false northing
	Band       byte       // Latitude band letter C to X, or 0 if unknown. Informational only.
}

// Format as "32V 598430.000 6643010.000", or "32 N 598430.000 6643010.000"
// when the latitude band is unknown.
func (u UTM) String() string {
	if u.Band != 0 {
		return fmt.Sprintf("%d%c %.3f %.3f", u.Zone, u.Band, u.Easting, u.Northing)
	}
	return fmt.Sprintf("%d %s %.3f %.3f", u.Zone, u.Hemisphere, u.Easting, u.Northing)
}

// Parse the formats produced by UTM.String. The band letter may be lower case.
//
// A letter attached to the zone is always a latitude band, so "32S" is band S
// (40°N to 48°N) in the northern hemisphere. Write the hemisphere as a
// separate field, "32 S", to mean the southern hemisphere.
func ParseUTM(s string) (UTM, error) {
	fields := strings.Fields(s)
	var u UTM
	var designator string
	switch len(fields) {
	case 3:
		designator = fields[0]
	case 4:
		designator = fields[0] + " " + fields[1]
		fields = append(fields[:1], fields[2:]...)
	default:
		return UTM{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	zone, hemisphere, band, err := parseDesignator(designator)
	if err != nil {
		return UTM{}, err
	}
	u.Zone, u.Hemisphere, u.Band = zone, hemisphere, band

	if u.Easting, err = parseMeters(fields[1]); err != nil {
		return UTM{}, fmt.Errorf("%w: easting %q", ErrSyntax, fields[1])
	}
	if u.Northing, err = parseMeters(fields[2]); err != nil {
		return UTM{}, fmt.Errorf("%w: northing %q", ErrSyntax, fields[2])
	}
	return u, nil
}

// Like strconv.ParseFloat, but NaN and infinities are errors.
func parseMeters(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrSyntax
	}
	return v, nil
}

func parseDesignator(s string) (zone int, hemisphere Hemisphere, band byte, err error) {
	s = strings.ToUpper(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		switch s[i+1:] {
		case "N":
			hemisphere = Northern
		case "S":
			hemisphere = Southern
		default:
			return 0, 0, 0, fmt.Errorf("%w: hemisphere %q", ErrSyntax, s[i+1:])
		}
		s = s[:i]
	} else {
		if len(s) < 2 {
			return 0, 0, 0, fmt.Errorf("%w: zone designator %q", ErrSyntax, s)
		}
		band = s[len(s)-1]
		var ok bool
		if hemisphere, ok = bandHemisphere(band); !ok {
			return 0, 0, 0, fmt.Errorf("%w: latitude band %q", ErrSyntax, band)
		}
		s = s[:len(s)-1]
	}

	z, perr := strconv.Atoi(s)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("%w: zone %q", ErrSyntax, s)
	}
	if err := checkZone(z); err != nil {
		return 0, 0, 0, err
	}
	return z, hemisphere, band, nil
}
