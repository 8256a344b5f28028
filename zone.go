package utm

import (
	"fmt"
	"math"
)

const (
	MinLatitude  = -80.0
	MaxLatitude  = 84.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	MinZone = 1
	MaxZone = 60
)

// Latitude band letters, 8 degrees each starting at 80°S. X covers 72°N to 84°N.
const bands = "CDEFGHJKLMNPQRSTUVWX"

// Grid zone containing the longitude, in degrees. Longitude 180 belongs to
// zone 60. Only the longitude is used; the Norway and Svalbard exceptions
// are not applied.
func ZoneOf(lon float64) int {
	zone := int(math.Floor((lon+180)/6)) + 1
	if zone < MinZone {
		return MinZone
	}
	if zone > MaxZone {
		return MaxZone
	}
	return zone
}

func HemisphereOf(lat float64) Hemisphere {
	if lat >= 0 {
		return Northern
	}
	return Southern
}

// Latitude band letter for the latitude, in degrees.
func BandOf(lat float64) (byte, error) {
	if !(lat >= MinLatitude && lat <= MaxLatitude) {
		return 0, fmt.Errorf("%w: latitude %v not in [%v, %v]", ErrOutOfRange, lat, MinLatitude, MaxLatitude)
	}
	i := int(math.Floor((lat - MinLatitude) / 8))
	if i >= len(bands) {
		i = len(bands) - 1
	}
	return bands[i], nil
}

// Hemisphere of a latitude band letter: N and up is northern.
func bandHemisphere(band byte) (Hemisphere, bool) {
	for i := 0; i < len(bands); i++ {
		if bands[i] == band {
			if band >= 'N' {
				return Northern, true
			}
			return Southern, true
		}
	}
	return 0, false
}

// Central meridian of the zone, in degrees.
func CentralMeridian(zone int) (float64, error) {
	if err := checkZone(zone); err != nil {
		return math.NaN(), err
	}
	return centralMeridian(zone), nil
}

func centralMeridian(zone int) float64 {
	return float64((zone-1)*6-180) + 3
}

func checkZone(zone int) error {
	if zone < MinZone || zone > MaxZone {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidZone, zone, MinZone, MaxZone)
	}
	return nil
}

func checkGeodetic(g Geodetic) error {
	if !(g.Lat >= MinLatitude && g.Lat <= MaxLatitude) {
		return fmt.Errorf("%w: latitude %v not in [%v, %v]", ErrOutOfRange, g.Lat, MinLatitude, MaxLatitude)
	}
	if !(g.Lon >= MinLongitude && g.Lon <= MaxLongitude) {
		return fmt.Errorf("%w: longitude %v not in [%v, %v]", ErrOutOfRange, g.Lon, MinLongitude, MaxLongitude)
	}
	return nil
}

// Convert degrees to radians
func DegToRad(deg float64) float64 {
	return deg / 180 * math.Pi
}

// Convert radians to degrees
func RadToDeg(rad float64) float64 {
	return rad / math.Pi * 180
}
