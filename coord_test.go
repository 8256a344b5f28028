package utm_test

import (
	"testing"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/pebbe/utm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTMString(t *testing.T) {
	u := utm.UTM{Easting: 598430, Northing: 6643010, Zone: 32, Hemisphere: utm.Northern, Band: 'V'}
	assert.Equal(t, "32V 598430.000 6643010.000", u.String())

	u.Band = 0
	assert.Equal(t, "32 N 598430.000 6643010.000", u.String())

	u.Hemisphere = utm.Southern
	assert.Equal(t, "32 S 598430.000 6643010.000", u.String())
}

func TestParseUTM(t *testing.T) {
	tests := []struct {
		in   string
		want utm.UTM
	}{
		{"32V 598430 6643010", utm.UTM{Easting: 598430, Northing: 6643010, Zone: 32, Hemisphere: utm.Northern, Band: 'V'}},
		{"56h 334368.634 6250948.345", utm.UTM{Easting: 334368.634, Northing: 6250948.345, Zone: 56, Hemisphere: utm.Southern, Band: 'H'}},
		{"  1 S 441867.785 1116915.043 ", utm.UTM{Easting: 441867.785, Northing: 1116915.043, Zone: 1, Hemisphere: utm.Southern}},
		{"31 n 500000 0", utm.UTM{Easting: 500000, Northing: 0, Zone: 31, Hemisphere: utm.Northern}},
		{"32S 500000 4500000", utm.UTM{Easting: 500000, Northing: 4500000, Zone: 32, Hemisphere: utm.Northern, Band: 'S'}},
	}
	for _, tt := range tests {
		got, err := utm.ParseUTM(tt.in)
		if assert.NoError(t, err, tt.in) {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}

	for _, in := range []string{"", "32V", "32I 1 2", "V 1 2", "32V x 2", "32V 1 y", "32 Q 1 2", "32 N 1 2 3",
		"32V NaN 2", "32V 1 Inf", "32 N -Inf 2"} {
		_, err := utm.ParseUTM(in)
		assert.ErrorIs(t, err, utm.ErrSyntax, "%q", in)
	}
	for _, in := range []string{"0N 1 2", "61 N 1 2"} {
		_, err := utm.ParseUTM(in)
		assert.ErrorIs(t, err, utm.ErrInvalidZone, "%q", in)
	}
}

func TestStringRoundTrip(t *testing.T) {
	tr := utm.NewWGS84()
	u, err := tr.ToUTM(utm.Geodetic{Lat: -33.8688, Lon: 151.2093})
	require.NoError(t, err)

	parsed, err := utm.ParseUTM(u.String())
	require.NoError(t, err)
	assert.Equal(t, u.Zone, parsed.Zone)
	assert.Equal(t, u.Hemisphere, parsed.Hemisphere)
	assert.InDelta(t, u.Easting, parsed.Easting, 0.0005)
	assert.InDelta(t, u.Northing, parsed.Northing, 0.0005)
}

func TestGeodeticInterop(t *testing.T) {
	g := utm.Geodetic{Lat: 59.9139, Lon: 10.7522}

	ll := g.LatLng()
	assert.InDelta(t, 59.9139, ll.Lat.Degrees(), 1e-12)
	assert.InDelta(t, 10.7522, ll.Lng.Degrees(), 1e-12)
	g2 := utm.GeodeticFromLatLng(s2.LatLngFromDegrees(59.9139, 10.7522))
	assert.InDelta(t, g.Lat, g2.Lat, 1e-12)
	assert.InDelta(t, g.Lon, g2.Lon, 1e-12)

	p := g.Point()
	assert.Equal(t, orb.Point{10.7522, 59.9139}, p)
	assert.Equal(t, g, utm.GeodeticFromPoint(p))

	assert.Equal(t, "(59.913900, 10.752200)", g.String())
}

func TestHemisphereString(t *testing.T) {
	assert.Equal(t, "N", utm.Northern.String())
	assert.Equal(t, "S", utm.Southern.String())
	assert.Equal(t, "Hemisphere(0)", utm.Hemisphere(0).String())
}
