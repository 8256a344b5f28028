/*
Package utm converts between geodetic coordinates (latitude and longitude on a
reference ellipsoid) and the Universal Transverse Mercator grid.

The projection is evaluated with the closed-form series of Snyder,
"Map Projections: A Working Manual" (USGS Professional Paper 1395), as also
given in Hofmann-Wellenhof et al. and Army TM 5-241-8. No iteration is
involved; round trips are accurate to well below a millimeter between
latitudes 80°S and 84°N.

	t := utm.NewWGS84()
	u, err := t.ToUTM(utm.Geodetic{Lat: 59.9128, Lon: 10.7602})
	g, err := t.ToGeodetic(u)

A Transformer holds no mutable state and may be shared between goroutines.

Polar regions (UPS) and MGRS grid squares are not supported.
*/
package utm
