package utm

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// A reference ellipsoid
type Datum struct {
	name       string
	equatorial float64
	polar      float64
}

var (
	WGS84             = Datum{"WGS84", 6378137.0, 6356752.314245}
	GRS80             = Datum{"GRS80", 6378137.0, 6356752.314140}
	WGS72             = Datum{"WGS72", 6378135.0, 6356750.520016}
	Clarke1866        = Datum{"Clarke1866", 6378206.4, 6356583.8}
	International1924 = Datum{"International1924", 6378388.0, 6356911.946128}
	Airy1830          = Datum{"Airy1830", 6377563.396, 6356256.909237}
	Bessel1841        = Datum{"Bessel1841", 6377397.155, 6356078.962818}
	Krassovsky1940    = Datum{"Krassovsky1940", 6378245.0, 6356863.018773}
)

var presets = map[string]Datum{
	"wgs84":             WGS84,
	"grs80":             GRS80,
	"nad83":             GRS80,
	"wgs72":             WGS72,
	"clarke1866":        Clarke1866,
	"nad27":             Clarke1866,
	"international1924": International1924,
	"hayford":           International1924,
	"ed50":              International1924,
	"airy1830":          Airy1830,
	"osgb36":            Airy1830,
	"bessel1841":        Bessel1841,
	"krassovsky1940":    Krassovsky1940,
	"sk42":              Krassovsky1940,
}

// Create a datum from its equatorial (semi-major) and polar (semi-minor)
// radii in meters. The name is only used for display.
func NewDatum(name string, equatorialRadius, polarRadius float64) (Datum, error) {
	d := Datum{
		name:       name,
		equatorial: equatorialRadius,
		polar:      polarRadius,
	}
	if err := d.validate(); err != nil {
		return Datum{}, err
	}
	return d, nil
}

func (d Datum) validate() error {
	a, b := d.equatorial, d.polar
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return fmt.Errorf("%w: radii must be finite, got %v and %v", ErrInvalidDatum, a, b)
	}
	if a <= 0 || b <= 0 {
		return fmt.Errorf("%w: radii must be positive, got %v and %v", ErrInvalidDatum, a, b)
	}
	if b > a {
		return fmt.Errorf("%w: polar radius %v exceeds equatorial radius %v", ErrInvalidDatum, b, a)
	}
	return nil
}

// Look up a preset datum by name. Case, spaces, dashes and underscores are
// ignored, so "WGS-84" and "wgs84" are the same. Common datum names such as
// "NAD27" or "ED50" resolve to their ellipsoid.
func DatumByName(name string) (Datum, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
	d, ok := presets[key]
	if !ok {
		return Datum{}, fmt.Errorf("%w: unknown datum %q", ErrInvalidDatum, name)
	}
	return d, nil
}

// All preset datums, sorted by name.
func Datums() []Datum {
	seen := make(map[string]bool)
	ds := make([]Datum, 0, len(presets))
	for _, d := range presets {
		if !seen[d.name] {
			seen[d.name] = true
			ds = append(ds, d)
		}
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].name < ds[j].name })
	return ds
}

func (d Datum) Name() string { return d.name }

// Semi-major axis a, in meters.
func (d Datum) EquatorialRadius() float64 { return d.equatorial }

// Semi-minor axis b, in meters.
func (d Datum) PolarRadius() float64 { return d.polar }

// f = (a-b)/a
func (d Datum) Flattening() float64 {
	return (d.equatorial - d.polar) / d.equatorial
}

// e² = 2f - f²
func (d Datum) EccentricitySquared() float64 {
	f := d.Flattening()
	return 2*f - f*f
}

// e'² = e²/(1-e²)
func (d Datum) SecondEccentricitySquared() float64 {
	e2 := d.EccentricitySquared()
	return e2 / (1 - e2)
}

func (d Datum) String() string {
	name := d.name
	if name == "" {
		name = "datum"
	}
	return fmt.Sprintf("%s(a=%v, b=%v)", name, d.equatorial, d.polar)
}
