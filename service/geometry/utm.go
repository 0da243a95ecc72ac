package geometry

import (
	"fmt"
	"math"

	"github.com/airbusgeo/s2cogs/common"
	"github.com/go-spatial/geom"
)

// WGS84 ellipsoid and UTM projection constants
const (
	k0 = 0.9996
	r  = 6378137.0
	e  = 0.00669438 // squared eccentricity
	e2 = e * e
	e3 = e2 * e

	ePrime2 = e / (1 - e)

	m1 = 1 - e/4 - 3*e2/64 - 5*e3/256
	m2 = 3*e/8 + 3*e2/32 + 45*e3/1024
	m3 = 15*e2/256 + 45*e3/1024
	m4 = 35 * e3 / 3072

	falseEasting  = 500000.0
	falseNorthing = 10000000.0
)

// UTM coordinates of a point
type UTM struct {
	Easting      float64
	Northing     float64
	Zone         int
	LatitudeBand string
}

// ToUTM projects a WGS84 point (longitude, latitude) in its UTM zone.
// Latitude must be in [-80, 84] (polar areas are not covered by UTM) and longitude in [-180, 180].
func ToUTM(p geom.Point) (UTM, error) {
	lon, lat := p.X(), p.Y()
	if math.IsNaN(lat) || lat < -80 || lat > 84 {
		return UTM{}, fmt.Errorf("latitude out of range [-80, 84]: %v", lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return UTM{}, fmt.Errorf("longitude out of range [-180, 180]: %v", lon)
	}

	zone := zoneNumber(lon, lat)
	centralLon := float64((zone-1)*6 - 180 + 3)

	latRad := lat * math.Pi / 180
	latSin, latCos := math.Sincos(latRad)
	latTan := latSin / latCos
	latTan2 := latTan * latTan
	latTan4 := latTan2 * latTan2

	n := r / math.Sqrt(1-e*latSin*latSin)
	c := ePrime2 * latCos * latCos

	a := latCos * (lon - centralLon) * math.Pi / 180
	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	m := r * (m1*latRad - m2*math.Sin(2*latRad) + m3*math.Sin(4*latRad) - m4*math.Sin(6*latRad))

	easting := k0*n*(a+
		a3/6*(1-latTan2+c)+
		a5/120*(5-18*latTan2+latTan4+72*c-58*ePrime2)) + falseEasting

	northing := k0 * (m + n*latTan*(a2/2+
		a4/24*(5-latTan2+9*c+4*c*c)+
		a6/720*(61-58*latTan2+latTan4+600*c-330*ePrime2)))
	if lat < 0 {
		northing += falseNorthing
	}

	return UTM{
		Easting:      easting,
		Northing:     northing,
		Zone:         zone,
		LatitudeBand: latitudeBand(lat),
	}, nil
}

// zoneNumber handles the exceptions of southwest Norway (32V) and Svalbard (31X, 33X, 35X, 37X)
func zoneNumber(lon, lat float64) int {
	if lat >= 56 && lat < 64 && lon >= 3 && lon < 12 {
		return 32
	}
	if lat >= 72 && lon >= 0 {
		switch {
		case lon < 9:
			return 31
		case lon < 21:
			return 33
		case lon < 33:
			return 35
		case lon < 42:
			return 37
		}
	}
	if lon >= 180 {
		return 60
	}
	return int((lon+180)/6) + 1
}

func latitudeBand(lat float64) string {
	i := int((lat + 80) / 8)
	if i >= len(common.LatitudeBands) {
		// band X spans 72°N to 84°N
		i = len(common.LatitudeBands) - 1
	}
	return common.LatitudeBands[i : i+1]
}
