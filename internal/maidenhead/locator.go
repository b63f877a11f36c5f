// Package maidenhead converts Maidenhead grid locators to coordinates and
// computes great-circle distances between them.
package maidenhead

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// ErrInvalidLocator is returned when a locator string cannot be parsed.
var ErrInvalidLocator = eris.New("maidenhead: invalid locator")

// meanEarthRadiusKm is the IUGG mean earth radius. DistanceKm uses the
// spherical haversine formula with this radius; the error against an
// ellipsoidal model stays below 0.5 %, which is fine for range filtering.
const meanEarthRadiusKm = 6371.0088

// ToPoint converts a 4- or 6-character Maidenhead locator to a lon/lat
// point (SRID 4326). The first four characters select the grid square;
// characters 5-6, when both letters, add the subsquare offset. The
// subsquare arithmetic matches previously generated memory files and is
// intentionally not the subsquare center.
func ToPoint(locator string) (*geom.Point, error) {
	if len(locator) < 4 {
		return nil, eris.Wrapf(ErrInvalidLocator, "%q: too short", locator)
	}

	field := strings.ToUpper(locator[:2])
	if !isLetter(field[0]) || !isLetter(field[1]) {
		return nil, eris.Wrapf(ErrInvalidLocator, "%q: field must be letters", locator)
	}
	if !isDigit(locator[2]) || !isDigit(locator[3]) {
		return nil, eris.Wrapf(ErrInvalidLocator, "%q: square must be digits", locator)
	}

	lon := float64(field[0]-'A')*20 - 180 + float64(locator[2]-'0')*2
	lat := float64(field[1]-'A')*10 - 90 + float64(locator[3]-'0')

	if len(locator) >= 6 {
		sub := strings.ToLower(locator[4:6])
		if isLetter(sub[0]) && isLetter(sub[1]) {
			lon += float64(sub[0]-'a') * 5.0 / 60.0
			lat += float64(sub[1]-'a') * 2.5 / 60.0
		}
	}

	return geom.NewPointFlat(geom.XY, []float64{lon, lat}).SetSRID(4326), nil
}

// DistanceKm returns the great-circle distance between two points in
// kilometers using the spherical haversine formula.
func DistanceKm(a, b *geom.Point) float64 {
	lat1 := a.Y() * math.Pi / 180
	lat2 := b.Y() * math.Pi / 180
	dLat := (b.Y() - a.Y()) * math.Pi / 180
	dLon := (b.X() - a.X()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * meanEarthRadiusKm * math.Asin(math.Sqrt(h))
}

func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
