package maidenhead

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotisserie/eris"
)

func TestToPoint_FourChar(t *testing.T) {
	tests := []struct {
		locator string
		lon     float64
		lat     float64
	}{
		{"JO90", 18, 50},
		{"JO91", 18, 51},
		{"KO02", 20, 52},
		{"AA00", -180, -90},
		{"RR99", 178, 89},
	}

	for _, tt := range tests {
		t.Run(tt.locator, func(t *testing.T) {
			p, err := ToPoint(tt.locator)
			require.NoError(t, err)
			assert.InDelta(t, tt.lon, p.X(), 1e-9)
			assert.InDelta(t, tt.lat, p.Y(), 1e-9)
		})
	}
}

func TestToPoint_SixChar(t *testing.T) {
	p, err := ToPoint("JO90AA")
	require.NoError(t, err)
	assert.InDelta(t, 18, p.X(), 1e-9)
	assert.InDelta(t, 50, p.Y(), 1e-9)

	p, err = ToPoint("JO90xx")
	require.NoError(t, err)
	assert.InDelta(t, 18+23*5.0/60.0, p.X(), 1e-9)
	assert.InDelta(t, 50+23*2.5/60.0, p.Y(), 1e-9)
}

func TestToPoint_CaseInsensitive(t *testing.T) {
	upper, err := ToPoint("JO90KS")
	require.NoError(t, err)
	lower, err := ToPoint("jo90ks")
	require.NoError(t, err)
	assert.Equal(t, upper.X(), lower.X())
	assert.Equal(t, upper.Y(), lower.Y())
}

func TestToPoint_NonLetterSubsquareIgnored(t *testing.T) {
	// Trailing characters that are not both letters do not extend precision.
	base, err := ToPoint("JO90")
	require.NoError(t, err)
	ext, err := ToPoint("JO9012")
	require.NoError(t, err)
	assert.Equal(t, base.X(), ext.X())
	assert.Equal(t, base.Y(), ext.Y())
}

func TestToPoint_Invalid(t *testing.T) {
	for _, locator := range []string{"", "J", "JO9", "1O90", "J290", "JOAA", "JO9A"} {
		t.Run(locator, func(t *testing.T) {
			_, err := ToPoint(locator)
			require.Error(t, err)
			assert.True(t, eris.Is(err, ErrInvalidLocator))
		})
	}
}

func TestToPoint_Deterministic(t *testing.T) {
	a, err := ToPoint("JO90KS")
	require.NoError(t, err)
	b, err := ToPoint("JO90KS")
	require.NoError(t, err)
	assert.Equal(t, a.X(), b.X())
	assert.Equal(t, a.Y(), b.Y())
}

func TestDistanceKm_Zero(t *testing.T) {
	p, err := ToPoint("JO90KS")
	require.NoError(t, err)
	assert.Zero(t, DistanceKm(p, p))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a, err := ToPoint("JO90AA")
	require.NoError(t, err)
	b, err := ToPoint("KO02MF")
	require.NoError(t, err)
	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
}

func TestDistanceKm_OneDegreeLatitude(t *testing.T) {
	a, err := ToPoint("JO90AA")
	require.NoError(t, err)
	b, err := ToPoint("JO91AA")
	require.NoError(t, err)
	// One degree of latitude on the mean-radius sphere.
	assert.InDelta(t, 111.195, DistanceKm(a, b), 0.01)
}
