package feed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstankie/ft5dgen/internal/fetcher"
)

func qrg(typ, value string) TypedText {
	return TypedText{Type: typ, Value: value}
}

func validRepeater() Repeater {
	return Repeater{
		QRA:        "SR9KR",
		QRG:        []TypedText{qrg("rx", "145.000"), qrg("tx", "145.600")},
		CTCSS:      []TypedText{qrg("rx", "71.9")},
		Mode:       "FM",
		Activation: "TONE",
		Location:   Location{Locator: "JO90KS"},
	}
}

func TestExtract_SwapsFeedRxTx(t *testing.T) {
	rec, skip := Extract(validRepeater())
	require.Nil(t, skip)

	// The feed types frequencies from the repeater's perspective:
	// its "tx" is what the handheld receives.
	assert.InDelta(t, 145.600, rec.RxMHz, 1e-9)
	assert.InDelta(t, 145.000, rec.TxMHz, 1e-9)
	assert.Equal(t, "SR9KR", rec.Name)
	assert.Equal(t, "71.9", rec.Tone)
	assert.Equal(t, "JO90KS", rec.Locator)
	assert.False(t, rec.HasLatLon)
}

func TestExtract_DefaultsName(t *testing.T) {
	r := validRepeater()
	r.QRA = ""
	rec, skip := Extract(r)
	require.Nil(t, skip)
	assert.Equal(t, "Unknown", rec.Name)
}

func TestExtract_LatLonFallback(t *testing.T) {
	r := validRepeater()
	r.Location = Location{Latitude: "50.06", Longitude: "19.94"}
	rec, skip := Extract(r)
	require.Nil(t, skip)
	assert.True(t, rec.HasLatLon)
	assert.InDelta(t, 50.06, rec.Lat, 1e-9)
	assert.InDelta(t, 19.94, rec.Lon, 1e-9)
	assert.Empty(t, rec.Locator)
}

func TestExtract_SkipNoLocation(t *testing.T) {
	r := validRepeater()
	r.Location = Location{}
	_, skip := Extract(r)
	require.NotNil(t, skip)
	assert.Equal(t, SkipNoLocation, skip.Reason)
}

func TestExtract_SkipMissingFrequency(t *testing.T) {
	r := validRepeater()
	r.QRG = []TypedText{qrg("rx", "145.000")}
	_, skip := Extract(r)
	require.NotNil(t, skip)
	assert.Equal(t, SkipNoFrequency, skip.Reason)
}

func TestExtract_SkipBadFrequency(t *testing.T) {
	r := validRepeater()
	r.QRG = []TypedText{qrg("rx", "145.000"), qrg("tx", "not-a-number")}
	_, skip := Extract(r)
	require.NotNil(t, skip)
	assert.Equal(t, SkipBadFrequency, skip.Reason)
}

func TestExtract_SkipBadLatLon(t *testing.T) {
	r := validRepeater()
	r.Location = Location{Latitude: "fifty", Longitude: "19.94"}
	_, skip := Extract(r)
	require.NotNil(t, skip)
	assert.Equal(t, SkipBadLatLon, skip.Reason)
}

func TestExtract_MissingToneLeftEmpty(t *testing.T) {
	r := validRepeater()
	r.CTCSS = nil
	rec, skip := Extract(r)
	require.Nil(t, skip)
	assert.Empty(t, rec.Tone)
}

func TestExtract_FromStreamedXML(t *testing.T) {
	input := `<rxf><repeaters>
		<repeater>
			<qra>SR9KR</qra>
			<qrg type="rx">145.000</qrg>
			<qrg type="tx">145.600</qrg>
			<ctcss type="rx">71.9</ctcss>
			<mode>FM</mode>
			<activation>TONE</activation>
			<location><locator>JO90KS</locator></location>
		</repeater>
	</repeaters></rxf>`

	ch, errCh := fetcher.StreamXML[Repeater](context.Background(), strings.NewReader(input), "repeater")

	var recs []Record
	for r := range ch {
		rec, skip := Extract(r)
		require.Nil(t, skip)
		recs = append(recs, rec)
	}
	for err := range errCh {
		require.NoError(t, err)
	}

	require.Len(t, recs, 1)
	assert.Equal(t, "SR9KR", recs[0].Name)
	assert.InDelta(t, 145.600, recs[0].RxMHz, 1e-9)
}
