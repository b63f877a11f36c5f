package adms

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/pstankie/ft5dgen/internal/feed"
	"github.com/pstankie/ft5dgen/internal/maidenhead"
)

// SkipReason classifies why a record did not become a channel row.
type SkipReason string

const (
	SkipBadLocator SkipReason = "bad_locator"
	SkipTooFar     SkipReason = "too_far"
	SkipOutOfBand  SkipReason = "out_of_band"
	SkipDuplicate  SkipReason = "duplicate"
)

// Skip describes a non-fatal per-record drop during mapping.
type Skip struct {
	Reason SkipReason
	Detail string
}

func (s *Skip) String() string {
	return fmt.Sprintf("%s: %s", s.Reason, s.Detail)
}

// dedupKey suppresses duplicate listings of the same repeater: the feed
// repeats entries per band slot and per linked site under names like
// "SR9A-1"/"SR9A-2".
type dedupKey struct {
	prefix string
	rxMHz  float64
}

// Mapper turns validated directory records into ADMS-14 channel rows.
// It holds the per-run dedup set and the running channel index; map
// order determines channel numbering (first match wins on duplicates).
type Mapper struct {
	ref     *geom.Point
	maxKm   float64
	seen    map[dedupKey]struct{}
	emitted int
}

// NewMapper creates a Mapper filtering around the reference point.
func NewMapper(ref *geom.Point, maxKm float64) *Mapper {
	return &Mapper{
		ref:   ref,
		maxKm: maxKm,
		seen:  make(map[dedupKey]struct{}),
	}
}

// Emitted returns the number of channel rows produced so far.
func (m *Mapper) Emitted() int { return m.emitted }

// Map decides whether a record becomes a channel row and, if so,
// computes every column. A nil *Skip means the row was emitted.
func (m *Mapper) Map(rec feed.Record) (Row, *Skip) {
	point, err := resolvePoint(rec)
	if err != nil {
		return nil, &Skip{Reason: SkipBadLocator, Detail: fmt.Sprintf("%s: %v", rec.Name, err)}
	}

	dist := maidenhead.DistanceKm(m.ref, point)
	if dist > m.maxKm {
		return nil, &Skip{Reason: SkipTooFar, Detail: fmt.Sprintf("%s: %.1f km", rec.Name, dist)}
	}

	if !inBand(rec.RxMHz) {
		return nil, &Skip{Reason: SkipOutOfBand, Detail: fmt.Sprintf("%s: %.3f MHz", rec.Name, rec.RxMHz)}
	}

	key := dedupKey{prefix: namePrefix(rec.Name), rxMHz: rec.RxMHz}
	if _, ok := m.seen[key]; ok {
		return nil, &Skip{Reason: SkipDuplicate, Detail: fmt.Sprintf("%s @ %.3f MHz", key.prefix, key.rxMHz)}
	}
	m.seen[key] = struct{}{}

	m.emitted++
	return m.buildRow(rec, m.emitted), nil
}

// resolvePoint prefers the record's locator and falls back to explicit
// coordinates when the feed carried none.
func resolvePoint(rec feed.Record) (*geom.Point, error) {
	if rec.Locator != "" {
		return maidenhead.ToPoint(rec.Locator)
	}
	if rec.HasLatLon {
		return geom.NewPointFlat(geom.XY, []float64{rec.Lon, rec.Lat}).SetSRID(4326), nil
	}
	return nil, eris.New("record has no location")
}

// inBand reports whether the device receive frequency falls in the 2 m
// or 70 cm amateur band.
func inBand(rxMHz float64) bool {
	return (rxMHz >= 144.000 && rxMHz <= 148.000) || (rxMHz >= 420.000 && rxMHz <= 450.000)
}

// namePrefix returns the part of the name before the first hyphen.
func namePrefix(name string) string {
	prefix, _, _ := strings.Cut(name, "-")
	return prefix
}

func (m *Mapper) buildRow(rec feed.Record, index int) Row {
	offset := math.Abs(rec.RxMHz - rec.TxMHz)

	direction := "OFF"
	switch {
	case rec.TxMHz > rec.RxMHz:
		direction = "+RPT"
	case rec.TxMHz < rec.RxMHz:
		direction = "-RPT"
	}

	tone := rec.Tone
	if tone == "" {
		tone = "88.5"
	}
	if !strings.HasSuffix(tone, " Hz") {
		tone += " Hz"
	}

	digAnalog := "FM"
	if strings.Contains(strings.ToUpper(rec.Mode), "C4FM") {
		digAnalog = "DN"
	}

	toneMode := "TONE"
	if strings.Contains(strings.ToUpper(rec.Activation), "CARRIER") {
		toneMode = "OFF"
	}

	name := rec.Name
	if hasFMPolandTag(rec.Remarks) || hasFMPolandTag(rec.Link) {
		name += " fmpol"
	}
	if len(name) > 16 {
		name = name[:16]
	}

	row := defaultRow()
	row[ColChannelNo] = strconv.Itoa(index)
	row[ColReceiveFreq] = fmt.Sprintf("%.5f", rec.RxMHz)
	row[ColTransmitFreq] = fmt.Sprintf("%.5f", rec.TxMHz)
	row[ColOffsetFreq] = fmt.Sprintf("%.3f", offset)
	row[ColOffsetDirection] = direction
	row[ColDigAnalog] = digAnalog
	row[ColName] = name
	row[ColToneMode] = toneMode
	row[ColCTCSSFreq] = tone
	return row
}

// hasFMPolandTag matches the FM Poland network marker in free text.
func hasFMPolandTag(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "fm-poland") || strings.Contains(lower, "fm poland")
}

// defaultRow returns a row with every fixed-value column populated the
// way ADMS-14 exports them.
func defaultRow() Row {
	row := make(Row, len(Columns))
	for _, col := range Columns {
		row[col] = "OFF"
	}
	row[ColAutoMode] = "ON"
	row[ColOperatingMode] = "FM"
	row[ColDCSCode] = "023"
	row[ColDCSPolarity] = "RX Normal TX Normal"
	row[ColUserCTCSS] = "1600 Hz"
	row[ColRxDGID] = "RX 00"
	row[ColTxDGID] = "TX 00"
	row[ColTxPower] = "High (5W)"
	row[ColAutoStep] = "ON"
	row[ColStep] = "12.5KHz"
	row[ColComment] = ""
	row[ColExtraColumn] = "0"
	return row
}
