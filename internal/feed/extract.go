package feed

import (
	"fmt"
	"strconv"
	"strings"
)

// SkipReason classifies why an entry was dropped during extraction.
type SkipReason string

const (
	SkipNoLocation   SkipReason = "no_location"
	SkipNoFrequency  SkipReason = "no_frequency"
	SkipBadFrequency SkipReason = "bad_frequency"
	SkipBadLatLon    SkipReason = "bad_latlon"
)

// Skip describes a non-fatal per-entry drop. A nil *Skip means the
// entry was extracted successfully.
type Skip struct {
	Reason SkipReason
	Detail string
}

func (s *Skip) String() string {
	return fmt.Sprintf("%s: %s", s.Reason, s.Detail)
}

// Record is one validated directory entry, with the feed's inverted
// RX/TX typing already resolved to the device's point of view: RxMHz is
// what the handheld listens on (the feed's "tx" frequency) and TxMHz is
// what it transmits on (the feed's "rx" frequency). The feed labels
// frequencies from the repeater's perspective; this swap is a known
// quirk and must be preserved.
type Record struct {
	Name       string
	RxMHz      float64
	TxMHz      float64
	Tone       string
	Mode       string
	Activation string
	Remarks    string
	Link       string

	Locator   string
	Lat       float64
	Lon       float64
	HasLatLon bool
}

// Extract validates a single feed entry. It returns either a Record or
// a Skip; it never fails the batch.
func Extract(r Repeater) (Record, *Skip) {
	rec := Record{
		Name:       strings.TrimSpace(r.QRA),
		Mode:       strings.TrimSpace(r.Mode),
		Activation: strings.TrimSpace(r.Activation),
		Remarks:    strings.TrimSpace(r.Remarks),
		Link:       strings.TrimSpace(r.Link),
	}
	if rec.Name == "" {
		rec.Name = "Unknown"
	}

	// Device TX comes from the feed's "rx" element and vice versa.
	feedRx, okRx := byType(r.QRG, "rx")
	feedTx, okTx := byType(r.QRG, "tx")
	if !okRx || !okTx {
		return Record{}, &Skip{Reason: SkipNoFrequency, Detail: rec.Name}
	}

	var err error
	rec.TxMHz, err = strconv.ParseFloat(strings.TrimSpace(feedRx), 64)
	if err != nil {
		return Record{}, &Skip{Reason: SkipBadFrequency, Detail: fmt.Sprintf("%s: qrg rx %q", rec.Name, feedRx)}
	}
	rec.RxMHz, err = strconv.ParseFloat(strings.TrimSpace(feedTx), 64)
	if err != nil {
		return Record{}, &Skip{Reason: SkipBadFrequency, Detail: fmt.Sprintf("%s: qrg tx %q", rec.Name, feedTx)}
	}

	if tone, ok := byType(r.CTCSS, "rx"); ok {
		rec.Tone = strings.TrimSpace(tone)
	}

	rec.Locator = strings.TrimSpace(r.Location.Locator)
	if rec.Locator == "" {
		lat := strings.TrimSpace(r.Location.Latitude)
		lon := strings.TrimSpace(r.Location.Longitude)
		if lat == "" || lon == "" {
			return Record{}, &Skip{Reason: SkipNoLocation, Detail: rec.Name}
		}
		rec.Lat, err = strconv.ParseFloat(lat, 64)
		if err != nil {
			return Record{}, &Skip{Reason: SkipBadLatLon, Detail: fmt.Sprintf("%s: latitude %q", rec.Name, lat)}
		}
		rec.Lon, err = strconv.ParseFloat(lon, 64)
		if err != nil {
			return Record{}, &Skip{Reason: SkipBadLatLon, Detail: fmt.Sprintf("%s: longitude %q", rec.Name, lon)}
		}
		rec.HasLatLon = true
	}

	return rec, nil
}
