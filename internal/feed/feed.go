// Package feed models the przemienniki.net rxf.xml repeater directory
// and extracts validated records from it.
package feed

import "encoding/xml"

// Repeater is one <repeater> element of the rxf.xml feed.
type Repeater struct {
	XMLName    xml.Name    `xml:"repeater"`
	QRA        string      `xml:"qra"`
	QRG        []TypedText `xml:"qrg"`
	CTCSS      []TypedText `xml:"ctcss"`
	Mode       string      `xml:"mode"`
	Activation string      `xml:"activation"`
	Remarks    string      `xml:"remarks"`
	Link       string      `xml:"link"`
	Location   Location    `xml:"location"`
}

// TypedText is a text element carrying a type attribute, used by the
// feed for per-direction frequencies and tones (<qrg type="rx">,
// <ctcss type="tx">, ...).
type TypedText struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

// Location holds the positional children of a <repeater>. Most entries
// carry a Maidenhead locator; some only have explicit coordinates.
type Location struct {
	Locator   string `xml:"locator"`
	Latitude  string `xml:"latitude"`
	Longitude string `xml:"longitude"`
}

// byType returns the first element with the given type attribute.
func byType(elems []TypedText, typ string) (string, bool) {
	for _, e := range elems {
		if e.Type == typ {
			return e.Value, true
		}
	}
	return "", false
}
