// Package adms maps repeater directory records onto the fixed ADMS-14
// memory-channel schema used by the Yaesu FT-5D programming software,
// merges static channel entries, and pads the channel list to the
// radio's full memory capacity.
package adms

import "strconv"

// Capacity is the number of memory channels the FT-5D import expects.
const Capacity = 900

// Column names of the ADMS-14 import schema, in file order. These are
// the exact strings the programming software expects; do not reorder.
const (
	ColChannelNo       = "Channel No"
	ColPriorityCH      = "Priority CH"
	ColReceiveFreq     = "Receive Frequency"
	ColTransmitFreq    = "Transmit Frequency"
	ColOffsetFreq      = "Offset Frequency"
	ColOffsetDirection = "Offset Direction"
	ColAutoMode        = "AUTO MODE"
	ColOperatingMode   = "Operating Mode"
	ColDigAnalog       = "DIG/ANALOG"
	ColTag             = "TAG"
	ColName            = "Name"
	ColToneMode        = "Tone Mode"
	ColCTCSSFreq       = "CTCSS Frequency"
	ColDCSCode         = "DCS Code"
	ColDCSPolarity     = "DCS Polarity"
	ColUserCTCSS       = "USer CTCSS"
	ColRxDGID          = "RX DG-ID"
	ColTxDGID          = "TX DG-ID"
	ColTxPower         = "Tx Power"
	ColSkip            = "Skip"
	ColAutoStep        = "AUTO STEP"
	ColStep            = "Step"
	ColMemoryMask      = "Memory Mask"
	ColATT             = "ATT"
	ColSMeterSQL       = "S-Meter SQL"
	ColBell            = "Bell"
	ColNarrow          = "Narrow"
	ColClockShift      = "Clock Shift"
	ColComment         = "Comment"
	ColExtraColumn     = "Extra Column"
)

// Columns is the full ADMS-14 header in file order: the 28 channel
// fields, BANK 1 through BANK 24, Comment, and the trailing extra
// column the importer emits.
var Columns = buildColumns()

func buildColumns() []string {
	cols := []string{
		ColChannelNo,
		ColPriorityCH,
		ColReceiveFreq,
		ColTransmitFreq,
		ColOffsetFreq,
		ColOffsetDirection,
		ColAutoMode,
		ColOperatingMode,
		ColDigAnalog,
		ColTag,
		ColName,
		ColToneMode,
		ColCTCSSFreq,
		ColDCSCode,
		ColDCSPolarity,
		ColUserCTCSS,
		ColRxDGID,
		ColTxDGID,
		ColTxPower,
		ColSkip,
		ColAutoStep,
		ColStep,
		ColMemoryMask,
		ColATT,
		ColSMeterSQL,
		ColBell,
		ColNarrow,
		ColClockShift,
	}
	for i := 1; i <= 24; i++ {
		cols = append(cols, "BANK "+strconv.Itoa(i))
	}
	return append(cols, ColComment, ColExtraColumn)
}

// Row is one output line: a mapping from column name to value. Rows are
// created once by the mapper, merger, or padder and written once.
type Row map[string]string

// Blank returns a placeholder row carrying only the channel index. The
// importer still wants the trailing extra column as "0" on every line.
func Blank(index int) Row {
	row := make(Row, len(Columns))
	for _, col := range Columns {
		row[col] = ""
	}
	row[ColChannelNo] = strconv.Itoa(index)
	row[ColExtraColumn] = "0"
	return row
}

// Values renders the row in fixed column order.
func (r Row) Values() []string {
	out := make([]string, len(Columns))
	for i, col := range Columns {
		out[i] = r[col]
	}
	return out
}
