package adms

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
)

// IndexSentinel marks a static row whose channel index should be
// assigned from the running counter during merge.
const IndexSentinel = "-1"

// LoadStatic reads user-maintained channel rows from a headerless CSV
// in the output schema. A missing file is the caller's non-fatal case;
// a schema mismatch aborts the merge.
func LoadStatic(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "static: open")
	}
	defer f.Close() //nolint:errcheck

	return ReadStatic(f)
}

// ReadStatic parses static channel rows from r. Every record must have
// exactly one field per schema column.
func ReadStatic(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Columns)

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, eris.Wrap(err, "static: read row")
		}

		row := make(Row, len(Columns))
		for i, col := range Columns {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}
}

// MergeStatic appends static rows after the generated ones. Rows whose
// channel index is the sentinel get the next free index, continuing the
// generated numbering; rows with a real index pass through unchanged.
func MergeStatic(generated, static []Row) []Row {
	out := make([]Row, 0, len(generated)+len(static))
	out = append(out, generated...)

	next := len(generated) + 1
	for _, row := range static {
		if row[ColChannelNo] == IndexSentinel {
			merged := make(Row, len(row))
			for col, val := range row {
				merged[col] = val
			}
			merged[ColChannelNo] = strconv.Itoa(next)
			next++
			out = append(out, merged)
			continue
		}
		out = append(out, row)
	}

	return out
}
