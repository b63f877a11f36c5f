package adms

import (
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"
)

// WriteCSV writes rows in fixed column order. The header is optional:
// the merge-capable import variant of ADMS-14 expects none.
func WriteCSV(w io.Writer, rows []Row, header bool) error {
	writer := csv.NewWriter(w)

	if header {
		if err := writer.Write(Columns); err != nil {
			return eris.Wrap(err, "write header")
		}
	}

	for _, row := range rows {
		if err := writer.Write(row.Values()); err != nil {
			return eris.Wrap(err, "write row")
		}
	}

	writer.Flush()
	return eris.Wrap(writer.Error(), "flush")
}
