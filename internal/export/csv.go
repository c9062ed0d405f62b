package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/zarlcorp/zfake/internal/record"
)

// writeCSV writes a header taken from the first record's keys, then one row
// per record. Every record must carry exactly the header's fields.
func writeCSV(w io.Writer, ds record.Dataset) error {
	if len(ds) == 0 {
		return fmt.Errorf("csv: %w: no record to take the header from", ErrEmptyDataset)
	}

	header := ds[0].Keys()
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	row := make([]string, len(header))
	for i, r := range ds {
		if len(r) != len(header) {
			return fmt.Errorf("csv: record %d has %d fields, header has %d", i, len(r), len(header))
		}
		for j, name := range header {
			v, ok := r.Get(name)
			if !ok {
				return fmt.Errorf("csv: record %d missing field %q", i, name)
			}
			row[j] = v
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write record %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	return nil
}
