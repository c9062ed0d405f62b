package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zarlcorp/zfake/internal/record"
)

const jsonIndent = "    "

// writeJSON writes the dataset as one pretty-printed array. An empty dataset
// is written as [].
func writeJSON(w io.Writer, ds record.Dataset) error {
	if ds == nil {
		ds = record.Dataset{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("json: %w", err)
	}
	return nil
}

// writeJSONL writes one compact JSON object per line.
func writeJSONL(w io.Writer, ds record.Dataset) error {
	enc := json.NewEncoder(w)
	for i, r := range ds {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("jsonl: record %d: %w", i, err)
		}
	}
	return nil
}
