package output

import (
	"encoding/json"
	"fmt"
	"io"

	"chemfetch/internal/resolve"
)

type Format string

const (
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
)

// Valid reports whether f is a supported output format.
func Valid(f Format) bool {
	return f == FormatTSV || f == FormatJSON
}

type jsonRecord struct {
	CAS       string `json:"cas"`
	IUPACName string `json:"iupac_name"`
	SMILES    string `json:"smiles"`
}

// Write renders the record to w: one tab-delimited line by default, or a
// single JSON object when the json format is selected.
func Write(w io.Writer, format Format, rec resolve.Record) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(jsonRecord{
			CAS:       rec.RegistryNumber,
			IUPACName: rec.StandardName,
			SMILES:    rec.StructureNotation,
		})
	case FormatTSV, "":
		_, err := fmt.Fprintln(w, rec.TabLine())
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
