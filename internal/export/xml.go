package export

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/zarlcorp/zfake/internal/record"
)

const (
	xmlRoot   = "data"
	xmlRecord = "record"
)

// writeXML writes <data><record><field>value</field>...</record>...</data>
// with no declaration, attributes or namespaces.
func writeXML(w io.Writer, ds record.Dataset) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: xmlRoot}}
	if err := enc.EncodeToken(root); err != nil {
		return fmt.Errorf("xml: %w", err)
	}

	for i, r := range ds {
		if err := encodeXMLRecord(enc, r); err != nil {
			return fmt.Errorf("xml: record %d: %w", i, err)
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return fmt.Errorf("xml: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("xml: flush: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}

func encodeXMLRecord(enc *xml.Encoder, r record.Record) error {
	rec := xml.StartElement{Name: xml.Name{Local: xmlRecord}}
	if err := enc.EncodeToken(rec); err != nil {
		return err
	}

	for _, f := range r {
		el := xml.StartElement{Name: xml.Name{Local: f.Name}}
		if err := enc.EncodeToken(el); err != nil {
			return err
		}
		if err := enc.EncodeToken(xml.CharData(f.Value)); err != nil {
			return err
		}
		if err := enc.EncodeToken(el.End()); err != nil {
			return err
		}
	}

	return enc.EncodeToken(rec.End())
}
