package blueprint

import (
	"fmt"
	"io"
	"os"
)

// WriteDocument encodes the document as pretty-printed JSON and writes it
// to w. The output is the structured form of the blueprint, suitable for
// inspection or re-encoding.
func WriteDocument(doc *Document, w io.Writer) error {
	data, err := MarshalIndent(doc)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportDocument writes a blueprint document to a JSON file at path.
// This is a convenience wrapper around [WriteDocument] for file-based output.
func ExportDocument(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDocument(doc, f)
}

// ExportExchange writes an exchange string to a file at path with a
// trailing newline.
func ExportExchange(exchange, path string) error {
	if err := os.WriteFile(path, []byte(exchange+"\n"), 0o644); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return nil
}
