package blueprint

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/factorykit/furnaceline/pkg/errors"
)

// =============================================================================
// Exchange String Codec
// =============================================================================

// Encode serializes the document into the portable exchange envelope:
// canonical JSON (struct key order, no inserted whitespace, UTF-8),
// deflated at maximum compression, base64-encoded with the standard padded
// alphabet, and prefixed with the version character '0'.
//
// Consumers reversing the envelope must undo exactly these four steps in
// order. The compression level only affects output size, not correctness:
// decoders inflate any valid deflate stream.
func Encode(doc *Document) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "marshal blueprint")
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "initialize compressor")
	}
	if _, err := zw.Write(raw); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "compress blueprint")
	}
	if err := zw.Close(); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "flush compressor")
	}

	return string(EnvelopeVersion) + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses [Encode]: it strips the version character, base64-decodes,
// inflates, and unmarshals the document. It exists for round-trip
// verification of generated strings, not as a general importer; documents
// are only checked for structural shape, never game validity.
func Decode(s string) (*Document, error) {
	if len(s) == 0 || s[0] != EnvelopeVersion {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"exchange string must start with version character %q", string(EnvelopeVersion))
	}

	compressed, err := base64.StdEncoding.DecodeString(s[1:])
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode base64 payload")
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open deflate stream")
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "inflate payload")
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "unmarshal blueprint")
	}
	return &doc, nil
}

// MarshalIndent renders the document as pretty-printed JSON for the
// structured output mode of the CLI.
func MarshalIndent(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal blueprint")
	}
	return data, nil
}
