package artifact

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cognicore/lexipack/pkg/lexipack/internalerr"
)

// MarshalPretty renders the document as indented JSON. HTML escaping is
// disabled so Chinese text stays readable in the artifact.
func MarshalPretty(d Document) ([]byte, error) {
	return marshal(d, "  ")
}

// MarshalCompact renders the document with all insignificant whitespace
// stripped.
func MarshalCompact(d Document) ([]byte, error) {
	return marshal(d, "")
}

func marshal(d Document, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WritePretty writes the indented JSON artifact.
func WritePretty(path string, d Document) error {
	data, err := MarshalPretty(d)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteCompact writes the whitespace-stripped JSON artifact.
func WriteCompact(path string, d Document) error {
	data, err := MarshalCompact(d)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteGzip writes the gzip artifact. The payload is the compact JSON
// form, so decoding it must yield content equivalent to the pretty
// artifact.
func WriteGzip(path string, d Document) error {
	data, err := MarshalCompact(d)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("gzip %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("gzip %s: %w", path, err)
	}
	return f.Close()
}

// Load reads a JSON artifact, transparently decompressing `.gz` files.
func Load(path string) (Document, error) {
	data, err := ReadRaw(path)
	if err != nil {
		return Document{}, err
	}

	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

// ReadRaw returns the decoded JSON bytes of an artifact file.
func ReadRaw(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return data, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gunzip %s: %w", path, err)
	}
	defer zr.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(zr); err != nil {
		return nil, fmt.Errorf("gunzip %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

// requiredFields must be present in any combined JSON artifact.
var requiredFields = []string{"lastUpdateDate", "totalCount", "words"}

// ValidateRaw performs structural validation on raw artifact bytes:
// required fields present with the right types, declared count matching
// the array length, no empty or duplicate words.
func ValidateRaw(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: malformed JSON: %v", internalerr.ErrValidation, err)
	}

	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return fmt.Errorf("%w: missing required field %q", internalerr.ErrValidation, field)
		}
	}

	var count int
	if err := json.Unmarshal(raw["totalCount"], &count); err != nil {
		return fmt.Errorf("%w: totalCount must be an integer", internalerr.ErrValidation)
	}
	var date string
	if err := json.Unmarshal(raw["lastUpdateDate"], &date); err != nil {
		return fmt.Errorf("%w: lastUpdateDate must be a string", internalerr.ErrValidation)
	}
	var words []string
	if err := json.Unmarshal(raw["words"], &words); err != nil {
		return fmt.Errorf("%w: words must be an array of strings", internalerr.ErrValidation)
	}

	doc := Document{LastUpdateDate: date, TotalCount: count, Words: words}
	return doc.Validate()
}
