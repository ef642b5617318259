package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// DecodeBody decodes a single JSON value from r, keeping numbers as json.Number
// so integer and float kinds stay distinguishable. Trailing data is an error.
func DecodeBody(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}

	off := dec.InputOffset()
	if off < 0 || off > int64(len(data)) || len(bytes.TrimSpace(data[off:])) != 0 {
		return nil, errors.New("unexpected data after body")
	}
	return body, nil
}
