// Package jsonutil holds the JSON helpers shared by the journal store and
// the rowkit CLI.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodeStrings encodes ss as a JSON array for a nullable TEXT column. An
// empty or nil slice encodes as NULL.
func EncodeStrings(ss []string) (*string, error) {
	if len(ss) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(ss)
	if err != nil {
		return nil, fmt.Errorf("encoding string list: %w", err)
	}
	s := string(b)
	return &s, nil
}

// DecodeStrings is the inverse of EncodeStrings. NULL decodes as nil.
func DecodeStrings(s *string) ([]string, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(*s), &out); err != nil {
		return nil, fmt.Errorf("decoding string list: %w", err)
	}
	return out, nil
}

// WriteIndented writes v as two-space indented JSON followed by a newline.
func WriteIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}
