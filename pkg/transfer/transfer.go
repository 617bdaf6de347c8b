// Package transfer moves whole collections in and out of the keeper as
// JSON files.
package transfer

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/satchel/pkg/core"
)

// Default export filenames per collection key.
const (
	NotesExportName = "notes_export.json"
	CardsExportName = "flashcards_export.json"
)

// ExportName returns the conventional export filename for a storage key.
func ExportName(key string) string {
	return key + "_export.json"
}

// Export serializes a collection as a pretty-printed JSON array, field
// order and presence unchanged.
func Export[R any](records []R) ([]byte, error) {
	if records == nil {
		records = []R{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize collection: %w", err)
	}
	return data, nil
}

// Import parses data as a JSON array of records.
//
// It fails with core.ErrMalformed when the bytes are not valid JSON and
// with core.ErrNotAnArray when the top-level value is anything but an
// array. Beyond that there is no schema validation: elements decode
// leniently and whatever fields match pass through as-is. The caller is
// expected to hand the result to ReplaceAll.
func Import[R any](data []byte) ([]R, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		if !json.Valid(data) {
			return nil, core.ErrMalformed
		}
		return nil, core.ErrNotAnArray
	}
	// A top-level null unmarshals into a nil slice without error; letting
	// it through would wipe the collection on ReplaceAll.
	if raw == nil {
		return nil, core.ErrNotAnArray
	}

	records := make([]R, 0, len(raw))
	for _, elem := range raw {
		var r R
		// Partial decodes keep the fields that matched; missing or
		// mistyped fields stay at their zero value. Deliberate trust
		// boundary: imported data is structurally, not content, validated.
		_ = json.Unmarshal(elem, &r)
		records = append(records, r)
	}
	return records, nil
}
