package collection

import (
	"encoding/json"
	"log/slog"
)

// decodeRecords turns a stored value back into a collection, failing soft:
// an absent value, invalid JSON or a non-array top level all yield an empty
// collection. A corrupt file must not block the whole keeper from loading.
//
// Elements are decoded leniently, one by one: a record with missing or
// mistyped fields keeps whatever decoded cleanly and zero values for the
// rest, mirroring the trust-all import policy.
func decodeRecords[R any](data []byte, key string, logger *slog.Logger) []R {
	if len(data) == 0 {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("corrupt collection value, starting empty", "key", key, "error", err)
		return nil
	}

	records := make([]R, 0, len(raw))
	for i, elem := range raw {
		var r R
		if err := json.Unmarshal(elem, &r); err != nil {
			logger.Warn("record decoded partially", "key", key, "index", i, "error", err)
		}
		records = append(records, r)
	}
	return records
}
