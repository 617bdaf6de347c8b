// Package id produces collision-resistant identifiers for new records.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"
)

// New returns a compact unique identifier: the current Unix time in
// milliseconds followed by 64 bits of randomness, both base36-encoded.
// The format matches identifiers already present in persisted collections.
func New() string {
	var buf [8]byte
	// rand.Read never fails on supported platforms (it panics instead),
	// so there is no error path to surface.
	_, _ = rand.Read(buf[:])

	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strconv.FormatUint(binary.BigEndian.Uint64(buf[:]), 36)
	return ts + suffix
}
