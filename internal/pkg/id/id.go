package id

import "github.com/oklog/ulid/v2"

// New returns a ULID string. ULIDs sort by creation time, so rows keyed by
// them list in insertion order.
func New() string {
	return ulid.Make().String()
}
