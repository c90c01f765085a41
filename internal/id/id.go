// Package id derives stable 32-bit entry IDs from domain identifiers.
package id

import (
	"sort"
	"unicode/utf16"
)

// HashString hashes s with the classic h = h*31 + c string hash over UTF-16
// code units, wrapping at 32 bits. Collisions are possible; callers
// deduplicate by ID with last-wins semantics.
func HashString(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	return h
}

// TransferKey hashes the two transaction IDs of a transfer pair. The IDs are
// sorted before hashing so both legs produce the same key regardless of which
// side is built first.
func TransferKey(a, b string) int32 {
	pair := []string{a, b}
	sort.Strings(pair)
	return HashString(pair[0] + pair[1])
}
