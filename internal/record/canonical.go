package record

import (
	"crypto/rand"
	"encoding/binary"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// hashSeed salts merge keys so they are stable within one process but not
// across runs. Keys must never be persisted or compared between invocations.
var hashSeed = newHashSeed()

func newHashSeed() [8]byte {
	var seed [8]byte
	if _, err := rand.Read(seed[:]); err != nil {
		binary.LittleEndian.PutUint64(seed[:], uint64(time.Now().UnixNano()))
	}
	return seed
}

// Normalize returns the case-folded matching form of s. Only simple case
// folding is applied; the derived form is used for matching, never display.
func Normalize(s string) string {
	return strings.ToLower(s)
}

// CanonicalURL reduces a URL to the form used for merge-key equality:
// the scheme, a leading "www.", the fragment, the query, and a single
// trailing slash are stripped, in that order. The result keeps the original
// casing; case folding is matching's concern, not merging's.
func CanonicalURL(url string) string {
	c := strings.TrimPrefix(url, "https://")
	c = strings.TrimPrefix(c, "http://")
	c = strings.TrimPrefix(c, "www.")
	c = cutBefore(c, "#")
	c = cutBefore(c, "?")
	return strings.TrimSuffix(c, "/")
}

// cutBefore returns the part of s before the first sep. If s begins with
// sep the cut would leave an empty key, so the un-split string is kept.
func cutBefore(s, sep string) string {
	if head, _, ok := strings.Cut(s, sep); ok && head != "" {
		return head
	}
	return s
}

// MergeKey hashes the canonical form of url. Equal within one process for
// equal canonical forms; deliberately unstable across processes.
func MergeKey(url string) uint64 {
	d := xxhash.New()
	_, _ = d.Write(hashSeed[:])
	_, _ = d.WriteString(CanonicalURL(url))
	return d.Sum64()
}
