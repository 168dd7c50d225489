// Package booking holds the display-level helpers around the booking
// workflow: reference generation, party-size heuristics and table
// combination suggestions.  None of these carry correctness guarantees
// beyond display convenience; conflict detection stays in the store.
package booking

import (
	"crypto/rand"
	"fmt"
	"math"
	"time"
)

// refAlphabet omits 0/O and 1/I so references survive being read out
// over the phone.
const refAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const refSuffixLen = 4

// NewReference generates a human-readable booking reference from the
// current date and a random suffix, e.g. "BR-20260830-X7K2".  Uniqueness
// is probabilistic only; any global guarantee belongs to the store.
func NewReference(now time.Time) (string, error) {
	buf := make([]byte, refSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = refAlphabet[int(b)%len(refAlphabet)]
	}
	return fmt.Sprintf("BR-%s-%s", now.Format("20060102"), string(buf)), nil
}

// ComfortableCapacity suggests the seat count to aim for when placing a
// party: the party size plus a 20% buffer, rounded up.
func ComfortableCapacity(partySize int) int {
	if partySize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(partySize) * 1.2))
}
