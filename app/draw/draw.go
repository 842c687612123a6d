// Package draw implements the prize draw: a random sample of guests is
// revealed one by one for suspense, and the last revealed guest wins.
package draw

import (
	"errors"
	"math/rand"

	"github.com/digitalcpa/invitebot/app/guestbook"
)

// sampleSize caps how many guests take part in one draw.
const sampleSize = 6

// ErrEmpty means the registry holds no guests to draw from.
var ErrEmpty = errors.New("draw: no guests registered")

// Result is the outcome of one draw. Reveal holds the suspense sequence in
// announcement order; Winner is the final pick and is not part of Reveal.
type Result struct {
	Reveal []guestbook.Record
	Winner guestbook.Record
}

// Select samples min(6, len(records)) guests uniformly without replacement
// and declares the last sampled guest the winner. Duplicate registrations
// raise a guest's odds on purpose; the draw is over rows, not unique users.
func Select(records []guestbook.Record, rnd *rand.Rand) (Result, error) {
	if len(records) == 0 {
		return Result{}, ErrEmpty
	}

	n := sampleSize
	if len(records) < n {
		n = len(records)
	}

	perm := rnd.Perm(len(records))
	sample := make([]guestbook.Record, n)
	for i := 0; i < n; i++ {
		sample[i] = records[perm[i]]
	}

	return Result{
		Reveal: sample[:n-1],
		Winner: sample[n-1],
	}, nil
}
