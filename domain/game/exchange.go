package game

import (
	"context"
	"fmt"

	"github.com/luca-patrignani/fair-dice/domain/fair"
	"github.com/luca-patrignani/fair-dice/ledger"
)

// exchange is the single commit, publish, read, settle routine behind the
// first move and both rolls. If the user exits while the counterpart value
// is pending the commitment is dropped unrevealed.
func (q *Sequencer) exchange(ctx context.Context, purpose Purpose, r int, prompt string) (fair.Disclosure, error) {
	e, err := q.open(q.s.entropy(), r)
	if err != nil {
		return fair.Disclosure{}, err
	}
	q.s.View.Committed(purpose, e.Digest(), r)

	counterpart, err := q.readChoice(ctx, prompt, func(v int) bool { return v < r })
	if err != nil {
		return fair.Disclosure{}, err
	}
	d, err := e.Settle(counterpart)
	if err != nil {
		return fair.Disclosure{}, err
	}
	if !d.Verified {
		q.logger.Warn("commitment verification failed", "purpose", purpose, "digest", d.Digest)
	}
	q.s.View.Revealed(purpose, d)

	if q.s.Ledger != nil {
		if _, err := q.s.Ledger.Append(ledger.Record{
			MatchID:    q.match.ID,
			Purpose:    string(purpose),
			Disclosure: d,
		}); err != nil {
			return d, fmt.Errorf("record %s: %w", purpose, err)
		}
	}
	return d, nil
}
