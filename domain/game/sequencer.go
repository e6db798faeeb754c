package game

import (
	"context"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/fair"
)

// FirstMoveRange is the range of the commitment deciding who selects first.
const FirstMoveRange = 2

var ErrTooFewDice = errors.New("need at least 2 dice to select distinct ones")

// Sequencer drives a single match from the first move to the verdict.
type Sequencer struct {
	s      *Session
	match  Match
	matrix dice.Matrix
	logger *slog.Logger
	open   func(rand cipher.Stream, r int) (*fair.Exchange, error)
}

// NewSequencer creates a match in the DeterminingFirstMove phase.
func NewSequencer(s *Session) *Sequencer {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Sequencer{
		s: s,
		match: Match{
			ID:          s.MatchID,
			Phase:       DeterminingFirstMove,
			UserDie:     -1,
			OpponentDie: -1,
		},
		matrix: dice.NewMatrix(s.Dice),
		logger: logger.With("match", s.MatchID),
		open:   fair.Open,
	}
}

// Match returns a snapshot of the current state.
func (q *Sequencer) Match() Match {
	return q.match
}

func (q *Sequencer) Phase() Phase {
	return q.match.Phase
}

// Run steps through the match until it is declared or cancelled.
func (q *Sequencer) Run(ctx context.Context) (Match, error) {
	if len(q.s.Dice) < 2 {
		return q.match, ErrTooFewDice
	}
	for !q.match.Phase.Done() {
		if err := q.Step(ctx); err != nil {
			return q.match, err
		}
	}
	return q.match, nil
}

// Step runs the current phase to completion, awaiting as much input as it
// needs. An exit request moves the match to Cancelled and is not an error.
func (q *Sequencer) Step(ctx context.Context) error {
	var err error
	switch q.match.Phase {
	case DeterminingFirstMove:
		err = q.determineFirstMove(ctx)
	case SelectingDice:
		err = q.selectDice(ctx)
	case RollingOpponent:
		err = q.roll(ctx, Opponent)
	case RollingUser:
		err = q.roll(ctx, User)
	case Declaring:
		q.declare()
	case Terminal, Cancelled:
		return nil
	default:
		return fmt.Errorf("unknown phase %q", q.match.Phase)
	}
	if errors.Is(err, errExit) {
		q.cancel()
		return nil
	}
	return err
}

func (q *Sequencer) transition(next Phase) {
	q.logger.Debug("phase transition", "from", q.match.Phase, "to", next)
	q.match.Phase = next
}

func (q *Sequencer) cancel() {
	q.logger.Info("match cancelled", "phase", q.match.Phase)
	q.match.Outcome = NoOutcome
	q.transition(Cancelled)
	q.s.View.Cancelled()
}

func (q *Sequencer) determineFirstMove(ctx context.Context) error {
	d, err := q.exchange(ctx, PurposeFirstMove, FirstMoveRange, "Enter your guess (0 or 1)")
	if err != nil {
		return err
	}
	userFirst := d.Counterpart == d.Secret
	if userFirst {
		q.match.FirstMover = User
	} else {
		q.match.FirstMover = Opponent
	}
	q.s.View.FirstMove(userFirst, d.Counterpart, d.Secret)
	q.logger.Debug("first move decided", "first", q.match.FirstMover)
	q.transition(SelectingDice)
	return nil
}

// selectDice draws the opponent's preferred die on entry. When the user
// selects first and takes that die, the opponent falls back to the lowest
// other index.
func (q *Sequencer) selectDice(ctx context.Context) error {
	n := len(q.s.Dice)
	preferred := fair.Intn(q.s.entropy(), n)

	if q.match.FirstMover == Opponent {
		q.match.OpponentDie = preferred
		q.s.View.OfferDice(q.s.Dice, preferred)
		user, err := q.readChoice(ctx, "Choose your dice", func(i int) bool {
			return i < n && i != preferred
		})
		if err != nil {
			return err
		}
		q.match.UserDie = user
	} else {
		q.s.View.OfferDice(q.s.Dice, -1)
		user, err := q.readChoice(ctx, "Choose your dice", func(i int) bool {
			return i < n
		})
		if err != nil {
			return err
		}
		q.match.UserDie = user
		q.match.OpponentDie = distinctPick(preferred, user)
	}

	q.s.View.DiceSelected(q.s.Dice, q.match.UserDie, q.match.OpponentDie)
	q.logger.Debug("dice selected", "user", q.match.UserDie, "opponent", q.match.OpponentDie)
	q.transition(RollingOpponent)
	return nil
}

// distinctPick keeps preferred unless it is taken, in which case the lowest
// index other than taken is used.
func distinctPick(preferred, taken int) int {
	if preferred != taken {
		return preferred
	}
	if taken == 0 {
		return 1
	}
	return 0
}

// roll settles one exchange whose range is the number of faces of the
// acting party's die; the combined value picks the face.
func (q *Sequencer) roll(ctx context.Context, party Party) error {
	idx, purpose, next := q.match.OpponentDie, PurposeOpponentRoll, RollingUser
	if party == User {
		idx, purpose, next = q.match.UserDie, PurposeUserRoll, Declaring
	}
	die := q.s.Dice[idx]

	d, err := q.exchange(ctx, purpose, die.Len(), "Your selection")
	if err != nil {
		return err
	}
	result := &RoundResult{Disclosure: d, Face: die.Face(d.Combined)}
	if party == User {
		q.match.UserRoll = result
	} else {
		q.match.OpponentRoll = result
	}
	q.s.View.Rolled(party, *result)
	q.transition(next)
	return nil
}

func (q *Sequencer) declare() {
	user, opponent := q.match.UserRoll.Face, q.match.OpponentRoll.Face
	switch {
	case user > opponent:
		q.match.Outcome = UserWins
	case user < opponent:
		q.match.Outcome = OpponentWins
	default:
		q.match.Outcome = Tie
	}
	q.logger.Info("match declared", "outcome", q.match.Outcome, "user", user, "opponent", opponent)
	q.transition(Terminal)
	q.s.View.Declared(q.match)
}
