package game

import (
	"context"
	"crypto/cipher"
	"log/slog"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/fair"
	"github.com/luca-patrignani/fair-dice/ledger"
)

const (
	ExitToken = "x"
	HelpToken = "?"
)

// LineReader supplies one line of user input per prompt. io.EOF ends the
// session like the exit token.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Help is the contextual guidance shown on a help request.
type Help struct {
	Phase  Phase
	Dice   []dice.Die
	Matrix dice.Matrix
	// Taken is the die already held by the opponent, -1 if none.
	Taken int
	// Suggested is the die with the best odds against Taken, -1 if none.
	Suggested int
	// Range is the number of faces of the die being rolled, 0 outside
	// the rolling phases.
	Range int
}

// View renders the match. Implementations only display; they never decide.
type View interface {
	Committed(purpose Purpose, digest string, r int)
	Revealed(purpose Purpose, d fair.Disclosure)
	FirstMove(userFirst bool, guess, secret int)
	OfferDice(dice []dice.Die, taken int)
	DiceSelected(dice []dice.Die, user, opponent int)
	Rolled(party Party, r RoundResult)
	Declared(m Match)
	Help(h Help)
	Rejected(phase Phase, input string)
	Cancelled()
}

// Session is everything a match needs from the outside world. It is owned
// by one sequencer for the whole match.
type Session struct {
	MatchID string
	Dice    []dice.Die
	Entropy cipher.Stream
	Input   LineReader
	View    View
	Logger  *slog.Logger
	// Ledger is optional.
	Ledger *ledger.Ledger
}

func (s *Session) entropy() cipher.Stream {
	if s.Entropy == nil {
		s.Entropy = fair.NewEntropy()
	}
	return s.Entropy
}
