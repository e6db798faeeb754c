package game

import "github.com/luca-patrignani/fair-dice/domain/fair"

// Phase is a state of the turn sequencer.
type Phase string

const (
	DeterminingFirstMove Phase = "determining_first_move"
	SelectingDice        Phase = "selecting_dice"
	RollingOpponent      Phase = "rolling_opponent"
	RollingUser          Phase = "rolling_user"
	Declaring            Phase = "declaring"
	Terminal             Phase = "terminal"
	Cancelled            Phase = "cancelled"
)

// Done reports whether no further step can run.
func (p Phase) Done() bool {
	return p == Terminal || p == Cancelled
}

type Party string

const (
	User     Party = "user"
	Opponent Party = "opponent"
)

type Outcome string

const (
	NoOutcome    Outcome = ""
	UserWins     Outcome = "user_wins"
	OpponentWins Outcome = "opponent_wins"
	Tie          Outcome = "tie"
)

// Purpose names what a commitment is used for.
type Purpose string

const (
	PurposeFirstMove    Purpose = "first move"
	PurposeOpponentRoll Purpose = "opponent roll"
	PurposeUserRoll     Purpose = "user roll"
)

// RoundResult is one settled roll. Disclosure.Combined is the face index.
type RoundResult struct {
	Disclosure fair.Disclosure
	Face       int
}

// Match is the state mutated by the sequencer. Die indices are -1 until
// chosen.
type Match struct {
	ID           string
	Phase        Phase
	FirstMover   Party
	UserDie      int
	OpponentDie  int
	OpponentRoll *RoundResult
	UserRoll     *RoundResult
	Outcome      Outcome
}
