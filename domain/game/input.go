package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errExit unwinds a phase when the user asks to leave.
var errExit = errors.New("exit requested")

// maxChoiceDigits keeps Atoi away from overflow.
const maxChoiceDigits = 9

// readChoice prompts until it gets a non-negative number accepted by valid.
// Help requests and rejected tokens never change the match.
func (q *Sequencer) readChoice(ctx context.Context, prompt string, valid func(int) bool) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		line, err := q.s.Input.ReadLine(ctx, prompt)
		if errors.Is(err, io.EOF) {
			return 0, errExit
		}
		if err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}

		token := strings.TrimSpace(line)
		switch {
		case strings.EqualFold(token, ExitToken):
			return 0, errExit
		case token == HelpToken:
			q.help()
			continue
		}
		n, ok := parseChoice(token)
		if !ok || !valid(n) {
			q.logger.Debug("input rejected", "phase", q.match.Phase, "input", token)
			q.s.View.Rejected(q.match.Phase, token)
			continue
		}
		return n, nil
	}
}

// parseChoice accepts plain ASCII digit strings only.
func parseChoice(token string) (int, bool) {
	if token == "" || len(token) > maxChoiceDigits {
		return 0, false
	}
	for _, c := range token {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(token)
	return n, err == nil
}

func (q *Sequencer) help() {
	h := Help{
		Phase:     q.match.Phase,
		Dice:      q.s.Dice,
		Matrix:    q.matrix,
		Taken:     -1,
		Suggested: -1,
	}
	if q.match.Phase == SelectingDice && q.match.OpponentDie >= 0 {
		h.Taken = q.match.OpponentDie
		h.Suggested = q.matrix.BestAgainst(q.match.OpponentDie)
	}
	switch q.match.Phase {
	case RollingOpponent:
		h.Range = q.s.Dice[q.match.OpponentDie].Len()
	case RollingUser:
		h.Range = q.s.Dice[q.match.UserDie].Len()
	}
	q.s.View.Help(h)
}
