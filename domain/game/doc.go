// Package game implements the turn sequencer of a non-transitive dice match
// between the user and the opponent.
//
// The sequencer moves through the phases
//
//	DeterminingFirstMove -> SelectingDice -> RollingOpponent -> RollingUser -> Declaring -> Terminal
//
// and can reach Cancelled from any interactive phase when the user types the
// exit token. Every random decision of the opponent goes through the
// commitment exchange of package fair: the digest is shown before the user
// answers and the key and secret are revealed right after.
//
// All side effects go through the Session: randomness, input lines, the
// view and the optional ledger. Tests substitute a seeded entropy stream and
// a scripted reader.
package game
