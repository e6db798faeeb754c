// Package ledger keeps an append-only, hash-chained audit trail of every
// commitment disclosed during a match.
//
// # Core Components
//
// Ledger: the in-memory chain, starting from a genesis block.
//
// Block: one settled exchange, linked to the previous block by its
// SHA3-256 hash.
//
// # Usage
//
// The turn sequencer appends a Record after each exchange is settled. Verify
// re-walks the chain so the final audit printed to the user can be trusted
// to be the one built during the match. Nothing is written to disk; the
// ledger lives as long as the process.
package ledger
