package ledger

import "github.com/luca-patrignani/fair-dice/domain/fair"

// Block is one settled exchange in the audit trail.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Record    Record `json:"record"`
}

// Record describes what an exchange was used for and what it disclosed.
type Record struct {
	MatchID    string          `json:"match_id"`
	Purpose    string          `json:"purpose"`
	Disclosure fair.Disclosure `json:"disclosure"`
}
