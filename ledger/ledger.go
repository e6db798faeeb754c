package ledger

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/sha3"
)

const genesisPrevHash = "0"

type Ledger struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// New creates a ledger holding only the genesis block.
func New() *Ledger {
	l := &Ledger{now: time.Now}
	genesis := Block{
		Index:     0,
		Timestamp: l.now().Unix(),
		PrevHash:  genesisPrevHash,
		Record:    Record{Purpose: "genesis"},
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)
	return l
}

// Append links a new record to the latest block.
func (l *Ledger) Append(r Record) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.blocks[len(l.blocks)-1]
	b := Block{
		Index:     latest.Index + 1,
		Timestamp: l.now().Unix(),
		PrevHash:  latest.Hash,
		Record:    r,
	}
	b.Hash = calculateHash(b)

	if err := validateBlock(b, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}
	l.blocks = append(l.blocks, b)
	return b, nil
}

// Blocks returns a copy of the chain, genesis included.
func (l *Ledger) Blocks() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Block(nil), l.blocks...)
}

// Records returns the records appended after genesis.
func (l *Ledger) Records() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	records := make([]Record, 0, len(l.blocks)-1)
	for _, b := range l.blocks[1:] {
		records = append(records, b.Record)
	}
	return records
}

// Verify checks the genesis block and every link of the chain.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("empty ledger")
	}
	if l.blocks[0].PrevHash != genesisPrevHash || l.blocks[0].Hash != calculateHash(l.blocks[0]) {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

// calculateHash is the SHA3-256 of index, timestamp, previous hash and the
// JSON encoded record.
func calculateHash(b Block) string {
	record, _ := json.Marshal(b.Record)
	data := fmt.Sprintf("%d%d%s%s", b.Index, b.Timestamp, b.PrevHash, record)
	sum := sha3.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}
