package fair

import (
	"crypto/cipher"
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("counterpart value out of range")
	ErrSettled    = errors.New("exchange already settled")
)

// Combine merges the committed secret with the counterpart's value. The
// result is uniform over [0, r) whenever secret is, whatever counterpart is.
func Combine(secret, counterpart, r int) int {
	return ((secret+counterpart)%r + r) % r
}

// Disclosure is everything published once an exchange is settled.
type Disclosure struct {
	Range       int    `json:"range"`
	Digest      string `json:"digest"`
	Key         string `json:"key"`
	Secret      int    `json:"secret"`
	Counterpart int    `json:"counterpart"`
	Combined    int    `json:"combined"`
	Verified    bool   `json:"verified"`
}

// Exchange runs one commit, combine, reveal, verify cycle. Only the digest
// is reachable until Settle has received the counterpart's value.
type Exchange struct {
	commitment *Commitment
	settled    bool
}

// Open commits to a fresh secret in [0, r).
func Open(rand cipher.Stream, r int) (*Exchange, error) {
	c, err := Commit(rand, r)
	if err != nil {
		return nil, err
	}
	return NewExchange(c), nil
}

// NewExchange settles an existing commitment. Its digest is checked against
// the revealed key and secret as published, so a digest altered after
// Commit fails verification.
func NewExchange(c *Commitment) *Exchange {
	return &Exchange{commitment: c}
}

func (e *Exchange) Digest() string {
	return e.commitment.Digest
}

func (e *Exchange) Range() int {
	return e.commitment.Range
}

// Settle accepts the counterpart's value, combines it with the secret and
// only then reveals and verifies the commitment.
func (e *Exchange) Settle(counterpart int) (Disclosure, error) {
	if e.settled {
		return Disclosure{}, ErrSettled
	}
	r := e.commitment.Range
	if counterpart < 0 || counterpart >= r {
		return Disclosure{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, counterpart, r)
	}
	e.settled = true

	key, secret := e.commitment.Reveal()
	return Disclosure{
		Range:       r,
		Digest:      e.commitment.Digest,
		Key:         key,
		Secret:      secret,
		Counterpart: counterpart,
		Combined:    Combine(secret, counterpart, r),
		Verified:    Verify(key, secret, e.commitment.Digest),
	}, nil
}
