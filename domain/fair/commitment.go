package fair

import (
	"crypto/cipher"
	"crypto/hmac"
	"encoding/hex"
	"errors"
	"math/big"
	"strconv"

	"go.dedis.ch/kyber/v4/util/random"
	"go.dedis.ch/kyber/v4/xof/blake2xb"
	"golang.org/x/crypto/sha3"
)

// KeyBits is the entropy of every commitment key.
const KeyBits = 128

var ErrInvalidRange = errors.New("range must be positive")

// Commitment binds a secret value in [0, Range) to a published digest.
// The key and the secret stay hidden until Reveal is called.
type Commitment struct {
	Range  int
	Digest string
	key    string
	secret int
}

// NewEntropy returns the random stream used by the protocol, backed by
// crypto/rand.
func NewEntropy() cipher.Stream {
	return random.New()
}

// SeededEntropy returns a deterministic stream expanded from seed.
func SeededEntropy(seed []byte) cipher.Stream {
	return blake2xb.New(seed)
}

// Intn draws a uniform value in [0, n) from rand by rejection sampling
// over the bit length of n-1. Zero is a valid draw.
func Intn(rand cipher.Stream, n int) int {
	if n <= 1 {
		return 0
	}
	limit := big.NewInt(int64(n))
	bitlen := uint(big.NewInt(int64(n - 1)).BitLen())
	v := new(big.Int)
	for {
		v.SetBytes(random.Bits(bitlen, false, rand))
		if v.Cmp(limit) < 0 {
			return int(v.Int64())
		}
	}
}

// Commit draws a uniform secret in [0, r), a fresh key and publishes
// the keyed digest binding them.
func Commit(rand cipher.Stream, r int) (*Commitment, error) {
	if r <= 0 {
		return nil, ErrInvalidRange
	}
	secret := Intn(rand, r)
	key := hex.EncodeToString(random.Bits(KeyBits, false, rand))
	return &Commitment{
		Range:  r,
		Digest: Digest(key, secret),
		key:    key,
		secret: secret,
	}, nil
}

// Reveal discloses the key and the secret of the commitment.
func (c *Commitment) Reveal() (key string, secret int) {
	return c.key, c.secret
}

// Digest computes HMAC-SHA3-256(key, decimal(secret)) as lowercase hex.
func Digest(key string, secret int) string {
	mac := hmac.New(sha3.New256, []byte(key))
	mac.Write([]byte(strconv.Itoa(secret)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether key and secret reproduce digest.
func Verify(key string, secret int, digest string) bool {
	want, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	got, _ := hex.DecodeString(Digest(key, secret))
	return hmac.Equal(got, want)
}
