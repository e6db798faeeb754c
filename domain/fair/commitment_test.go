package fair

import (
	"encoding/hex"
	"testing"
)

func TestCommitInRange(t *testing.T) {
	rand := SeededEntropy([]byte("commit-range"))
	for _, r := range []int{1, 2, 6, 20} {
		for i := 0; i < 200; i++ {
			c, err := Commit(rand, r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_, secret := c.Reveal()
			if secret < 0 || secret >= r {
				t.Fatalf("secret %d out of [0, %d)", secret, r)
			}
		}
	}
}

func TestCommitInvalidRange(t *testing.T) {
	if _, err := Commit(NewEntropy(), 0); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestCommitKeyEntropy(t *testing.T) {
	rand := NewEntropy()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		c, err := Commit(rand, 6)
		if err != nil {
			t.Fatal(err)
		}
		key, _ := c.Reveal()
		raw, err := hex.DecodeString(key)
		if err != nil {
			t.Fatalf("key is not hex: %v", err)
		}
		if len(raw)*8 != KeyBits {
			t.Fatalf("expected %d key bits, got %d", KeyBits, len(raw)*8)
		}
		if seen[key] {
			t.Fatalf("key %s generated twice", key)
		}
		seen[key] = true
	}
}

func TestCommitDigestMatchesReveal(t *testing.T) {
	c, err := Commit(NewEntropy(), 6)
	if err != nil {
		t.Fatal(err)
	}
	key, secret := c.Reveal()
	if !Verify(key, secret, c.Digest) {
		t.Fatal("revealed commitment does not verify")
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	c, err := Commit(SeededEntropy([]byte("tamper")), 6)
	if err != nil {
		t.Fatal(err)
	}
	key, secret := c.Reveal()

	if Verify(key, (secret+1)%6, c.Digest) {
		t.Error("altered secret must not verify")
	}
	other := []byte(key)
	if other[0] == 'a' {
		other[0] = 'b'
	} else {
		other[0] = 'a'
	}
	if Verify(string(other), secret, c.Digest) {
		t.Error("altered key must not verify")
	}
	if Verify(key, secret, "not-hex") {
		t.Error("malformed digest must not verify")
	}
}

func TestSeededEntropyIsDeterministic(t *testing.T) {
	a, _ := Commit(SeededEntropy([]byte("seed")), 6)
	b, _ := Commit(SeededEntropy([]byte("seed")), 6)
	if a.Digest != b.Digest {
		t.Errorf("expected equal digests, got %s and %s", a.Digest, b.Digest)
	}
}

func TestIntnUniformSupport(t *testing.T) {
	rand := SeededEntropy([]byte("intn"))
	counts := make([]int, 6)
	for i := 0; i < 6000; i++ {
		counts[Intn(rand, 6)]++
	}
	for v, n := range counts {
		if n == 0 {
			t.Errorf("value %d never drawn", v)
		}
	}
}

func TestIntnSingleValue(t *testing.T) {
	if v := Intn(NewEntropy(), 1); v != 0 {
		t.Fatalf("expected 0, got %d", v)
	}
}

func TestCommitReachesZero(t *testing.T) {
	rand := SeededEntropy([]byte("zero"))
	for i := 0; i < 200; i++ {
		c, err := Commit(rand, 2)
		if err != nil {
			t.Fatal(err)
		}
		if _, secret := c.Reveal(); secret == 0 {
			return
		}
	}
	t.Fatal("secret 0 never drawn")
}
