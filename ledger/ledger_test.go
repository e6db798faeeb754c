package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/fair-dice/domain/fair"
)

func settled(t *testing.T, r, counterpart int) fair.Disclosure {
	t.Helper()
	e, err := fair.Open(fair.SeededEntropy([]byte("ledger")), r)
	require.NoError(t, err)
	d, err := e.Settle(counterpart)
	require.NoError(t, err)
	return d
}

func TestNewLedgerHasGenesis(t *testing.T) {
	l := New()
	blocks := l.Blocks()
	require.Len(t, blocks, 1)
	assert.Equal(t, 0, blocks[0].Index)
	assert.Equal(t, genesisPrevHash, blocks[0].PrevHash)
	assert.Empty(t, l.Records())
	assert.NoError(t, l.Verify())
}

func TestAppendLinksBlocks(t *testing.T) {
	l := New()
	first, err := l.Append(Record{MatchID: "m", Purpose: "first move", Disclosure: settled(t, 2, 1)})
	require.NoError(t, err)
	second, err := l.Append(Record{MatchID: "m", Purpose: "opponent roll", Disclosure: settled(t, 6, 3)})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Index)
	assert.Equal(t, 2, second.Index)
	assert.Equal(t, first.Hash, second.PrevHash)
	assert.Len(t, l.Records(), 2)
	assert.Equal(t, "opponent roll", l.Records()[1].Purpose)
	assert.NoError(t, l.Verify())
}

func TestVerifyDetectsTampering(t *testing.T) {
	l := New()
	_, err := l.Append(Record{Purpose: "user roll", Disclosure: settled(t, 6, 0)})
	require.NoError(t, err)
	_, err = l.Append(Record{Purpose: "opponent roll", Disclosure: settled(t, 6, 5)})
	require.NoError(t, err)

	l.blocks[1].Record.Disclosure.Secret++
	assert.ErrorContains(t, l.Verify(), "block 1 invalid")
}

func TestBlocksReturnsCopy(t *testing.T) {
	l := New()
	blocks := l.Blocks()
	blocks[0].Hash = "forged"
	assert.NoError(t, l.Verify())
}
