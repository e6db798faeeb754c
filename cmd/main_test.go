package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/fair"
)

var standardDice = []string{"2,2,4,4,9,9", "1,1,6,6,8,8", "3,3,5,5,7,7"}

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func runCommand(t *testing.T, stdin string, seed string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	env := environment{
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
	}
	if seed != "" {
		env.entropy = fair.SeededEntropy([]byte(seed))
	}
	err := newCommand(env).Run(context.Background(), append([]string{"fair-dice", "--no-banner"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestPlayRejectsNonIntegerDie(t *testing.T) {
	_, _, err := runCommand(t, "", "", "1,2", "a,b,c", "3,4,5")
	var faceErr *dice.FaceError
	require.ErrorAs(t, err, &faceErr)
	assert.Equal(t, 2, faceErr.Position)
	assert.Contains(t, err.Error(), "dice #2")
}

func TestPlayRejectsTwoDice(t *testing.T) {
	stdout, _, err := runCommand(t, "x\n", "", "1,2,3", "4,5,6")
	assert.ErrorIs(t, err, dice.ErrNotEnoughDice)
	assert.NotContains(t, stdout, "first move", "no game state before validation")
}

func TestPlayCancelAtFirstPrompt(t *testing.T) {
	stdout, _, err := runCommand(t, "x\n", "cancel", standardDice...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "HMAC=")
	assert.Contains(t, stdout, "Exiting game.")
	assert.NotContains(t, stdout, "You chose dice")
	assert.NotContains(t, stdout, "Audit trail")
}

func TestPlayOversizedLineIsRejected(t *testing.T) {
	stdout, _, err := runCommand(t, strings.Repeat("9", 70000)+"\nx\n", "long", standardDice...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Invalid input")
	assert.Contains(t, stdout, "Exiting game.")
}

func TestPlayHelpShowsMatrix(t *testing.T) {
	stdout, _, err := runCommand(t, "?\nx\n", "help", standardDice...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "How to play")
	assert.Contains(t, stdout, "User dice v")
	assert.Contains(t, stdout, "0.5556")
}

func TestPlayFullMatch(t *testing.T) {
	const seed = "full-match"
	c, err := fair.Commit(fair.SeededEntropy([]byte(seed)), 2)
	require.NoError(t, err)
	_, secret := c.Reveal()

	stdout, _, err := runCommand(t, fmt.Sprintf("%d\n1\n0\n0\n", secret), seed, standardDice...)
	require.NoError(t, err)

	assert.Contains(t, stdout, "You're right!")
	assert.Contains(t, stdout, "You chose dice: 1 - 1,1,6,6,8,8")
	assert.Equal(t, 3, strings.Count(stdout, "HMAC verified"))
	assert.Contains(t, stdout, "(mod 6)")
	assert.Contains(t, stdout, "Audit trail")
	assert.True(t,
		strings.Contains(stdout, "You win!") ||
			strings.Contains(stdout, "I win!") ||
			strings.Contains(stdout, "It's a tie!"),
		"no verdict in output:\n%s", stdout)
}

func TestPlayInvalidLogLevel(t *testing.T) {
	_, _, err := runCommand(t, "x\n", "", append([]string{"--log-level", "loud"}, standardDice...)...)
	assert.ErrorContains(t, err, "invalid log level")
}

func TestPtermLevel(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  pterm.LogLevel
	}{
		{slog.LevelDebug, pterm.LogLevelDebug},
		{slog.LevelInfo, pterm.LogLevelInfo},
		{slog.LevelWarn, pterm.LogLevelWarn},
		{slog.LevelError, pterm.LogLevelError},
		{slog.LevelError + 4, pterm.LogLevelError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ptermLevel(tt.level), tt.level.String())
	}
}
