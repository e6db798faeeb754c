package main

import (
	"crypto/cipher"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/samber/do/v2"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/fair"
	"github.com/luca-patrignani/fair-dice/domain/game"
	"github.com/luca-patrignani/fair-dice/ledger"
)

// environment is the outside world of one process run.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	// entropy is nil outside of tests.
	entropy cipher.Stream
}

func newInjector(env environment, ds []dice.Die, logLevel string) do.Injector {
	i := do.New()

	do.ProvideNamedValue(i, "dice", ds)
	do.ProvideNamedValue(i, "log-level", logLevel)
	do.ProvideNamedValue(i, "stderr", env.stderr)
	do.ProvideNamedValue[game.LineReader](i, "reader", newLineReader(env.stdin, env.stdout))
	do.ProvideNamedValue[game.View](i, "view", newTerminalView(env.stdout))

	entropy := env.entropy
	if entropy == nil {
		entropy = fair.NewEntropy()
	}
	do.ProvideNamedValue(i, "entropy", entropy)

	do.Provide(i, newLogger)
	do.Provide(i, func(do.Injector) (*ledger.Ledger, error) {
		return ledger.New(), nil
	})
	do.Provide(i, newSession)

	return i
}

func newLogger(i do.Injector) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(do.MustInvokeNamed[string](i, "log-level"))); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger := pterm.DefaultLogger.
		WithWriter(do.MustInvokeNamed[io.Writer](i, "stderr")).
		WithLevel(ptermLevel(level))
	return slog.New(pterm.NewSlogHandler(logger)), nil
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}

func newSession(i do.Injector) (*game.Session, error) {
	logger, err := do.Invoke[*slog.Logger](i)
	if err != nil {
		return nil, err
	}
	return &game.Session{
		MatchID: uuid.NewString(),
		Dice:    do.MustInvokeNamed[[]dice.Die](i, "dice"),
		Entropy: do.MustInvokeNamed[cipher.Stream](i, "entropy"),
		Input:   do.MustInvokeNamed[game.LineReader](i, "reader"),
		View:    do.MustInvokeNamed[game.View](i, "view"),
		Logger:  logger,
		Ledger:  do.MustInvoke[*ledger.Ledger](i),
	}, nil
}
