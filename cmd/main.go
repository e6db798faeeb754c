package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/game"
)

const example = "fair-dice 2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3"

func newCommand(env environment) *cli.Command {
	return &cli.Command{
		Name:        "fair-dice",
		Usage:       "play non-transitive dice against a provably fair opponent",
		ArgsUsage:   "DIE DIE DIE [DIE...]",
		Description: "Each DIE is a comma separated list of integer faces, for example:\n\n   " + example,
		Writer:      env.stdout,
		ErrWriter:   env.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("FAIR_DICE_LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Sources: cli.EnvVars("FAIR_DICE_NO_COLOR"),
			},
			&cli.BoolFlag{
				Name: "no-banner",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return play(ctx, cmd, env)
		},
	}
}

func play(ctx context.Context, cmd *cli.Command, env environment) error {
	ds, err := dice.ParseAll(cmd.Args().Slice())
	if err != nil {
		return fmt.Errorf("%w\nExample: %s", err, example)
	}
	if cmd.Bool("no-color") {
		pterm.DisableColor()
	}
	if !cmd.Bool("no-banner") {
		printBanner(env.stdout)
	}

	i := newInjector(env, ds, cmd.String("log-level"))
	session, err := do.Invoke[*game.Session](i)
	if err != nil {
		return err
	}

	m, err := game.NewSequencer(session).Run(ctx)
	if err != nil {
		return fmt.Errorf("match %s: %w", m.ID, err)
	}
	if m.Phase != game.Terminal {
		return nil
	}
	return printAudit(env.stdout, session.Ledger)
}

func main() {
	cmd := newCommand(environment{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	})
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprint(os.Stderr, pterm.Error.Sprintln(err.Error()))
		os.Exit(1)
	}
}
