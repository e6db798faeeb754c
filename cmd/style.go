package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/fair"
	"github.com/luca-patrignani/fair-dice/domain/game"
	"github.com/luca-patrignani/fair-dice/ledger"
)

// terminalView renders the match with pterm into out.
type terminalView struct {
	out io.Writer
}

func newTerminalView(out io.Writer) *terminalView {
	return &terminalView{out: out}
}

func (v *terminalView) print(s string) {
	fmt.Fprint(v.out, s)
}

func (v *terminalView) options(r int) {
	s := ""
	for i := 0; i < r; i++ {
		s += fmt.Sprintf("%d - %d\n", i, i)
	}
	v.print(s + "X - exit\n? - help\n")
}

func (v *terminalView) Committed(purpose game.Purpose, digest string, r int) {
	switch purpose {
	case game.PurposeFirstMove:
		v.print(pterm.Info.Sprintfln("Let's determine who makes the first move."))
		v.print(pterm.Sprintfln("I selected a random value in the range 0..%d (HMAC=%s).", r-1, pterm.LightCyan(digest)))
		v.print(pterm.Sprintln("Try to guess my selection."))
	case game.PurposeOpponentRoll:
		v.print(pterm.Info.Sprintfln("It's time for my roll."))
		v.print(pterm.Sprintfln("I selected a random value in the range 0..%d (HMAC=%s).", r-1, pterm.LightCyan(digest)))
		v.print(pterm.Sprintfln("Add your number modulo %d.", r))
	case game.PurposeUserRoll:
		v.print(pterm.Info.Sprintfln("It's time for your roll."))
		v.print(pterm.Sprintfln("I selected a random value in the range 0..%d (HMAC=%s).", r-1, pterm.LightCyan(digest)))
		v.print(pterm.Sprintfln("Add your number modulo %d.", r))
	}
	v.options(r)
}

func (v *terminalView) Revealed(purpose game.Purpose, d fair.Disclosure) {
	if purpose == game.PurposeFirstMove {
		v.print(pterm.Sprintfln("My selection: %d (KEY=%s)", d.Secret, d.Key))
		v.print(pterm.Sprintfln("Your selection: %d", d.Counterpart))
	} else {
		v.print(pterm.Sprintfln("My number is %d (KEY=%s).", d.Secret, d.Key))
		v.print(pterm.Sprintfln("The fair number generation result is %d + %d = %d (mod %d).",
			d.Secret, d.Counterpart, d.Combined, d.Range))
	}
	if d.Verified {
		v.print(pterm.Success.Sprintfln("HMAC verified: the secret number and key are valid."))
	} else {
		v.print(pterm.Warning.Sprintfln("HMAC verification failed: data may have been tampered with."))
	}
}

func (v *terminalView) FirstMove(userFirst bool, guess, secret int) {
	if userFirst {
		v.print(pterm.Success.Sprintfln("You're right! You choose your dice first."))
		return
	}
	v.print(pterm.Info.Sprintfln("You're wrong. I make the first move."))
}

func (v *terminalView) OfferDice(ds []dice.Die, taken int) {
	if taken >= 0 {
		v.print(pterm.Sprintfln("I make the first move and choose the %s dice.", describeDie(ds, taken)))
	} else {
		v.print(pterm.Sprintln("You won the right to choose a dice!"))
	}
	s := "Available dice:\n"
	for i := range ds {
		if i != taken {
			s += describeDie(ds, i) + "\n"
		}
	}
	v.print(s + "X - exit\n? - help\n")
}

func (v *terminalView) DiceSelected(ds []dice.Die, user, opponent int) {
	v.print(pterm.Sprintfln("You chose dice: %s", describeDie(ds, user)))
	v.print(pterm.Sprintfln("I chose dice: %s", describeDie(ds, opponent)))
}

func (v *terminalView) Rolled(party game.Party, r game.RoundResult) {
	if party == game.Opponent {
		v.print(pterm.Sprintfln("My roll result is %d.", r.Face))
		return
	}
	v.print(pterm.Sprintfln("Your roll result is %d.", r.Face))
}

func (v *terminalView) Declared(m game.Match) {
	user, opponent := m.UserRoll.Face, m.OpponentRoll.Face
	var verdict string
	switch m.Outcome {
	case game.UserWins:
		verdict = pterm.LightGreen(fmt.Sprintf("You win! (%d > %d)", user, opponent))
	case game.OpponentWins:
		verdict = pterm.LightRed(fmt.Sprintf("I win! (%d < %d)", user, opponent))
	default:
		verdict = pterm.LightYellow(fmt.Sprintf("It's a tie! (%d = %d)", user, opponent))
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	v.print(pbox.WithTitle(pterm.LightYellow("|RESULT|")).WithTitleTopCenter().Sprintln(verdict))
}

func (v *terminalView) Help(h game.Help) {
	var text string
	switch h.Phase {
	case game.DeterminingFirstMove:
		text = "How to play:\n" +
			"- Guess my number (0 or 1). Guess right and you choose your dice first.\n" +
			"- Pick a number to complete each fair roll.\n" +
			"- Every secret is committed with an HMAC before you answer."
	case game.SelectingDice:
		text = "Enter the number of the dice you want to use"
		if h.Taken >= 0 {
			text += " (excluding the one I chose)"
		}
		text += "."
	default:
		text = fmt.Sprintf("Select a number from 0 to %d. It is added to my secret number\n"+
			"modulo %d, the number of faces of the dice, to pick the face.", h.Range-1, h.Range)
	}
	text += "\n- 'X' to exit the game.\n- '?' to show this help again."
	v.print(pterm.DefaultBox.WithTitle("Help").WithTitleTopLeft().Sprintln(text))

	v.print(pterm.Sprintln("Probability of the win for the user:"))
	h.Matrix.Render(v.out)
	if h.Suggested >= 0 {
		p, _ := h.Matrix.Cell(h.Suggested, h.Taken)
		v.print(pterm.Info.Sprintfln("Against %s your best odds are with %s (%s).",
			describeDie(h.Dice, h.Taken), describeDie(h.Dice, h.Suggested), p))
	}
}

func (v *terminalView) Rejected(phase game.Phase, input string) {
	v.print(pterm.Error.Sprintfln("Invalid input %q. Try again.", input))
}

func (v *terminalView) Cancelled() {
	v.print(pterm.Info.Sprintfln("Exiting game."))
}

func describeDie(ds []dice.Die, i int) string {
	return strconv.Itoa(i) + " - " + ds[i].String()
}

func printBanner(out io.Writer) {
	banner, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Fair ", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Dice", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		return
	}
	fmt.Fprint(out, banner)
}

// printAudit lists every disclosed commitment of the match.
func printAudit(out io.Writer, l *ledger.Ledger) error {
	if err := l.Verify(); err != nil {
		return fmt.Errorf("audit trail: %w", err)
	}
	data := pterm.TableData{{"#", "Purpose", "HMAC", "Key", "Secret", "Yours", "Result", "Verified"}}
	for i, r := range l.Records() {
		d := r.Disclosure
		data = append(data, []string{
			strconv.Itoa(i + 1),
			r.Purpose,
			d.Digest,
			d.Key,
			strconv.Itoa(d.Secret),
			strconv.Itoa(d.Counterpart),
			fmt.Sprintf("%d (mod %d)", d.Combined, d.Range),
			strconv.FormatBool(d.Verified),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprint(out, pterm.Sprintln("Audit trail:"))
	fmt.Fprintln(out, table)
	return nil
}
