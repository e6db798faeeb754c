package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/luca-patrignani/fair-dice/domain/game"
)

// maxLineBytes caps what is kept of one input line. Anything longer is
// cut off and still consumed, so the next prompt starts on the next line.
const maxLineBytes = 256

// lineReader reads one line per prompt from a non-interactive source.
type lineReader struct {
	in  *bufio.Reader
	out io.Writer
}

func (r *lineReader) ReadLine(_ context.Context, prompt string) (string, error) {
	fmt.Fprintf(r.out, "%s: ", prompt)
	var line []byte
	for {
		chunk, more, err := r.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				break
			}
			return "", err
		}
		if room := maxLineBytes - len(line); room > 0 {
			line = append(line, chunk[:min(room, len(chunk))]...)
		}
		if !more {
			break
		}
	}
	fmt.Fprintln(r.out)
	return string(line), nil
}

// ptermReader prompts with pterm's interactive text input.
type ptermReader struct{}

func (ptermReader) ReadLine(_ context.Context, prompt string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
}

// newLineReader uses the interactive input only when stdin is a terminal,
// so piped input and tests get a plain line reader.
func newLineReader(in io.Reader, out io.Writer) game.LineReader {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ptermReader{}
	}
	return &lineReader{in: bufio.NewReader(in), out: out}
}
