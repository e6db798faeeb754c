package dice

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Probability is the chance that one die rolls strictly higher than another.
// Ties count in Pairs but never in Wins.
type Probability struct {
	Wins  int
	Pairs int
}

func (p Probability) Float64() float64 {
	if p.Pairs == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Pairs)
}

// String formats the probability with 4 decimals.
func (p Probability) String() string {
	return fmt.Sprintf("%.4f", p.Float64())
}

// WinProbability enumerates every pair of faces of a and b.
func WinProbability(a, b Die) Probability {
	p := Probability{Pairs: a.Len() * b.Len()}
	for _, fa := range a.faces {
		for _, fb := range b.faces {
			if fa > fb {
				p.Wins++
			}
		}
	}
	return p
}

// Matrix holds the win probability of every ordered pair of dice.
type Matrix struct {
	dice  []Die
	cells [][]Probability
}

func NewMatrix(dice []Die) Matrix {
	m := Matrix{
		dice:  dice,
		cells: make([][]Probability, len(dice)),
	}
	for i := range dice {
		m.cells[i] = make([]Probability, len(dice))
		for j := range dice {
			if i != j {
				m.cells[i][j] = WinProbability(dice[i], dice[j])
			}
		}
	}
	return m
}

func (m Matrix) Size() int {
	return len(m.dice)
}

// Cell returns the probability that die i beats die j. The diagonal is not
// applicable and reports ok == false.
func (m Matrix) Cell(i, j int) (p Probability, ok bool) {
	if i == j {
		return Probability{}, false
	}
	return m.cells[i][j], true
}

// BestAgainst returns the die with the highest chance to beat die j.
func (m Matrix) BestAgainst(j int) int {
	best := -1
	for i := range m.dice {
		if i == j {
			continue
		}
		if best == -1 || m.cells[i][j].Float64() > m.cells[best][j].Float64() {
			best = i
		}
	}
	return best
}

// Render writes the matrix as a table: rows are the user's die, columns the
// opponent's.
func (m Matrix) Render(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("User dice v").SetAlign(tabulate.ML)
	for _, d := range m.dice {
		tab.Header(d.String()).SetAlign(tabulate.MR)
	}
	for i, d := range m.dice {
		row := tab.Row()
		row.Column(d.String())
		for j := range m.dice {
			p, ok := m.Cell(i, j)
			if !ok {
				row.Column("-")
				continue
			}
			row.Column(p.String())
		}
	}
	tab.Print(w)
}
