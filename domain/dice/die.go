package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinDice is the smallest set of dice a match can be played with.
const MinDice = 3

var (
	ErrNotEnoughDice = fmt.Errorf("at least %d dice are required", MinDice)
	ErrNoFaces       = errors.New("die has no faces")
)

// FaceError reports a die specification that contains a non-integer face.
type FaceError struct {
	Position int // 1-indexed
	Face     string
}

func (e *FaceError) Error() string {
	return fmt.Sprintf("dice #%d contains non-integer value %q", e.Position, e.Face)
}

// Die is an ordered, immutable sequence of faces.
type Die struct {
	faces []int
}

func NewDie(faces ...int) (Die, error) {
	if len(faces) == 0 {
		return Die{}, ErrNoFaces
	}
	return Die{faces: append([]int(nil), faces...)}, nil
}

// MustDie is like NewDie but panics on error.
func MustDie(faces ...int) Die {
	d, err := NewDie(faces...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Die) Len() int {
	return len(d.faces)
}

func (d Die) Face(i int) int {
	return d.faces[i]
}

// Faces returns a copy of the faces.
func (d Die) Faces() []int {
	return append([]int(nil), d.faces...)
}

func (d Die) String() string {
	parts := make([]string, len(d.faces))
	for i, f := range d.faces {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, ",")
}

// Parse reads a comma separated list of integer faces.
func Parse(spec string) (Die, error) {
	if strings.TrimSpace(spec) == "" {
		return Die{}, ErrNoFaces
	}
	fields := strings.Split(spec, ",")
	faces := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Die{}, &FaceError{Face: f}
		}
		faces[i] = v
	}
	return NewDie(faces...)
}

// ParseAll validates the dice given on the command line. Errors name the
// offending die by its 1-indexed position.
func ParseAll(specs []string) ([]Die, error) {
	if len(specs) < MinDice {
		return nil, fmt.Errorf("%w, got %d", ErrNotEnoughDice, len(specs))
	}
	dice := make([]Die, len(specs))
	for i, spec := range specs {
		d, err := Parse(spec)
		var faceErr *FaceError
		switch {
		case errors.As(err, &faceErr):
			faceErr.Position = i + 1
			return nil, faceErr
		case err != nil:
			return nil, fmt.Errorf("dice #%d: %w", i+1, err)
		}
		dice[i] = d
	}
	return dice, nil
}
