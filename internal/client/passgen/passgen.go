// Package passgen generates random passwords from crypto/rand.
package passgen

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	lower   = "abcdefghijkmnopqrstuvwxyz"
	upper   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digits  = "23456789"
	symbols = "!#$%&()*+,-./:;<=>?@[]^_{|}~"

	// DefaultLength is used when Generator.Length is zero.
	DefaultLength = 20
)

var ErrTooShort = errors.New("password length too short for the required character classes")

// Func is the zero-argument collaborator the CLI calls for a new password.
type Func func() (string, error)

// Generator builds passwords that contain at least one lower-case letter,
// one upper-case letter, one digit and, with Symbols set, one symbol.
// Look-alike characters (l, I, O, 0, 1) are left out.
type Generator struct {
	Length  int
	Symbols bool
}

func (g Generator) classes() []string {
	c := []string{lower, upper, digits}
	if g.Symbols {
		c = append(c, symbols)
	}
	return c
}

// Generate returns a fresh password.
func (g Generator) Generate() (string, error) {
	length := g.Length
	if length == 0 {
		length = DefaultLength
	}

	classes := g.classes()
	if length < len(classes) {
		return "", ErrTooShort
	}

	var all string
	for _, c := range classes {
		all += c
	}

	out := make([]byte, 0, length)
	for _, c := range classes {
		ch, err := pick(c)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}
	for len(out) < length {
		ch, err := pick(all)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}

	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

// Func adapts g to the collaborator signature.
func (g Generator) Func() Func {
	return g.Generate
}

func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

func pick(alphabet string) (byte, error) {
	i, err := randIndex(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// shuffle is a Fisher–Yates shuffle driven by crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
