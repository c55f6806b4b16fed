package verification

import (
	"crypto/rand"
	"math/big"

	"booking-core/internal/pkg/errs"
)

// Alphabet leaves out characters that are easy to confuse when read aloud
// or handwritten (0/O, 1/I).
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	DefaultCodeLength = 6
	minCodeLength     = 4
	maxCodeLength     = 12
)

type Generator interface {
	Generate() (string, error)
}

type RandomGenerator struct {
	length int
}

func NewRandomGenerator(length int) (*RandomGenerator, error) {
	if length < minCodeLength || length > maxCodeLength {
		return nil, ErrInvalidCodeLength
	}
	return &RandomGenerator{length: length}, nil
}

func (g *RandomGenerator) Generate() (string, error) {
	limit := big.NewInt(int64(len(Alphabet)))
	buf := make([]byte, g.length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errs.Wrap(err, "failed to generate verification code")
		}
		buf[i] = Alphabet[n.Int64()]
	}
	return string(buf), nil
}
