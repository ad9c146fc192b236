package runtime

import (
	"errors"
	"math/bits"

	"github.com/aretw0/wasteland/pkg/domain"
)

var errEmptyValues = errors.New("lcm of an empty list")

// GCD is Euclid's algorithm: gcd(a, 0) = a, gcd(a, b) = gcd(b, a mod b).
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b.
// lcm(x, 0) is 0. A result wider than 64 bits yields *domain.OverflowError.
func LCM(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	hi, lo := bits.Mul64(a/GCD(a, b), b)
	if hi != 0 {
		return 0, &domain.OverflowError{A: a, B: b}
	}
	return lo, nil
}

// LCMAll folds LCM over values, left to right, starting from the first element.
func LCMAll(values []uint64) (uint64, error) {
	if len(values) == 0 {
		return 0, errEmptyValues
	}
	acc := values[0]
	for _, v := range values[1:] {
		next, err := LCM(acc, v)
		if err != nil {
			return 0, err
		}
		acc = next
	}
	return acc, nil
}
