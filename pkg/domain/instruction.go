package domain

import "strings"

// Instruction selects which outgoing edge to follow at one step.
type Instruction byte

const (
	Left  Instruction = 'L'
	Right Instruction = 'R'
)

// String returns the single-letter form used in map documents.
func (i Instruction) String() string {
	return string(rune(i))
}

// Valid reports whether i is Left or Right.
func (i Instruction) Valid() bool {
	return i == Left || i == Right
}

// ParseInstructions converts a line such as "LLR" into an instruction sequence.
// Any character other than 'L' or 'R' yields an *InvalidInstructionError.
func ParseInstructions(line string) ([]Instruction, error) {
	line = strings.TrimSpace(line)
	out := make([]Instruction, 0, len(line))
	for pos, r := range line {
		in := Instruction(r)
		if r > 0x7f || !in.Valid() {
			return nil, &InvalidInstructionError{Char: r, Position: pos}
		}
		out = append(out, in)
	}
	return out, nil
}

// FormatInstructions is the inverse of ParseInstructions.
func FormatInstructions(seq []Instruction) string {
	var sb strings.Builder
	sb.Grow(len(seq))
	for _, in := range seq {
		sb.WriteByte(byte(in))
	}
	return sb.String()
}
