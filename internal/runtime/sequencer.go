package runtime

import "github.com/aretw0/wasteland/pkg/domain"

// Sequencer yields an instruction sequence forever, wrapping back to the
// first instruction after the last one. It is a value type: copying it
// (or calling Fork) gives an independent cursor over the same sequence.
type Sequencer struct {
	seq    []domain.Instruction
	cursor int
}

// NewSequencer creates a sequencer positioned at the first instruction.
func NewSequencer(seq []domain.Instruction) (Sequencer, error) {
	return NewSequencerAt(seq, 0)
}

// NewSequencerAt creates a sequencer positioned at cursor (taken modulo the length).
func NewSequencerAt(seq []domain.Instruction, cursor int) (Sequencer, error) {
	if len(seq) == 0 {
		return Sequencer{}, domain.ErrEmptyInstructionSequence
	}
	cursor %= len(seq)
	if cursor < 0 {
		cursor += len(seq)
	}
	return Sequencer{seq: seq, cursor: cursor}, nil
}

// Next returns the instruction at the cursor and advances it.
func (s *Sequencer) Next() domain.Instruction {
	in := s.seq[s.cursor]
	s.cursor++
	if s.cursor == len(s.seq) {
		s.cursor = 0
	}
	return in
}

// Fork returns a sequencer over the same instructions with its cursor at 0.
func (s Sequencer) Fork() Sequencer {
	return Sequencer{seq: s.seq}
}

// Cursor returns the index of the instruction Next will return.
func (s Sequencer) Cursor() int {
	return s.cursor
}

// Len returns the period of the sequence.
func (s Sequencer) Len() int {
	return len(s.seq)
}
