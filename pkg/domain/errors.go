package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyInstructionSequence is returned when a map has no instructions.
var ErrEmptyInstructionSequence = errors.New("instruction sequence is empty")

// ErrNoStartNodes is returned when the start pattern matches no node.
var ErrNoStartNodes = errors.New("no start nodes found")

// ErrNoGoalReachable is matched (via errors.Is) by every NonTerminatingWalkError.
var ErrNoGoalReachable = errors.New("no goal reachable")

// ErrReportNotFound is returned when a report key cannot be found in the store.
var ErrReportNotFound = errors.New("report not found")

// MissingNodeError is returned when a lookup references a node with no record.
type MissingNodeError struct {
	NodeID string
}

func (e *MissingNodeError) Error() string {
	return fmt.Sprintf("node %q not found in transition table", e.NodeID)
}

// DuplicateNodeError is returned when two records share the same From.
type DuplicateNodeError struct {
	NodeID string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("node %q is defined more than once", e.NodeID)
}

// NonTerminatingWalkError is returned when a walk exceeds its step ceiling
// without reaching a goal node.
type NonTerminatingWalkError struct {
	Start string
	Last  string
	Limit uint64
}

func (e *NonTerminatingWalkError) Error() string {
	return fmt.Sprintf("walk from %q reached no goal within %d steps (stopped at %q)", e.Start, e.Limit, e.Last)
}

func (e *NonTerminatingWalkError) Is(target error) bool {
	return target == ErrNoGoalReachable
}

// InvalidInstructionError is returned for characters other than 'L' or 'R'.
type InvalidInstructionError struct {
	Char     rune
	Position int
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction %q at position %d", e.Char, e.Position)
}

// ParseError describes a malformed line in a map document.
type ParseError struct {
	Line   int
	Text   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OverflowError is returned when a least common multiple does not fit in 64 bits.
type OverflowError struct {
	A, B uint64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("lcm(%d, %d) overflows uint64", e.A, e.B)
}
