package domain

import (
	"errors"
	"testing"
)

func TestParseInstructions(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantPos int
		wantErr bool
	}{
		{name: "Simple", line: "RL", want: "RL"},
		{name: "Trailing Whitespace", line: "LLR\r\n", want: "LLR"},
		{name: "Single", line: "L", want: "L"},
		{name: "Lowercase Rejected", line: "LlR", wantErr: true, wantPos: 1},
		{name: "Unknown Char", line: "LRX", wantErr: true, wantPos: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstructions(tt.line)
			if tt.wantErr {
				var invalid *InvalidInstructionError
				if !errors.As(err, &invalid) {
					t.Fatalf("ParseInstructions() error = %v, want InvalidInstructionError", err)
				}
				if invalid.Position != tt.wantPos {
					t.Errorf("Position = %d, want %d", invalid.Position, tt.wantPos)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInstructions() unexpected error: %v", err)
			}
			if s := FormatInstructions(got); s != tt.want {
				t.Errorf("FormatInstructions(ParseInstructions()) = %q, want %q", s, tt.want)
			}
		})
	}
}

func TestTransition_Target(t *testing.T) {
	tr := Transition{From: "AAA", Left: "BBB", Right: "CCC"}
	if got := tr.Target(Left); got != "BBB" {
		t.Errorf("Target(Left) = %s, want BBB", got)
	}
	if got := tr.Target(Right); got != "CCC" {
		t.Errorf("Target(Right) = %s, want CCC", got)
	}
}

func TestNonTerminatingWalkError_Is(t *testing.T) {
	var err error = &NonTerminatingWalkError{Start: "AAA", Last: "BBB", Limit: 10}
	if !errors.Is(err, ErrNoGoalReachable) {
		t.Error("expected NonTerminatingWalkError to match ErrNoGoalReachable")
	}
}
