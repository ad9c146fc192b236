package compiler_test

import (
	"errors"
	"testing"

	"github.com/aretw0/wasteland/internal/compiler"
	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	input := "RL\n\nAAA = (BBB, CCC)\nBBB = (DDD, EEE)\r\n\n11A = (11B, XXX)\n"

	m, err := compiler.NewParser().ParseString(input)
	require.NoError(t, err)

	assert.Equal(t, []domain.Instruction{domain.Right, domain.Left}, m.Instructions)
	assert.Equal(t, []domain.Transition{
		{From: "AAA", Left: "BBB", Right: "CCC"},
		{From: "BBB", Left: "DDD", Right: "EEE"},
		{From: "11A", Left: "11B", Right: "XXX"},
	}, m.Transitions)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantIs   error
	}{
		{name: "Empty Document", input: "", wantLine: 1, wantIs: domain.ErrEmptyInstructionSequence},
		{name: "Empty Instruction Line", input: "\n\nAAA = (AAA, AAA)\n", wantLine: 1, wantIs: domain.ErrEmptyInstructionSequence},
		{name: "Invalid Instruction", input: "LRQ\n\nAAA = (AAA, AAA)\n", wantLine: 1},
		{name: "Missing Separator", input: "LR\nAAA = (AAA, AAA)\n", wantLine: 2},
		{name: "Malformed Record", input: "LR\n\nAAA = (AAA AAA)\n", wantLine: 3},
		{name: "Lowercase Record", input: "LR\n\nAAA = (AAA, AAA)\nbbb = (AAA, AAA)\n", wantLine: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compiler.NewParser().ParseString(tt.input)
			require.Error(t, err)

			var perr *domain.ParseError
			require.True(t, errors.As(err, &perr), "expected ParseError, got %T", err)
			assert.Equal(t, tt.wantLine, perr.Line)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestParser_InvalidInstructionIsTyped(t *testing.T) {
	_, err := compiler.NewParser().ParseString("LRX\n\n")

	var invalid *domain.InvalidInstructionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 'X', invalid.Char)
	assert.Equal(t, 2, invalid.Position)
}

func TestParseTransition(t *testing.T) {
	tr, err := compiler.ParseTransition("  BRR = (LVC,FSJ) ")
	require.NoError(t, err)
	assert.Equal(t, domain.Transition{From: "BRR", Left: "LVC", Right: "FSJ"}, tr)

	_, err = compiler.ParseTransition("BRR -> LVC")
	assert.Error(t, err)
}
