package compiler_test

import (
	"testing"

	"github.com/aretw0/wasteland/internal/compiler"
	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseYAML(t *testing.T) {
	doc := []byte(`
name: loop
instructions: LLR
transitions:
  - {from: AAA, left: BBB, right: BBB}
  - {from: BBB, left: AAA, right: ZZZ}
  - {from: ZZZ, left: ZZZ, right: ZZZ}
`)
	m, err := compiler.NewParser().ParseYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, "loop", m.Name)
	assert.Equal(t, "LLR", domain.FormatInstructions(m.Instructions))
	assert.Len(t, m.Transitions, 3)

	text, err := compiler.NewParser().ParseString(m.Canonical())
	require.NoError(t, err)
	assert.Equal(t, m.Transitions, text.Transitions, "yaml and text forms describe the same map")
}

func TestParser_ParseYAMLErrors(t *testing.T) {
	p := compiler.NewParser()

	_, err := p.ParseYAML([]byte("instructions: ''\ntransitions: []\n"))
	assert.ErrorIs(t, err, domain.ErrEmptyInstructionSequence)

	_, err = p.ParseYAML([]byte("instructions: LX\n"))
	var invalid *domain.InvalidInstructionError
	assert.ErrorAs(t, err, &invalid)

	_, err = p.ParseYAML([]byte("instructions: L\ntransitions:\n  - {from: AAA, left: BBB}\n"))
	assert.ErrorContains(t, err, "transitions[0]")
}

func TestMarshalYAML(t *testing.T) {
	m := &domain.Map{
		Instructions: []domain.Instruction{domain.Right},
		Transitions:  []domain.Transition{{From: "AAA", Left: "AAA", Right: "AAA"}},
	}
	raw, err := compiler.MarshalYAML(m)
	require.NoError(t, err)

	back, err := compiler.NewParser().ParseYAML(raw)
	require.NoError(t, err)
	assert.Equal(t, m.Transitions, back.Transitions)
	assert.Equal(t, m.Instructions, back.Instructions)
}
