package runtime_test

import (
	"testing"

	"github.com/aretw0/wasteland/internal/runtime"
	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencer_RotationProperty(t *testing.T) {
	seq, err := domain.ParseInstructions("LLRLRRR")
	require.NoError(t, err)

	for c := 0; c < len(seq); c++ {
		s, err := runtime.NewSequencerAt(seq, c)
		require.NoError(t, err)

		got := make([]domain.Instruction, 0, len(seq))
		for range seq {
			got = append(got, s.Next())
		}

		want := append(append([]domain.Instruction{}, seq[c:]...), seq[:c]...)
		assert.Equal(t, want, got, "rotation by %d", c)
		assert.Equal(t, c, s.Cursor(), "cursor must return to %d", c)
	}
}

func TestSequencer_SingleInstructionWraps(t *testing.T) {
	s, err := runtime.NewSequencer([]domain.Instruction{domain.Right})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.Equal(t, domain.Right, s.Next())
		assert.Equal(t, 0, s.Cursor())
	}
}

func TestSequencer_Empty(t *testing.T) {
	_, err := runtime.NewSequencer(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyInstructionSequence)
}

func TestSequencer_ForkIsIndependent(t *testing.T) {
	s, err := runtime.NewSequencer([]domain.Instruction{domain.Left, domain.Right, domain.Right})
	require.NoError(t, err)

	s.Next()
	s.Next()
	fork := s.Fork()
	assert.Equal(t, 0, fork.Cursor())

	fork.Next()
	assert.Equal(t, 2, s.Cursor(), "advancing a fork must not move the original")
	assert.Equal(t, 1, fork.Cursor())

	copied := s
	copied.Next()
	assert.Equal(t, 2, s.Cursor(), "value copies own their cursor")
	assert.Equal(t, 3, copied.Len())
}

func TestSequencer_CursorNormalised(t *testing.T) {
	seq := []domain.Instruction{domain.Left, domain.Right}
	s, err := runtime.NewSequencerAt(seq, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Cursor())

	s, err = runtime.NewSequencerAt(seq, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Cursor())
}
