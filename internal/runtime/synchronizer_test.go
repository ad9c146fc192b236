package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/wasteland/internal/runtime"
	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronize_CombinesByLCM(t *testing.T) {
	counts := map[string]uint64{"11A": 2, "22A": 3}
	seq, err := runtime.NewSequencer([]domain.Instruction{domain.Left, domain.Right})
	require.NoError(t, err)

	walk := func(ctx context.Context, start string, s *runtime.Sequencer) (domain.WalkResult, error) {
		assert.Equal(t, 0, s.Cursor(), "every walk starts at cursor 0")
		return domain.WalkResult{Start: start, Steps: counts[start]}, nil
	}

	res, err := runtime.Synchronize(context.Background(), []string{"11A", "22A"}, seq, walk, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), res.Steps)
	assert.Len(t, res.Walks, 2)
}

func TestSynchronize_RealMap(t *testing.T) {
	m := mustParse(t, scenarioGhosts)
	table, err := runtime.NewTable(m.Transitions)
	require.NoError(t, err)
	seq, err := runtime.NewSequencer(m.Instructions)
	require.NoError(t, err)

	w := runtime.NewWalker(table, 0)
	goal := runtime.SuffixGoal("Z")
	walk := func(ctx context.Context, start string, s *runtime.Sequencer) (domain.WalkResult, error) {
		return w.Run(ctx, start, goal, s, nil)
	}

	for _, parallelism := range []int{0, 1, 4} {
		res, err := runtime.Synchronize(context.Background(), table.Match(runtime.SuffixGoal("A")), seq, walk, parallelism)
		require.NoError(t, err)
		assert.Equal(t, uint64(6), res.Steps, "parallelism %d", parallelism)
		assert.Equal(t, []domain.WalkResult{
			{Start: "11A", End: "11Z", Steps: 2},
			{Start: "22A", End: "22Z", Steps: 3},
		}, res.Walks)
	}
	assert.Equal(t, 0, seq.Cursor(), "the shared sequencer is never advanced")
}

func TestSynchronize_NoStarts(t *testing.T) {
	seq, err := runtime.NewSequencer([]domain.Instruction{domain.Left})
	require.NoError(t, err)

	called := false
	_, err = runtime.Synchronize(context.Background(), nil, seq, func(context.Context, string, *runtime.Sequencer) (domain.WalkResult, error) {
		called = true
		return domain.WalkResult{}, nil
	}, 1)
	assert.ErrorIs(t, err, domain.ErrNoStartNodes)
	assert.False(t, called, "no walk may begin without start nodes")
}

func TestSynchronize_PropagatesFailure(t *testing.T) {
	seq, err := runtime.NewSequencer([]domain.Instruction{domain.Left})
	require.NoError(t, err)

	boom := &domain.MissingNodeError{NodeID: "QQQ"}
	res, err := runtime.Synchronize(context.Background(), []string{"AAA", "BBA"}, seq, func(_ context.Context, start string, _ *runtime.Sequencer) (domain.WalkResult, error) {
		if start == "BBA" {
			return domain.WalkResult{}, boom
		}
		return domain.WalkResult{Start: start, Steps: 4}, nil
	}, 2)

	assert.Nil(t, res, "no partial result")
	var missing *domain.MissingNodeError
	require.True(t, errors.As(err, &missing))
	assert.Contains(t, err.Error(), "BBA")
}
