package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunReportStoreContract runs a suite of tests to verify that a ReportStore implementation
// adheres to the defined interface contract.
func RunReportStoreContract(t *testing.T, store ReportStore) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	report := &domain.Report{
		Map:    "contract.txt",
		Digest: "abc123",
		Query:  domain.DefaultQuery(),
		Walk:   &domain.WalkResult{Start: "AAA", End: "ZZZ", Steps: 6},
		Sync: &domain.SyncResult{
			Walks: []domain.WalkResult{{Start: "11A", End: "11Z", Steps: 2}, {Start: "22A", End: "22Z", Steps: 3}},
			Steps: 6,
		},
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, key, report)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, report, loaded)
	})

	t.Run("Load Returns Copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		loaded.Walk.Steps = 999

		again, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, uint64(6), again.Walk.Steps, "mutating a loaded report must not affect the store")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrReportNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrReportNotFound, "Load after Delete should return ErrReportNotFound")
	})
}
