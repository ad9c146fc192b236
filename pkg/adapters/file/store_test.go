package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/wasteland/pkg/adapters/file"
	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/aretw0/wasteland/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	ports.RunReportStoreContract(t, file.NewStore(t.TempDir()))
}

func TestFileStore_KeysAreHashed(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStore(dir)
	ctx := context.Background()

	key := "sha256:abc:AAA>ZZZ|A>Z"
	require.NoError(t, store.Save(ctx, key, &domain.Report{Digest: "abc"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Len(t, entries[0].Name(), 64+len(".json"))

	require.NoError(t, store.Save(ctx, key, &domain.Report{Digest: "def"}))
	loaded, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "def", loaded.Digest, "saving again overwrites")
}

func TestFileStore_Errors(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStore(dir)
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "", &domain.Report{}))
	assert.NoError(t, store.Delete(ctx, "never-saved"))

	require.NoError(t, store.Save(ctx, "k", &domain.Report{}))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{"), 0644))

	_, err = store.Load(ctx, "k")
	assert.ErrorContains(t, err, "unmarshal")
}

func TestNewStore_Default(t *testing.T) {
	assert.Equal(t, file.DefaultStoreDir, file.NewStore("").BasePath)
}
