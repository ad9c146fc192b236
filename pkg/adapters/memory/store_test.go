package memory_test

import (
	"testing"

	"github.com/aretw0/wasteland/pkg/adapters/memory"
	"github.com/aretw0/wasteland/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunReportStoreContract(t, store)

	if store.Len() != 0 {
		t.Errorf("expected empty store after contract, got %d entries", store.Len())
	}
}
