package middleware

import "github.com/aretw0/wasteland/pkg/ports"

// Middleware allows wrapping a ReportStore to add behavior.
type Middleware func(ports.ReportStore) ports.ReportStore

// Chain wraps store with every middleware. The first one is the outermost.
func Chain(store ports.ReportStore, mws ...Middleware) ports.ReportStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
