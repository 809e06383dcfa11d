// Package feature reports which of a fixed set of web platform capabilities
// a browser environment exposes: IndexedDB, WebSocket, localStorage,
// Element.classList, addEventListener and querySelector.
//
// A capability counts as supported when it is a property of the global scope
// or of document.body, as seen through a navigator.Navigator. Missing
// capabilities are reported through the supplied slog.Logger so callers can
// surface them in diagnostics without treating them as failures.
//
// # Usage
//
//	supports := feature.Probe(ctx, snap, log)
//	if !supports.Has(feature.WebSocket) {
//	    // fall back to long polling
//	}
package feature
