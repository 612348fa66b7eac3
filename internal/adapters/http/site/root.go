// Package site serves the embedded calendar page.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded calendar page routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/", http.FileServer(FS()))
}
