package kit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RoutePattern labels metrics by the matched chi route pattern, falling
// back to the raw path for requests that matched no route.
func RoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if rp := rctx.RoutePattern(); rp != "" {
			return rp
		}
	}
	return r.URL.Path
}
