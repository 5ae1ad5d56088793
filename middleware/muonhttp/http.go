// Package muonhttp instruments HTTP handlers with muon entry/exit logging.
//
// Each request is logged as one instrumented call, correlated by id and
// timed:
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/api", handler)
//	instrumented := muonhttp.Handler(mux, in, "api")
//	http.ListenAndServe(":8080", instrumented)
//
// Log lines look like (arguments appear at debug level):
//
//	[2f] api(GET /users)
//	[2f] api status=200 • 4 ms
package muonhttp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/quarklabs/muon"
)

// Handler wraps an http.Handler with instrumentation under the given
// operation name. The request's method and path appear on the entry line;
// the response status on the exit line. The handler's context carries the
// call's correlation context.
func Handler(next http.Handler, in *muon.Instrumentor, operation string, opts ...muon.Option) http.Handler {
	base := []muon.Option{
		// arg 0 is the ResponseWriter, never useful in a log line
		muon.WithoutArg(0),
		muon.WithArg(1, formatRequest),
		muon.WithExit(func(result any) string {
			return fmt.Sprintf("status=%v", result)
		}),
	}

	fn := in.Func(operation, func(ctx context.Context, args ...any) (any, error) {
		w := args[0].(http.ResponseWriter)
		r := args[1].(*http.Request)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))
		return rec.status, nil
	}, append(base, opts...)...)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The wrapper is transparent on the error channel and the handler
		// never returns one.
		_, _ = fn(r.Context(), w, r)
	})
}

func formatRequest(v any) (string, bool) {
	r, ok := v.(*http.Request)
	if !ok {
		return "", false
	}
	return r.Method + " " + r.URL.Path, true
}

// statusRecorder captures the response status for the exit line.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
