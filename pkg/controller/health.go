package controller

import (
	"context"
	"net/http"
	"portal/pkg/logger"
	"slices"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// Health answers with {"status":"ok"} when every check passes and with 503
// {"status":"unavailable","failed":[...]} otherwise, listing the failed
// check names sorted.
func Health(checks map[string]HealthCheck) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var failed []string
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				logger.Warn(r.Context(), "Health check failed", zap.String("check", name), zap.Error(err))
				failed = append(failed, name)
			}
		}

		slices.Sort(failed)

		var e jx.Encoder
		e.ObjStart()
		e.FieldStart("status")
		status := http.StatusOK
		if len(failed) == 0 {
			e.Str("ok")
		} else {
			status = http.StatusServiceUnavailable
			e.Str("unavailable")
			e.FieldStart("failed")
			e.ArrStart()
			for _, name := range failed {
				e.Str(name)
			}
			e.ArrEnd()
		}
		e.ObjEnd()

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		_, _ = w.Write(e.Bytes())
	})
}
