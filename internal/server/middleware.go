package server

import (
	"fmt"
	"net/http"

	"github.com/fpawel/eqair/internal/pkg"
	"github.com/google/uuid"
)

func recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if x := recover(); x != nil {
				id := uuid.New().String()
				log.PrintErr(fmt.Sprintf("panic: %v", x),
					"request_id", id,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", pkg.FormatStacktrace(0, "\n\t"))
				writeJSON(w, http.StatusInternalServerError, errorResponse{
					Error:     "internal error",
					RequestID: id,
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
