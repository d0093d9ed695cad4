package middleware

import (
	"net/http"

	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a panic into a 500 envelope. http.ErrAbortHandler is
// re-raised so net/http can abort the connection.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logPanic(logger, r, rec)
				utils.ResponseInternalError(w, "Internal server error")
			}()

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

func logPanic(logger *zap.Logger, r *http.Request, rec any) {
	requestID, _ := utils.GetRequestIDFromContext(r.Context())
	logger.Error("PANIC recovered",
		zap.Any("panic", rec),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("route", routePattern(r)),
		zap.String("request_id", requestID),
		zap.Stack("stack"),
	)
}
