package server

import (
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/folio-dev/folio/pkg/utils/errutil"
	"github.com/folio-dev/folio/pkg/utils/logging"
)

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.Default().With(slog.String("request_id", string(reqID)))

		ctx = logging.With(ctx, logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.String("user_agent", r.UserAgent()),
			slog.String("referer", r.Referer()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

// recovery turns a panic of a handler into a 500 response and reports it.
func recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}

			err := goerr.New("panic in http handler",
				goerr.V("panic", fmt.Sprintf("%v", v)),
				goerr.V("path", r.URL.Path),
			)
			errutil.HandleError(r.Context(), "recovered from panic", err)
			writeJSON(w, http.StatusInternalServerError, &errorResponse{
				Error: errInternal,
			})
		}()

		next.ServeHTTP(w, r)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
