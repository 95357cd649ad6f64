package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"

	"github.com/folio-dev/folio/pkg/domain/types"
	"github.com/folio-dev/folio/pkg/utils/logging"
)

// HandleError reports an unexpected error to Sentry and logs it. Expected
// upstream failures are absorbed by the usecase layer and never reach here.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub = hub.Clone()

	hub.ConfigureScope(func(scope *sentry.Scope) {
		if reqID, ok := requestID(ctx); ok {
			scope.SetTag("request_id", string(reqID))
		}
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}

func requestID(ctx context.Context) (types.RequestID, bool) {
	id, newCtx := logging.CtxRequestID(ctx)
	return id, newCtx == ctx
}
