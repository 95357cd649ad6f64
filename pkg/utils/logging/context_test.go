package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/folio-dev/folio/pkg/utils/logging"
)

func TestFrom(t *testing.T) {
	t.Run("get logger from context with logger", func(t *testing.T) {
		logger := slog.Default()
		ctx := logging.With(context.Background(), logger)
		gt.V(t, logging.From(ctx)).Equal(logger)
	})

	t.Run("get default logger from context without logger", func(t *testing.T) {
		retrieved := logging.From(context.Background())
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.With(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))
	ctx = logging.WithAttrs(ctx, "account", "octo")

	logging.From(ctx).Info("hello")
	gt.S(t, buf.String()).Contains("account=octo")
}

func TestCtxRequestID(t *testing.T) {
	t.Run("get new request ID from context", func(t *testing.T) {
		reqID, newCtx := logging.CtxRequestID(context.Background())
		gt.V(t, reqID).NotEqual("")

		retrievedID, _ := logging.CtxRequestID(newCtx)
		gt.V(t, retrievedID).Equal(reqID)
	})

	t.Run("get existing request ID from context", func(t *testing.T) {
		reqID1, ctx1 := logging.CtxRequestID(context.Background())
		reqID2, _ := logging.CtxRequestID(ctx1)
		gt.V(t, reqID1).Equal(reqID2)
	})
}

func TestCtxTime(t *testing.T) {
	t.Run("current time without time function", func(t *testing.T) {
		gt.V(t, logging.CtxTime(context.Background()).IsZero()).Equal(false)
	})

	t.Run("time function is used when set", func(t *testing.T) {
		ctx := logging.CtxWithTime(context.Background(), func() time.Time {
			return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		})
		gt.V(t, logging.CtxTime(ctx).Year()).Equal(2024)
	})
}

type traceKey struct{}

func TestDetach(t *testing.T) {
	customLogger := slog.Default().With("component", "test")
	fixedTime := time.Date(2024, 12, 25, 10, 30, 0, 0, time.UTC)

	origCtx, cancel := context.WithCancel(context.Background())
	origCtx = logging.With(origCtx, customLogger)
	reqID, origCtx := logging.CtxRequestID(origCtx)
	origCtx = logging.CtxWithTime(origCtx, func() time.Time { return fixedTime })

	origCtx = context.WithValue(origCtx, traceKey{}, "trace-1")
	origCtx, cancelTimeout := context.WithTimeout(origCtx, time.Minute)
	defer cancelTimeout()

	detached := logging.Detach(origCtx)
	cancel()

	gt.V(t, origCtx.Err()).Equal(context.Canceled)
	gt.V(t, detached.Err()).Equal(nil)
	_, hasDeadline := detached.Deadline()
	gt.False(t, hasDeadline)
	gt.V(t, detached.Value(traceKey{})).Equal("trace-1")
	gt.V(t, logging.From(detached)).Equal(customLogger)
	gt.V(t, logging.CtxTime(detached)).Equal(fixedTime)

	inherited, _ := logging.CtxRequestID(detached)
	gt.V(t, inherited).Equal(reqID)
}
