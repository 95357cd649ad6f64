package safe_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/folio-dev/folio/pkg/utils/safe"
)

type errorCloser struct{ err error }

func (x *errorCloser) Close() error {
	return x.err
}

func TestClose(t *testing.T) {
	t.Run("close valid reader", func(t *testing.T) {
		safe.Close(io.NopCloser(bytes.NewReader([]byte("test"))))
	})

	t.Run("close nil reader", func(t *testing.T) {
		safe.Close(nil)
	})

	t.Run("close returning error is logged", func(t *testing.T) {
		safe.Close(&errorCloser{err: io.ErrUnexpectedEOF})
	})

	t.Run("close returning EOF is ignored", func(t *testing.T) {
		safe.Close(&errorCloser{err: io.EOF})
	})
}
