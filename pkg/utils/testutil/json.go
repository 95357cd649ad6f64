package testutil

import (
	"encoding/json"
	"testing"
)

// DecodeJSON unmarshals data into T and fails the test on error.
func DecodeJSON[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("failed to decode JSON: %v\n%s", err, string(data))
	}
	return v
}
