package types

import "github.com/google/uuid"

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}
